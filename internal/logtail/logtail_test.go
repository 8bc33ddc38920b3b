package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil for missing file", err)
	}
	if lines != nil {
		t.Fatalf("Read() = %v, want nil for missing file", lines)
	}
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text passes through",
			input:    "not json at all",
			expected: "not json at all",
		},
		{
			name:     "malformed json passes through",
			input:    `{"level": "info",`,
			expected: `{"level": "info",`,
		},
		{
			name:     "info line",
			input:    `{"level":"info","time":"2026-08-29T14:32:15Z","message":"poller started"}`,
			expected: "14:32:15 INFO  poller started",
		},
		{
			name:     "error line with extra fields",
			input:    `{"level":"error","time":"2026-08-29T14:32:17Z","message":"poll failed","endpoint":"/api/printer","status":409}`,
			expected: "14:32:17 ERROR poll failed endpoint=/api/printer status=409",
		},
		{
			name:     "missing level",
			input:    `{"time":"2026-08-29T14:32:15Z","message":"odd"}`,
			expected: "14:32:15 ???   odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatLine(tt.input)
			if result != tt.expected {
				t.Errorf("FormatLine() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatLines(t *testing.T) {
	input := []string{
		`{"level":"info","time":"2026-08-29T14:32:15Z","message":"poller started"}`,
		"raw line",
	}
	expected := []string{
		"14:32:15 INFO  poller started",
		"raw line",
	}

	result := FormatLines(input)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("FormatLines() = %v, want %v", result, expected)
	}

	if FormatLines(nil) != nil {
		t.Error("FormatLines(nil) should be nil")
	}
}
