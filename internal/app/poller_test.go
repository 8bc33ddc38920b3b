package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/readrawhex/gantry/internal/state"
	"github.com/readrawhex/gantry/octoprint"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestRefresh_PopulatesStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/printer":
			_, _ = w.Write([]byte(`{"state": {"text": "Printing", "flags": {"printing": true}}}`))
		case "/api/job":
			_, _ = w.Write([]byte(`{"state": "Printing", "progress": {"completion": 55.0}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := octoprint.New(server.URL, "KEY")
	if err != nil {
		t.Fatalf("init client: %v", err)
	}

	store := &state.Store{}
	refresh(context.Background(), store, client, zerolog.Nop())

	snap := store.Snapshot()
	if !snap.HasState || snap.State.State.Text != "Printing" {
		t.Fatalf("state = %#v, want Printing", snap.State)
	}
	if !snap.HasJob || snap.Job.Progress.Completion != 55.0 {
		t.Fatalf("job = %#v, want completion 55", snap.Job)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestRefresh_RecordsConflictError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Printer is not operational", http.StatusConflict)
	}))
	defer server.Close()

	client, err := octoprint.New(server.URL, "KEY")
	if err != nil {
		t.Fatalf("init client: %v", err)
	}

	store := &state.Store{}
	refresh(context.Background(), store, client, zerolog.Nop())

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want conflict error")
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}
