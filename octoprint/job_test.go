package octoprint

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestJobCommands_Payloads(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/job" {
			t.Errorf("path = %q, want /api/job", r.URL.Path)
		}
		payload = decodeJSONBody(t, r)
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	cases := []struct {
		name    string
		call    func() error
		command string
		action  string
	}{
		{"start", func() error { return c.StartJob(ctx) }, "start", ""},
		{"cancel", func() error { return c.CancelJob(ctx) }, "cancel", ""},
		{"restart", func() error { return c.RestartJob(ctx) }, "restart", ""},
		{"pause", func() error { return c.PauseJob(ctx) }, "pause", "pause"},
		{"resume", func() error { return c.ResumeJob(ctx) }, "pause", "resume"},
		{"toggle", func() error { return c.TogglePause(ctx) }, "pause", "toggle"},
	}
	for _, tc := range cases {
		if err := tc.call(); err != nil {
			t.Fatalf("%s returned error: %v", tc.name, err)
		}
		if payload["command"] != tc.command {
			t.Fatalf("%s payload = %#v, want command %q", tc.name, payload, tc.command)
		}
		if tc.action == "" {
			if _, present := payload["action"]; present {
				t.Fatalf("%s payload = %#v, want no action", tc.name, payload)
			}
		} else if payload["action"] != tc.action {
			t.Fatalf("%s payload = %#v, want action %q", tc.name, payload, tc.action)
		}
	}
}

func TestJob_DecodesStatus(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(JobStatus{
			Job: JobDetails{
				File:               JobFile{Name: "benchy.gcode", Origin: "local", Size: 1468987},
				EstimatedPrintTime: 8811,
			},
			Progress: JobProgress{Completion: 42.5, PrintTime: 3744, PrintTimeLeft: 5067},
			State:    "Printing",
		})
	})

	status, err := c.Job(context.Background())
	if err != nil {
		t.Fatalf("Job returned error: %v", err)
	}
	if status.State != "Printing" || status.Job.File.Name != "benchy.gcode" {
		t.Fatalf("status = %#v, want printing benchy.gcode", status)
	}
	if status.Progress.Completion != 42.5 {
		t.Fatalf("completion = %v, want 42.5", status.Progress.Completion)
	}
}
