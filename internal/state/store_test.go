package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/readrawhex/gantry/octoprint"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	printer := &octoprint.PrinterState{
		State: octoprint.PrinterStateInfo{Text: "Printing"},
	}
	job := &octoprint.JobStatus{
		State:    "Printing",
		Progress: octoprint.JobProgress{Completion: 42.5},
	}

	before := time.Now()
	s.Update(printer, job, nil)

	snap := s.Snapshot()
	if !snap.HasState || snap.State.State.Text != "Printing" {
		t.Fatalf("snapshot state = %#v, want Printing with HasState=true", snap.State)
	}
	if !snap.HasJob || snap.Job.Progress.Completion != 42.5 {
		t.Fatalf("snapshot job = %#v, want completion 42.5", snap.Job)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&octoprint.PrinterState{State: octoprint.PrinterStateInfo{Text: "Operational"}}, nil, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, nil, origErr)

	snap := s.Snapshot()
	if snap.HasState != prev.HasState || snap.State.State.Text != prev.State.State.Text {
		t.Fatalf("state changed on error: got %#v want %#v", snap.State, prev.State)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.Update(nil, nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Update(nil, nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Update(&octoprint.PrinterState{}, &octoprint.JobStatus{}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
}
