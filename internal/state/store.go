package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/readrawhex/gantry/octoprint"
)

// Snapshot represents the latest printer data available to the UI.
type Snapshot struct {
	State               octoprint.PrinterState
	HasState            bool
	Job                 octoprint.JobStatus
	HasJob              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the server has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(printer *octoprint.PrinterState, job *octoprint.JobStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if printer != nil {
		s.snapshot.State = *printer
		s.snapshot.HasState = true
	} else {
		s.snapshot.HasState = false
	}
	if job != nil {
		s.snapshot.Job = *job
		s.snapshot.HasJob = true
	} else {
		s.snapshot.HasJob = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
