// Package state provides thread-safe state management for the gantry application.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing printer
// state and job data between the background poller and the UI. It acts as the
// coordination point where polling updates meet UI rendering.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest printer state
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (poller), multiple readers (UI refresh loop)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains printer state, job status, timestamps, and error info
//   - Returned by value
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(printer, job, nil)
//	→ snapshot.State = printer
//	→ snapshot.Job = job
//	→ snapshot.LastError = nil
//	→ snapshot.LastUpdated = now
//
//	// Error case: Keep old data, record error
//	store.Update(nil, nil, err)
//	→ snapshot.State = <unchanged>
//	→ snapshot.Job = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.LastUpdated = now
//
// This ensures the UI always has the most recent successful data to display,
// while also being informed of polling failures.
//
// # Offline Detection
//
// Each failed Update increments ConsecutiveFailures; a successful Update
// resets it. Snapshot.IsOffline reports true after two or more consecutive
// failures, which the UI uses to distinguish a transient hiccup from an
// unreachable server.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Update(): Acquires write lock (exclusive access)
//   - Snapshot(): Acquires read lock (concurrent reads allowed)
//
// This allows the UI to read frequently without blocking the poller,
// and vice versa. The lock is held only during copy operations,
// not during network I/O or rendering.
//
// # Usage Example
//
//	// Poller goroutine:
//	store := &state.Store{}
//	printer, err := client.State(ctx, octoprint.StateOptions{})
//	job, jobErr := client.Job(ctx)
//	store.Update(printer, job, errors.Join(err, jobErr))
//
//	// UI goroutine:
//	snap := store.Snapshot()
//	renderUI(snap)
//
// The Store is safe to construct with zero value and thread-safe from
// first use.
package state
