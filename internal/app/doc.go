// Package app provides the orchestration layer for the gantry application.
//
// # Overview
//
// This package wires together configuration, logging, polling, state
// management, and the UI to create the complete gantry TUI experience. It
// serves as the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load gantry configuration from ~/.config/gantry/config.toml
//  2. Open the structured log file under the configured log directory
//  3. Initialize the OctoPrint HTTP client
//  4. Create shared state.Store for UI and poller coordination
//  5. Launch background poller goroutine for continuous updates
//  6. Start the TUI and block until user exits or context cancels
//
// # Polling Behavior
//
// The poller runs continuously in the background at a configurable interval
// (default: 2 seconds). On each tick:
//
//   - Fetches printer state from the OctoPrint API
//   - Fetches the current job from the OctoPrint API
//   - Updates the shared state.Store atomically
//   - Logs errors but continues polling on failure
//
// When polls keep failing the cadence backs off exponentially, capped at 30
// seconds, so an offline printer does not generate a request storm. The UI
// reads snapshots from the store at its own refresh rate, which keeps it
// responsive during slow API calls.
//
// A printer that is connected to OctoPrint but not operational answers the
// state endpoint with 409 Conflict. The poller records that as a poll error
// like any other; the UI classifies it separately from an unreachable server.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Log file cannot be opened
//   - OctoPrint client initialization failure (bad base URL)
//
// Recoverable errors (logged, polling continues):
//   - Periodic state or job fetch failures
//   - Network timeouts during polling
package app
