// Package ui implements the gantry terminal interface on Bubble Tea.
//
// # Overview
//
// The UI is a single Bubble Tea model with three views:
//
//   - Dashboard: printer state badge, temperatures, SD readiness and the
//     active job with a progress bar
//   - Files: browser over the local and sdcard storage locations with
//     select, print and delete actions
//   - Logs: tail of gantry's own structured log file
//
// A header row is always visible and shows the printer state, a heater
// summary, job completion, the last poll time, and poll errors.
//
// # Data Flow
//
// The model never calls the OctoPrint API during rendering. Printer data
// arrives through snapshotMsg from the shared state.Store, which the
// background poller keeps fresh. User actions (start, pause, delete a
// file) run as tea.Cmd functions off the UI goroutine and report back
// with opDoneMsg; failures surface in the header and in the log file.
//
// # Error Classification
//
// Poll failures are reduced to a short phrase for display. A 409 from
// the server means OctoPrint itself is fine but no printer is connected
// and operational; transport failures mean the server is unreachable.
// The two get distinct messages so the operator knows which cable to
// check.
//
// # Themes
//
// Three color themes are built in (Nightfox, Kanagawa, Slate). The
// active theme and the preferred file browser location persist through
// the prefs package.
package ui
