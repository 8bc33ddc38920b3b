// Package logtail provides utilities for reading and formatting gantry's
// own log file.
//
// # Overview
//
// This package implements efficient tail-like reading of the structured log
// file gantry writes, plus a formatter that turns its JSON lines into short
// human-readable rows for the TUI log view.
//
// # Reading Log Files
//
// The Read function uses a ring buffer to extract the last maxLines from a
// file, regardless of file size:
//
//   - Scans the file sequentially (one pass)
//   - Uses O(maxLines) memory, not O(file size)
//   - Returns lines in correct chronological order
//
// Read returns nil, nil for non-existent files so a fresh install with no
// log yet degrades gracefully.
//
// # Formatting
//
// Log lines are JSON objects with at least "level", "time", and "message"
// fields. FormatLine extracts those into a fixed-width prefix followed by
// the message; lines that do not parse as JSON are returned unchanged.
package logtail
