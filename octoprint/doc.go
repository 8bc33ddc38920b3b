// Package octoprint provides a typed HTTP client for the OctoPrint
// REST API.
//
// # Overview
//
// The package maps each logical printer operation (connect, upload,
// set temperatures, jog, start/pause/cancel jobs) onto the matching
// OctoPrint endpoint, validating arguments locally before any request
// is made. Each method call is an independent, synchronous
// request/response exchange; there is no shared state between calls
// beyond the immutable client configuration.
//
// # Client Usage
//
// Create a client with the server's base URL and API key:
//
//	client, err := octoprint.New("http://octopi.local", apiKey)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Retrieve the printer state
//	state, err := client.State(ctx, octoprint.StateOptions{History: 10})
//
//	// Start the selected job
//	err = client.StartJob(ctx)
//
// The base URL accepts "host:port" (scheme defaults to http), and any
// path, query or fragment is stripped. The API key is attached as the
// X-Api-Key header on every request and cannot be shadowed by other
// header values.
//
// # Validation
//
// Arguments are checked before dispatch and rejected with a
// *ValidationError that never reaches the network:
//
//   - file locations must be "local" or "sdcard", and per-file paths
//     must begin with "local/" or "sdcard/"
//   - jog and home need at least one axis
//   - feedrate and flowrate factors accept fractions or percentages;
//     percentages are divided down once, and the result must lie in
//     [0.5, 2.0] (feedrate) or [0.75, 1.25] (flowrate), inclusive
//   - history counts, tool indices, temperatures and extrusion speeds
//     must be zero or positive
//
// Tool target temperatures are a tagged union: SingleTarget(n) targets
// the default tool, PerTool(ns...) addresses tool0..toolN. The zero
// ToolTargets value is rejected.
//
// # Error Handling
//
// Three error kinds cover every failure:
//
//   - *ValidationError: a malformed argument, caught locally
//   - *HTTPError: a non-2xx response; carries the raw status code and
//     body without interpreting individual codes (a 409 on StartJob is
//     surfaced as-is)
//   - *TransportError: DNS, connection or timeout failures, wrapping
//     the underlying transport error
//
// JSON decode failures on 2xx responses are wrapped with
// "decode response".
//
// # Request Handling
//
// All requests use context for cancellation, set Accept:
// application/json and a gantry User-Agent, and carry at most one body:
// application/json for structured commands, multipart/form-data for
// uploads and folder creation. There are no retries and no client-side
// cache; the transport timeout is 10 seconds.
//
// # Thread Safety
//
// The Client is safe for concurrent use. The underlying http.Client
// handles connection pooling internally.
package octoprint
