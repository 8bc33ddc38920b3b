package octoprint

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// StateOptions configure a printer state request.
type StateOptions struct {
	// History requests that many historic temperature samples. Zero
	// omits the history.
	History int
	// Exclude drops the named sections (temperature, sd, state) from
	// the response.
	Exclude []string
}

// State retrieves the current printer state: temperatures, SD card
// readiness and state flags. The server responds 409 Conflict while the
// printer is not operational.
func (c *Client) State(ctx context.Context, opts StateOptions) (*PrinterState, error) {
	query, err := historyQuery(opts.History)
	if err != nil {
		return nil, err
	}
	if len(opts.Exclude) > 0 {
		query.Set("exclude", strings.Join(opts.Exclude, ","))
	}
	var payload PrinterState
	if err := c.get(ctx, "/api/printer", query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func historyQuery(history int) (url.Values, error) {
	if history < 0 {
		return nil, &ValidationError{Field: "history", Reason: "must be zero or positive"}
	}
	query := url.Values{}
	if history > 0 {
		query.Set("history", "true")
		query.Set("limit", strconv.Itoa(history))
	}
	return query, nil
}

// JogOptions configure a jog command. A nil axis leaves that axis
// untouched; at least one axis must be set.
type JogOptions struct {
	X *float64
	Y *float64
	Z *float64
	// Absolute interprets the axis values as coordinates rather than
	// relative amounts.
	Absolute bool
	// Speed in mm/min. Zero uses the printer profile minimum.
	Speed int
}

// Float64 returns a pointer to v, for use in JogOptions.
func Float64(v float64) *float64 {
	return &v
}

// Jog moves the print head along the given axes.
func (c *Client) Jog(ctx context.Context, opts JogOptions) error {
	if opts.X == nil && opts.Y == nil && opts.Z == nil {
		return &ValidationError{Field: "axes", Reason: "at least one of x, y or z is required"}
	}
	payload := map[string]any{"command": "jog"}
	if opts.X != nil {
		payload["x"] = *opts.X
	}
	if opts.Y != nil {
		payload["y"] = *opts.Y
	}
	if opts.Z != nil {
		payload["z"] = *opts.Z
	}
	if opts.Absolute {
		payload["absolute"] = true
	}
	if opts.Speed > 0 {
		payload["speed"] = opts.Speed
	}
	return c.postJSON(ctx, "/api/printer/printhead", payload, nil)
}

// Home homes the print head along the selected axes.
func (c *Client) Home(ctx context.Context, x, y, z bool) error {
	if !x && !y && !z {
		return &ValidationError{Field: "axes", Reason: "at least one axis must be homed"}
	}
	axes := make([]string, 0, 3)
	if x {
		axes = append(axes, "x")
	}
	if y {
		axes = append(axes, "y")
	}
	if z {
		axes = append(axes, "z")
	}
	return c.postJSON(ctx, "/api/printer/printhead", map[string]any{"command": "home", "axes": axes}, nil)
}

// Feedrate changes the feedrate factor applied to axis movements. The
// factor is either a fraction in [0.5, 2.0] or a percentage in
// [50, 200].
func (c *Client) Feedrate(ctx context.Context, factor float64) error {
	normalized, err := normalizeFactor(factor, 0.5, 2.0)
	if err != nil {
		return err
	}
	return c.postJSON(ctx, "/api/printer/printhead", map[string]any{"command": "feedrate", "factor": normalized}, nil)
}

// normalizeFactor maps percentage inputs onto the fractional range by
// dividing once when the raw value exceeds the upper fractional bound,
// then bounds-checks inclusively.
func normalizeFactor(factor, lo, hi float64) (float64, error) {
	if factor > hi {
		factor /= 100
	}
	if factor < lo || factor > hi {
		return 0, &ValidationError{
			Field:  "factor",
			Reason: fmt.Sprintf("must be within [%v, %v] or [%v, %v]", lo, hi, lo*100, hi*100),
		}
	}
	return factor, nil
}
