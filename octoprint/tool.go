package octoprint

import (
	"context"
	"fmt"
)

// ToolTargets selects between a single target temperature applied to
// the default tool and an ordered per-tool list where index N addresses
// toolN. The zero value is invalid; build one with SingleTarget or
// PerTool.
type ToolTargets struct {
	single  *int
	perTool []int
}

// SingleTarget targets one temperature at the default tool.
func SingleTarget(temp int) ToolTargets {
	return ToolTargets{single: &temp}
}

// PerTool targets each tool individually; temps[N] addresses toolN.
func PerTool(temps ...int) ToolTargets {
	return ToolTargets{perTool: append([]int{}, temps...)}
}

func (t ToolTargets) targets() (map[string]int, error) {
	if t.single != nil {
		return map[string]int{"tool": *t.single}, nil
	}
	if t.perTool == nil {
		return nil, &ValidationError{Field: "temp", Reason: "must be built with SingleTarget or PerTool"}
	}
	targets := make(map[string]int, len(t.perTool))
	for i, temp := range t.perTool {
		targets[fmt.Sprintf("tool%d", i)] = temp
	}
	return targets, nil
}

// ToolTarget sets target temperatures on the printer's tools.
func (c *Client) ToolTarget(ctx context.Context, temps ToolTargets) error {
	targets, err := temps.targets()
	if err != nil {
		return err
	}
	return c.postJSON(ctx, "/api/printer/tool", map[string]any{"command": "target", "targets": targets}, nil)
}

// ToolOffsets sets temperature offsets on the printer's tools;
// offsets[N] addresses toolN.
func (c *Client) ToolOffsets(ctx context.Context, offsets []int) error {
	byTool := make(map[string]int, len(offsets))
	for i, offset := range offsets {
		byTool[fmt.Sprintf("tool%d", i)] = offset
	}
	return c.postJSON(ctx, "/api/printer/tool", map[string]any{"command": "offset", "offsets": byTool}, nil)
}

// SelectTool selects the printer's current tool, zero-indexed.
func (c *Client) SelectTool(ctx context.Context, tool int) error {
	if tool < 0 {
		return &ValidationError{Field: "tool", Reason: "must be zero or positive"}
	}
	return c.postJSON(ctx, "/api/printer/tool", map[string]any{"command": "select", "tool": tool}, nil)
}

// Extrude extrudes the given amount of filament in millimeters from
// the selected tool; negative amounts retract. Speed is in mm/min and
// zero uses the printer profile maximum.
func (c *Client) Extrude(ctx context.Context, amount, speed int) error {
	if speed < 0 {
		return &ValidationError{Field: "speed", Reason: "must be zero or positive"}
	}
	payload := map[string]any{"command": "extrude", "amount": amount}
	if speed > 0 {
		payload["speed"] = speed
	}
	return c.postJSON(ctx, "/api/printer/tool", payload, nil)
}

// Flowrate changes the flow rate factor applied to extrusion. The
// factor is either a fraction in [0.75, 1.25] or a percentage in
// [75, 125].
func (c *Client) Flowrate(ctx context.Context, factor float64) error {
	normalized, err := normalizeFactor(factor, 0.75, 1.25)
	if err != nil {
		return err
	}
	return c.postJSON(ctx, "/api/printer/tool", map[string]any{"command": "flowrate", "factor": normalized}, nil)
}

// ToolState retrieves current temperature data for all tools, plus up
// to history historic samples when history is positive.
func (c *Client) ToolState(ctx context.Context, history int) (*TemperatureState, error) {
	query, err := historyQuery(history)
	if err != nil {
		return nil, err
	}
	var payload TemperatureState
	if err := c.get(ctx, "/api/printer/tool", query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
