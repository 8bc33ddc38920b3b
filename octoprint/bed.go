package octoprint

import "context"

// BedTarget sets the target temperature on the heated bed. Zero turns
// the heater off.
func (c *Client) BedTarget(ctx context.Context, target int) error {
	if target < 0 {
		return &ValidationError{Field: "target", Reason: "must be zero or positive"}
	}
	return c.postJSON(ctx, "/api/printer/bed", map[string]any{"command": "target", "target": target}, nil)
}

// BedOffset sets the temperature offset on the heated bed.
func (c *Client) BedOffset(ctx context.Context, offset int) error {
	return c.postJSON(ctx, "/api/printer/bed", map[string]any{"command": "offset", "offset": offset}, nil)
}

// BedState retrieves current temperature data for the heated bed, plus
// up to history historic samples when history is positive.
func (c *Client) BedState(ctx context.Context, history int) (*TemperatureState, error) {
	query, err := historyQuery(history)
	if err != nil {
		return nil, err
	}
	var payload TemperatureState
	if err := c.get(ctx, "/api/printer/bed", query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
