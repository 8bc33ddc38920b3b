package octoprint

import "context"

func (c *Client) jobCommand(ctx context.Context, payload map[string]any) error {
	return c.postJSON(ctx, "/api/job", payload, nil)
}

// StartJob starts printing the currently selected file. The server
// responds 409 Conflict when a job is already active.
func (c *Client) StartJob(ctx context.Context) error {
	return c.jobCommand(ctx, map[string]any{"command": "start"})
}

// CancelJob cancels the current print job. The server responds 409
// Conflict when no job is active.
func (c *Client) CancelJob(ctx context.Context) error {
	return c.jobCommand(ctx, map[string]any{"command": "cancel"})
}

// RestartJob restarts the current (paused) job from the beginning.
func (c *Client) RestartJob(ctx context.Context) error {
	return c.jobCommand(ctx, map[string]any{"command": "restart"})
}

// PauseJob pauses the current job; a no-op when already paused.
func (c *Client) PauseJob(ctx context.Context) error {
	return c.jobCommand(ctx, map[string]any{"command": "pause", "action": "pause"})
}

// ResumeJob resumes the current job; a no-op when already printing.
func (c *Client) ResumeJob(ctx context.Context) error {
	return c.jobCommand(ctx, map[string]any{"command": "pause", "action": "resume"})
}

// TogglePause pauses a printing job and resumes a paused one.
func (c *Client) TogglePause(ctx context.Context) error {
	return c.jobCommand(ctx, map[string]any{"command": "pause", "action": "toggle"})
}

// Job retrieves information about the current job, if there is one.
func (c *Client) Job(ctx context.Context) (*JobStatus, error) {
	var payload JobStatus
	if err := c.get(ctx, "/api/job", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
