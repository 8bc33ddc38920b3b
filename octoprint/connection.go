package octoprint

import "context"

// Version retrieves API and server version information.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	var payload VersionInfo
	if err := c.get(ctx, "/api/version", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Server retrieves server version and safe-mode information.
func (c *Client) Server(ctx context.Context) (*ServerInfo, error) {
	var payload ServerInfo
	if err := c.get(ctx, "/api/server", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ConnectionSettings retrieves the current serial connection state and
// the available connection options.
func (c *Client) ConnectionSettings(ctx context.Context) (*ConnectionState, error) {
	var payload ConnectionState
	if err := c.get(ctx, "/api/connection", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ConnectOptions configure a connect command. Zero-valued fields are
// omitted from the payload and the server falls back to its stored
// preferences or auto detection.
type ConnectOptions struct {
	Port           string
	Baudrate       int
	PrinterProfile string
	Save           bool
	Autoconnect    bool
}

// Connect instructs the server to connect (or reconnect) to the
// printer.
func (c *Client) Connect(ctx context.Context, opts ConnectOptions) error {
	payload := map[string]any{"command": "connect"}
	if opts.Port != "" {
		payload["port"] = opts.Port
	}
	if opts.Baudrate > 0 {
		payload["baudrate"] = opts.Baudrate
	}
	if opts.PrinterProfile != "" {
		payload["printerProfile"] = opts.PrinterProfile
	}
	if opts.Save {
		payload["save"] = true
	}
	if opts.Autoconnect {
		payload["autoconnect"] = true
	}
	return c.postJSON(ctx, "/api/connection", payload, nil)
}

// Disconnect instructs the server to disconnect from the printer.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.postJSON(ctx, "/api/connection", map[string]any{"command": "disconnect"}, nil)
}
