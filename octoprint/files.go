package octoprint

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// Location identifies one of OctoPrint's file storage origins.
type Location string

const (
	LocationLocal  Location = "local"
	LocationSDCard Location = "sdcard"
)

func (l Location) validate() error {
	switch l {
	case LocationLocal, LocationSDCard:
		return nil
	}
	return &ValidationError{Field: "location", Reason: `must be "local" or "sdcard"`}
}

// validateFilePath checks the location-prefixed path form used by the
// per-file endpoints.
func validateFilePath(path string) error {
	if strings.HasPrefix(path, "local/") || strings.HasPrefix(path, "sdcard/") {
		return nil
	}
	return &ValidationError{Field: "path", Reason: `must begin with "local/" or "sdcard/"`}
}

// ListOptions configure a file listing request.
type ListOptions struct {
	// Recursive includes files inside folders below the root.
	Recursive bool
	// Force bypasses the server-side listing cache.
	Force bool
}

// Files retrieves the file listing for a location, along with the disk
// space still available for local storage.
func (c *Client) Files(ctx context.Context, location Location, opts ListOptions) (*FileListing, error) {
	if err := location.validate(); err != nil {
		return nil, err
	}
	query := url.Values{}
	if opts.Recursive {
		query.Set("recursive", "true")
	}
	if opts.Force {
		query.Set("force", "true")
	}
	var payload FileListing
	if err := c.get(ctx, "/api/files/"+string(location), query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UploadOptions configure a file upload.
type UploadOptions struct {
	// Path is the folder within the location to upload into. Empty
	// uploads to the root folder.
	Path string
}

// UploadFile uploads file content under the given name to a location.
func (c *Client) UploadFile(ctx context.Context, location Location, filename string, file io.Reader, opts UploadOptions) (*UploadResult, error) {
	if err := location.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(filename) == "" {
		return nil, &ValidationError{Field: "filename", Reason: "must not be empty"}
	}
	path := opts.Path
	if path == "" {
		path = "/"
	}
	f := &form{
		fileField: "files",
		fileName:  filename,
		file:      file,
		fields:    map[string]string{"path": path},
	}
	var payload UploadResult
	if err := c.postForm(ctx, "/api/files/"+string(location), f, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateFolder creates a subfolder within the local uploads folder.
// path optionally names the parent folder; empty creates at the root.
func (c *Client) CreateFolder(ctx context.Context, foldername, path string) (*FolderResult, error) {
	if strings.TrimSpace(foldername) == "" {
		return nil, &ValidationError{Field: "foldername", Reason: "must not be empty"}
	}
	fields := map[string]string{"foldername": foldername}
	if path != "" {
		fields["path"] = path
	}
	var payload FolderResult
	if err := c.postForm(ctx, "/api/files/local", &form{fields: fields}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FileInfo retrieves details for the file or folder at path. Folder
// children are included recursively when recursive is set.
func (c *Client) FileInfo(ctx context.Context, path string, recursive bool) (*File, error) {
	if err := validateFilePath(path); err != nil {
		return nil, err
	}
	query := url.Values{}
	if recursive {
		query.Set("recursive", "true")
	}
	var payload File
	if err := c.get(ctx, "/api/files/"+path, query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SelectFile selects the file at path for printing, optionally starting
// the print immediately.
func (c *Client) SelectFile(ctx context.Context, path string, printNow bool) error {
	if err := validateFilePath(path); err != nil {
		return err
	}
	payload := map[string]any{"command": "select"}
	if printNow {
		payload["print"] = true
	}
	return c.postJSON(ctx, "/api/files/"+path, payload, nil)
}

// UnselectFile unselects the file at path. The path is required and
// validated the same way as for SelectFile.
func (c *Client) UnselectFile(ctx context.Context, path string) error {
	if err := validateFilePath(path); err != nil {
		return err
	}
	return c.postJSON(ctx, "/api/files/"+path, map[string]any{"command": "unselect"}, nil)
}

// SliceOptions configure a slice command.
type SliceOptions struct {
	// PositionX and PositionY center the object on the print bed, in
	// millimeters. Zero uses the 100mm default.
	PositionX int
	PositionY int
	// PrinterProfile and Profile select the printer and slicing
	// profiles; empty uses the server defaults.
	PrinterProfile string
	Profile        string
	// Select and Print act on the sliced file once slicing finishes.
	Select bool
	Print  bool
	// Slicer names the slicing engine. Empty uses "cura".
	Slicer string
}

// SliceFile slices the STL file at path into a gcode file with the
// given name. Slicing runs in the background on the server; the result
// only identifies the output file.
func (c *Client) SliceFile(ctx context.Context, path, gcode string, opts SliceOptions) (*SliceResult, error) {
	if err := validateFilePath(path); err != nil {
		return nil, err
	}
	if strings.TrimSpace(gcode) == "" {
		return nil, &ValidationError{Field: "gcode", Reason: "must not be empty"}
	}
	slicer := opts.Slicer
	if slicer == "" {
		slicer = "cura"
	}
	x, y := opts.PositionX, opts.PositionY
	if x == 0 {
		x = 100
	}
	if y == 0 {
		y = 100
	}
	payload := map[string]any{
		"command":  "slice",
		"slicer":   slicer,
		"gcode":    gcode,
		"position": map[string]int{"x": x, "y": y},
	}
	if opts.PrinterProfile != "" {
		payload["printerProfile"] = opts.PrinterProfile
	}
	if opts.Profile != "" {
		payload["profile"] = opts.Profile
	}
	if opts.Select {
		payload["select"] = true
	}
	if opts.Print {
		payload["print"] = true
	}
	var result SliceResult
	if err := c.postJSON(ctx, "/api/files/"+path, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteFile deletes the file at path.
func (c *Client) DeleteFile(ctx context.Context, path string) error {
	if err := validateFilePath(path); err != nil {
		return err
	}
	return c.deletePath(ctx, "/api/files/"+path)
}
