package octoprint

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestFiles_RejectsUnknownLocationWithoutRequest(t *testing.T) {
	t.Parallel()

	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, location := range []Location{"", "cloud", "LOCAL", "sd"} {
		_, err := c.Files(context.Background(), location, ListOptions{})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("Files(%q) error = %v, want *ValidationError", location, err)
		}
		if validationErr.Field != "location" {
			t.Fatalf("Field = %q, want location", validationErr.Field)
		}
	}
	if *requests != 0 {
		t.Fatalf("requests issued = %d, want 0", *requests)
	}
}

func TestFiles_EncodesListingQuery(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(FileListing{
			Files: []File{{Name: "benchy.gcode", Path: "benchy.gcode", Type: "machinecode"}},
			Free:  1024,
		})
	})

	listing, err := c.Files(context.Background(), LocationLocal, ListOptions{Recursive: true, Force: true})
	if err != nil {
		t.Fatalf("Files returned error: %v", err)
	}
	if gotPath != "/api/files/local" {
		t.Fatalf("path = %q, want /api/files/local", gotPath)
	}
	if !strings.Contains(gotQuery, "recursive=true") || !strings.Contains(gotQuery, "force=true") {
		t.Fatalf("query = %q, want recursive and force flags", gotQuery)
	}
	if len(listing.Files) != 1 || listing.Files[0].Name != "benchy.gcode" {
		t.Fatalf("listing = %#v, want one file benchy.gcode", listing)
	}
}

func TestPathValidation_AppliesToEveryPerFileOperation(t *testing.T) {
	t.Parallel()

	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	operations := map[string]func(path string) error{
		"FileInfo": func(path string) error {
			_, err := c.FileInfo(ctx, path, false)
			return err
		},
		"SelectFile":   func(path string) error { return c.SelectFile(ctx, path, false) },
		"UnselectFile": func(path string) error { return c.UnselectFile(ctx, path) },
		"SliceFile": func(path string) error {
			_, err := c.SliceFile(ctx, path, "out.gcode", SliceOptions{})
			return err
		},
		"DeleteFile": func(path string) error { return c.DeleteFile(ctx, path) },
	}

	for name, op := range operations {
		for _, path := range []string{"", "benchy.gcode", "remote/benchy.gcode", "local", "sdcard"} {
			err := op(path)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("%s(%q) error = %v, want *ValidationError", name, path, err)
			}
		}
	}
	if *requests != 0 {
		t.Fatalf("requests issued = %d, want 0", *requests)
	}
}

func TestUploadFile_SendsMultipartParts(t *testing.T) {
	t.Parallel()

	var gotFile, gotFilename, gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
			return
		}
		file, header, err := r.FormFile("files")
		if err != nil {
			t.Errorf("missing files part: %v", err)
			return
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			t.Errorf("read files part: %v", err)
			return
		}
		gotFile = string(content)
		gotFilename = header.Filename
		gotPath = r.FormValue("path")
		_ = json.NewEncoder(w).Encode(UploadResult{Done: true, Files: map[string]UploadedFile{
			"local": {Name: header.Filename, Origin: "local"},
		}})
	})

	result, err := c.UploadFile(context.Background(), LocationLocal, "benchy.gcode",
		strings.NewReader("G28\nG1 X10\n"), UploadOptions{Path: "prints"})
	if err != nil {
		t.Fatalf("UploadFile returned error: %v", err)
	}
	if gotFilename != "benchy.gcode" || gotFile != "G28\nG1 X10\n" {
		t.Fatalf("uploaded part = (%q, %q), want benchy.gcode with content", gotFilename, gotFile)
	}
	if gotPath != "prints" {
		t.Fatalf("path part = %q, want prints", gotPath)
	}
	if !result.Done || result.Files["local"].Name != "benchy.gcode" {
		t.Fatalf("result = %#v, want done with local entry", result)
	}
}

func TestUploadFile_Validation(t *testing.T) {
	t.Parallel()

	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	if _, err := c.UploadFile(context.Background(), "usb", "f.gcode", strings.NewReader("x"), UploadOptions{}); err == nil {
		t.Fatal("UploadFile accepted unknown location, want error")
	}
	if _, err := c.UploadFile(context.Background(), LocationLocal, "  ", strings.NewReader("x"), UploadOptions{}); err == nil {
		t.Fatal("UploadFile accepted blank filename, want error")
	}
	if *requests != 0 {
		t.Fatalf("requests issued = %d, want 0", *requests)
	}
}

func TestCreateFolder_SendsFormFieldsAndValidates(t *testing.T) {
	t.Parallel()

	var gotFolder, gotPath, gotURLPath string
	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
			return
		}
		gotURLPath = r.URL.Path
		gotFolder = r.FormValue("foldername")
		gotPath = r.FormValue("path")
		_ = json.NewEncoder(w).Encode(FolderResult{Done: true, Folder: UploadedFile{Name: gotFolder}})
	})

	if _, err := c.CreateFolder(context.Background(), "", ""); err == nil {
		t.Fatal("CreateFolder accepted empty foldername, want error")
	}
	if *requests != 0 {
		t.Fatalf("requests issued = %d, want 0 after validation failure", *requests)
	}

	result, err := c.CreateFolder(context.Background(), "calibration", "prints")
	if err != nil {
		t.Fatalf("CreateFolder returned error: %v", err)
	}
	if gotURLPath != "/api/files/local" {
		t.Fatalf("path = %q, want /api/files/local", gotURLPath)
	}
	if gotFolder != "calibration" || gotPath != "prints" {
		t.Fatalf("form = (%q, %q), want (calibration, prints)", gotFolder, gotPath)
	}
	if !result.Done {
		t.Fatalf("result = %#v, want done", result)
	}
}

func TestSelectAndSliceAndDelete_RequestShapes(t *testing.T) {
	t.Parallel()

	type recorded struct {
		method  string
		path    string
		payload map[string]any
	}
	var last recorded
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		last = recorded{method: r.Method, path: r.URL.Path}
		if r.Method == http.MethodPost {
			last.payload = decodeJSONBody(t, r)
		}
		if strings.Contains(r.URL.Path, "benchy.stl") {
			_ = json.NewEncoder(w).Encode(SliceResult{Name: "benchy.gcode", Origin: "local"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	if err := c.SelectFile(ctx, "local/benchy.gcode", true); err != nil {
		t.Fatalf("SelectFile returned error: %v", err)
	}
	if last.path != "/api/files/local/benchy.gcode" {
		t.Fatalf("path = %q, want /api/files/local/benchy.gcode", last.path)
	}
	if last.payload["command"] != "select" || last.payload["print"] != true {
		t.Fatalf("payload = %#v, want select with print", last.payload)
	}

	if err := c.UnselectFile(ctx, "sdcard/benchy.gcode"); err != nil {
		t.Fatalf("UnselectFile returned error: %v", err)
	}
	if last.payload["command"] != "unselect" {
		t.Fatalf("payload = %#v, want unselect", last.payload)
	}

	result, err := c.SliceFile(ctx, "local/benchy.stl", "benchy.gcode", SliceOptions{Select: true})
	if err != nil {
		t.Fatalf("SliceFile returned error: %v", err)
	}
	if result.Name != "benchy.gcode" {
		t.Fatalf("result = %#v, want benchy.gcode", result)
	}
	if last.payload["command"] != "slice" || last.payload["slicer"] != "cura" || last.payload["gcode"] != "benchy.gcode" {
		t.Fatalf("payload = %#v, want slice with cura default", last.payload)
	}
	position, ok := last.payload["position"].(map[string]any)
	if !ok || position["x"] != float64(100) || position["y"] != float64(100) {
		t.Fatalf("position = %#v, want 100/100 defaults", last.payload["position"])
	}
	if last.payload["select"] != true {
		t.Fatalf("payload = %#v, want select flag", last.payload)
	}
	if _, present := last.payload["print"]; present {
		t.Fatalf("payload = %#v, want print omitted", last.payload)
	}

	if err := c.DeleteFile(ctx, "local/old.gcode"); err != nil {
		t.Fatalf("DeleteFile returned error: %v", err)
	}
	if last.method != http.MethodDelete || last.path != "/api/files/local/old.gcode" {
		t.Fatalf("request = %s %s, want DELETE /api/files/local/old.gcode", last.method, last.path)
	}
}

func TestSliceFile_RequiresOutputName(t *testing.T) {
	t.Parallel()

	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := c.SliceFile(context.Background(), "local/benchy.stl", " ", SliceOptions{})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("SliceFile error = %v, want *ValidationError", err)
	}
	if *requests != 0 {
		t.Fatalf("requests issued = %d, want 0", *requests)
	}
}
