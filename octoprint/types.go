package octoprint

import (
	"encoding/json"
	"fmt"
	"time"
)

// VersionInfo mirrors the payload returned by /api/version.
type VersionInfo struct {
	API    string `json:"api"`
	Server string `json:"server"`
	Text   string `json:"text"`
}

// ServerInfo mirrors /api/server.
type ServerInfo struct {
	Version  string `json:"version"`
	SafeMode string `json:"safemode"`
}

// ConnectionState mirrors GET /api/connection.
type ConnectionState struct {
	Current ConnectionCurrent `json:"current"`
	Options ConnectionOptions `json:"options"`
}

// ConnectionCurrent describes the active serial connection, if any.
type ConnectionCurrent struct {
	State          string `json:"state"`
	Port           string `json:"port"`
	Baudrate       int    `json:"baudrate"`
	PrinterProfile string `json:"printerProfile"`
}

// ConnectionOptions lists the ports, baudrates and profiles the server
// can connect with, plus the stored preferences.
type ConnectionOptions struct {
	Ports                    []string         `json:"ports"`
	Baudrates                []int            `json:"baudrates"`
	PrinterProfiles          []PrinterProfile `json:"printerProfiles"`
	PortPreference           string           `json:"portPreference"`
	BaudratePreference       int              `json:"baudratePreference"`
	PrinterProfilePreference string           `json:"printerProfilePreference"`
	Autoconnect              bool             `json:"autoconnect"`
}

// PrinterProfile identifies a configured printer profile.
type PrinterProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FileListing mirrors GET /api/files/{location}.
type FileListing struct {
	Files []File `json:"files"`
	Free  int64  `json:"free"`
	Total int64  `json:"total"`
}

// File describes a single file or folder entry.
type File struct {
	Name          string         `json:"name"`
	Display       string         `json:"display"`
	Path          string         `json:"path"`
	Type          string         `json:"type"`
	TypePath      []string       `json:"typePath"`
	Origin        string         `json:"origin"`
	Size          int64          `json:"size"`
	Date          int64          `json:"date"`
	Hash          string         `json:"hash"`
	Refs          *FileRefs      `json:"refs"`
	GCodeAnalysis *GCodeAnalysis `json:"gcodeAnalysis"`
	Children      []File         `json:"children"`
}

// IsFolder reports whether the entry is a folder rather than a file.
func (f File) IsFolder() bool {
	return f.Type == "folder"
}

// ModTime returns the upload timestamp, or the zero time when the
// server did not provide one (sdcard entries have no dates).
func (f File) ModTime() time.Time {
	if f.Date == 0 {
		return time.Time{}
	}
	return time.Unix(f.Date, 0)
}

// FileRefs carries the resource links for a file entry.
type FileRefs struct {
	Resource string `json:"resource"`
	Download string `json:"download"`
	Model    string `json:"model"`
}

// GCodeAnalysis carries the server's gcode analysis results.
type GCodeAnalysis struct {
	EstimatedPrintTime float64                `json:"estimatedPrintTime"`
	Filament           map[string]FilamentUse `json:"filament"`
}

// FilamentUse describes filament consumption for one tool.
type FilamentUse struct {
	Length float64 `json:"length"`
	Volume float64 `json:"volume"`
}

// UploadResult mirrors the response to a file upload.
type UploadResult struct {
	Done  bool                    `json:"done"`
	Files map[string]UploadedFile `json:"files"`
}

// UploadedFile describes one stored copy of an uploaded file, keyed in
// UploadResult.Files by its location.
type UploadedFile struct {
	Name   string    `json:"name"`
	Origin string    `json:"origin"`
	Path   string    `json:"path"`
	Refs   *FileRefs `json:"refs"`
}

// FolderResult mirrors the response to a folder creation.
type FolderResult struct {
	Done   bool         `json:"done"`
	Folder UploadedFile `json:"folder"`
}

// SliceResult mirrors the response to a slice command. Slicing itself
// continues in the background on the server.
type SliceResult struct {
	Name   string    `json:"name"`
	Origin string    `json:"origin"`
	Refs   *FileRefs `json:"refs"`
}

// JobStatus mirrors GET /api/job.
type JobStatus struct {
	Job      JobDetails  `json:"job"`
	Progress JobProgress `json:"progress"`
	State    string      `json:"state"`
	Error    string      `json:"error"`
}

// JobDetails identifies the file being printed and its estimates.
type JobDetails struct {
	File               JobFile                `json:"file"`
	EstimatedPrintTime float64                `json:"estimatedPrintTime"`
	LastPrintTime      float64                `json:"lastPrintTime"`
	Filament           map[string]FilamentUse `json:"filament"`
}

// JobFile identifies the selected file.
type JobFile struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Origin  string `json:"origin"`
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	Date    int64  `json:"date"`
}

// JobProgress tracks completion of the active job.
type JobProgress struct {
	Completion          float64 `json:"completion"`
	Filepos             int64   `json:"filepos"`
	PrintTime           float64 `json:"printTime"`
	PrintTimeLeft       float64 `json:"printTimeLeft"`
	PrintTimeLeftOrigin string  `json:"printTimeLeftOrigin"`
}

// Elapsed returns the print time so far.
func (p JobProgress) Elapsed() time.Duration {
	if p.PrintTime <= 0 {
		return 0
	}
	return time.Duration(p.PrintTime * float64(time.Second))
}

// Remaining returns the server's remaining-time estimate, or zero when
// no estimate is available.
func (p JobProgress) Remaining() time.Duration {
	if p.PrintTimeLeft <= 0 {
		return 0
	}
	return time.Duration(p.PrintTimeLeft * float64(time.Second))
}

// PrinterState mirrors GET /api/printer.
type PrinterState struct {
	Temperature TemperatureState `json:"temperature"`
	SD          SDState          `json:"sd"`
	State       PrinterStateInfo `json:"state"`
}

// SDState reports SD card readiness.
type SDState struct {
	Ready bool `json:"ready"`
}

// PrinterStateInfo carries the printer's state text and flags.
type PrinterStateInfo struct {
	Text  string       `json:"text"`
	Flags PrinterFlags `json:"flags"`
	Error string       `json:"error"`
}

// PrinterFlags is the server's flag set describing the printer state.
type PrinterFlags struct {
	Operational   bool `json:"operational"`
	Paused        bool `json:"paused"`
	Printing      bool `json:"printing"`
	Cancelling    bool `json:"cancelling"`
	Pausing       bool `json:"pausing"`
	SDReady       bool `json:"sdReady"`
	Error         bool `json:"error"`
	Ready         bool `json:"ready"`
	ClosedOrError bool `json:"closedOrError"`
}

// TemperatureData reports one heater's readings in degrees Celsius.
type TemperatureData struct {
	Actual float64 `json:"actual"`
	Target float64 `json:"target"`
	Offset float64 `json:"offset"`
}

// TemperatureState carries current temperature readings keyed by heater
// name (tool0, tool1, bed, ...). The server interleaves the optional
// history list into the same JSON object, so decoding splits the two.
type TemperatureState struct {
	Current map[string]TemperatureData
	History []TemperatureHistoryEntry
}

func (t *TemperatureState) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Current = nil
	t.History = nil
	for key, value := range raw {
		if key == "history" {
			if err := json.Unmarshal(value, &t.History); err != nil {
				return fmt.Errorf("history: %w", err)
			}
			continue
		}
		var entry TemperatureData
		if err := json.Unmarshal(value, &entry); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if t.Current == nil {
			t.Current = make(map[string]TemperatureData)
		}
		t.Current[key] = entry
	}
	return nil
}

// TemperatureHistoryEntry is one historic sample. Heater readings share
// the object with the timestamp, mirroring the wire format.
type TemperatureHistoryEntry struct {
	Time    int64
	Heaters map[string]TemperatureData
}

func (e *TemperatureHistoryEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Time = 0
	e.Heaters = nil
	for key, value := range raw {
		if key == "time" {
			if err := json.Unmarshal(value, &e.Time); err != nil {
				return fmt.Errorf("time: %w", err)
			}
			continue
		}
		var entry TemperatureData
		if err := json.Unmarshal(value, &entry); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if e.Heaters == nil {
			e.Heaters = make(map[string]TemperatureData)
		}
		e.Heaters[key] = entry
	}
	return nil
}

// Timestamp returns the sample time.
func (e TemperatureHistoryEntry) Timestamp() time.Time {
	return time.Unix(e.Time, 0)
}
