// Package plugin provides discovery and execution of result plugins:
// external executables that react to completed calculations, e.g. by
// copying the result to the clipboard.
package plugin

import "encoding/json"

// Manifest describes a plugin's metadata and capabilities.
type Manifest struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Description  string          `json:"description"`
	Executable   string          `json:"executable"`
	Actions      []string        `json:"actions"`
	ConfigSchema json.RawMessage `json:"configSchema,omitempty"`
}

// Request represents a request sent to a plugin for execution.
type Request struct {
	Action     string          `json:"action"`
	Event      string          `json:"event"`                // "calculation" or "clear"
	Expression string          `json:"expression,omitempty"` // e.g. "7 + 3"
	Result     string          `json:"result,omitempty"`     // e.g. "10"
	Config     json.RawMessage `json:"config"`
}

// Response represents the response from a plugin execution.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Plugin represents a discovered plugin with its manifest and location.
type Plugin struct {
	Manifest   Manifest
	Path       string
	Executable string
}
