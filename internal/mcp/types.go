package mcp

import "github.com/1broseidon/winshot/internal/window"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []window.Record `json:"windows"`
	Count   int             `json:"count"`
}

// FindWindowInput is the input for the find_window tool.
type FindWindowInput struct {
	Title         string `json:"title" jsonschema:"required,Title substring to search for (case-insensitive)"`
	SearchInOwner *bool  `json:"search_in_owner,omitempty" jsonschema:"Also match against owning application names (default: true)"`
}

// FindWindowOutput is the output for the find_window tool.
type FindWindowOutput struct {
	WindowID uint32 `json:"window_id"`
	Name     string `json:"name,omitempty"`
	Owner    string `json:"owner,omitempty"`
}

// CaptureWindowInput is the input for the capture_window_screenshot tool.
type CaptureWindowInput struct {
	WindowIdentifier string `json:"window_identifier" jsonschema:"required,Numeric window ID or a title/application substring"`
	MaxWidth         int    `json:"max_width,omitempty" jsonschema:"Downscale so width does not exceed this many pixels (0 = no limit)"`
	MaxHeight        int    `json:"max_height,omitempty" jsonschema:"Downscale so height does not exceed this many pixels (0 = no limit)"`
}

// CaptureWindowOutput is the output for the capture_window_screenshot tool.
type CaptureWindowOutput struct {
	WindowID      uint32 `json:"window_id"`
	WindowName    string `json:"window_name,omitempty"`
	ScreenshotURL string `json:"screenshot_url"`
}

// CaptureDisplayInput is the input for the capture_display_screenshot tool.
type CaptureDisplayInput struct {
	Display   int `json:"display,omitempty" jsonschema:"Display index (default: 0, the main display)"`
	MaxWidth  int `json:"max_width,omitempty" jsonschema:"Downscale so width does not exceed this many pixels (0 = no limit)"`
	MaxHeight int `json:"max_height,omitempty" jsonschema:"Downscale so height does not exceed this many pixels (0 = no limit)"`
}

// CaptureDisplayOutput is the output for the capture_display_screenshot tool.
type CaptureDisplayOutput struct {
	Display       int    `json:"display"`
	ScreenshotURL string `json:"screenshot_url"`
}

// SendKeyInput is the input for the send_key tool.
type SendKeyInput struct {
	Key       string   `json:"key" jsonschema:"required,Key name (e.g. a, return, tab, escape, up, f5)"`
	Modifiers []string `json:"modifiers,omitempty" jsonschema:"Modifier keys to hold: command, shift, control, option"`
}

// SendKeyOutput is the output for the send_key tool.
type SendKeyOutput struct {
	Status    string   `json:"status"`
	Key       string   `json:"key"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// TypeTextInput is the input for the type_text tool.
type TypeTextInput struct {
	Text  string   `json:"text" jsonschema:"required,Text to type into the focused window"`
	Delay *float64 `json:"delay,omitempty" jsonschema:"Pause between characters in seconds (default: 0.1)"`
}

// TypeTextOutput is the output for the type_text tool.
type TypeTextOutput struct {
	Status     string `json:"status"`
	Characters int    `json:"characters"`
}
