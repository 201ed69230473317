package mcp

import "github.com/1broseidon/swmctrl/internal/platform"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []platform.Window `json:"windows"`
}

// ActivateWindowInput is the input for the activate_window tool.
type ActivateWindowInput struct {
	Window        uint32 `json:"window" jsonschema:"X11 window id (decimal)"`
	SwitchDesktop *bool  `json:"switch_desktop,omitempty" jsonschema:"Switch to the window's desktop before activating (default: from config, normally true)"`
}

// ActivateWindowOutput is the output for the activate_window tool.
type ActivateWindowOutput struct {
	Window    uint32 `json:"window"`
	Activated bool   `json:"activated"`
}

// ActivatePIDInput is the input for the activate_pid tool.
type ActivatePIDInput struct {
	PID           int   `json:"pid" jsonschema:"Process id owning the window"`
	SwitchDesktop *bool `json:"switch_desktop,omitempty" jsonschema:"Switch to the window's desktop before activating (default: from config, normally true)"`
}

// ActivatePIDOutput is the output for the activate_pid tool.
type ActivatePIDOutput struct {
	Window    platform.Window `json:"window"`
	Activated bool            `json:"activated"`
}
