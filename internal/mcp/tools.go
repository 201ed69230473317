package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/swmctrl/internal/platform"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("failed to list windows: %w", err)
	}
	if windows == nil {
		windows = []platform.Window{}
	}
	return nil, ListWindowsOutput{Windows: windows}, nil
}

func (s *Server) handleActivateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ActivateWindowInput) (*mcpsdk.CallToolResult, ActivateWindowOutput, error) {
	if args.Window == 0 {
		return nil, ActivateWindowOutput{}, fmt.Errorf("window is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.ActivateWindow(platform.WindowID(args.Window), s.resolveSwitchDesktop(args.SwitchDesktop)); err != nil {
		return nil, ActivateWindowOutput{}, fmt.Errorf("failed to activate window %d: %w", args.Window, err)
	}
	return nil, ActivateWindowOutput{Window: args.Window, Activated: true}, nil
}

func (s *Server) handleActivatePID(_ context.Context, _ *mcpsdk.CallToolRequest, args ActivatePIDInput) (*mcpsdk.CallToolResult, ActivatePIDOutput, error) {
	if args.PID <= 0 {
		return nil, ActivatePIDOutput{}, fmt.Errorf("pid must be > 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	win, err := s.backend.ActivateByPID(args.PID, s.resolveSwitchDesktop(args.SwitchDesktop))
	if err != nil {
		return nil, ActivatePIDOutput{}, fmt.Errorf("failed to activate window of pid %d: %w", args.PID, err)
	}
	return nil, ActivatePIDOutput{Window: win, Activated: true}, nil
}

func (s *Server) resolveSwitchDesktop(requested *bool) bool {
	if requested != nil {
		return *requested
	}
	return s.switchDesktop
}
