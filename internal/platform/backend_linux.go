//go:build linux

package platform

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/1broseidon/swmctrl/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps a window-manager client behind the platform Backend interface.
type LinuxBackend struct {
	client *x11.Client
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing client.
func NewLinuxBackend(client *x11.Client) *LinuxBackend {
	return &LinuxBackend{client: client}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh
// X11 connection to display ("" for $DISPLAY).
func NewLinuxBackendFromDisplay(display string, logger *slog.Logger) (*LinuxBackend, error) {
	client, err := x11.Open(display, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{client: client}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.client != nil {
		b.client.Close()
	}
}

// ListWindows returns every managed client window.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	client, err := b.connection()
	if err != nil {
		return nil, err
	}

	clients, err := client.GetWindows()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, w := range clients {
		windows = append(windows, windowFromClient(w))
	}
	return windows, nil
}

// ActivateWindow activates windowID.
func (b *LinuxBackend) ActivateWindow(windowID WindowID, switchDesktop bool) error {
	client, err := b.connection()
	if err != nil {
		return err
	}
	return client.Activate(xproto.Window(windowID), switchDesktop)
}

// ActivateByPID activates the first window owned by pid.
func (b *LinuxBackend) ActivateByPID(pid int, switchDesktop bool) (Window, error) {
	client, err := b.connection()
	if err != nil {
		return Window{}, err
	}
	if pid <= 0 || uint64(pid) > math.MaxUint32 {
		return Window{}, fmt.Errorf("invalid process id %d", pid)
	}

	w, err := client.GetWindowByPID(uint32(pid))
	if err != nil {
		return Window{}, err
	}
	win := windowFromClient(w)
	if err := client.Activate(w.ID, switchDesktop); err != nil {
		return win, err
	}
	return win, nil
}

func (b *LinuxBackend) connection() (*x11.Client, error) {
	if b == nil || b.client == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.client, nil
}

func windowFromClient(w x11.Window) Window {
	return Window{
		ID:    WindowID(w.ID),
		PID:   int(w.PID),
		Title: w.Title,
	}
}
