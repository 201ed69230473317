package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Window is one top-level client window.
type Window struct {
	ID    WindowID `json:"id"`
	PID   int      `json:"pid"`
	Title string   `json:"title"`
}

// Backend abstracts window-manager control across platforms.
type Backend interface {
	// ListWindows returns the managed client windows in window-manager order.
	ListWindows() ([]Window, error)
	// ActivateWindow raises and focuses a window, switching to its desktop
	// first when switchDesktop is set.
	ActivateWindow(windowID WindowID, switchDesktop bool) error
	// ActivateByPID activates the first window owned by pid and returns it.
	ActivateByPID(pid int, switchDesktop bool) (Window, error)
}
