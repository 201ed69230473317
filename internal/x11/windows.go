package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Window is a top-level client window as seen at query time.
type Window struct {
	ID    xproto.Window
	PID   uint32 // 0 when the window publishes no _NET_WM_PID
	Title string
}

// GetClients returns the managed client windows in the order the window
// manager lists them.
func (c *Client) GetClients() []xproto.Window {
	return c.GetClientsHint(HintClientList)
}

// GetClientsHint reads the client list from the named root hint, falling back
// once to _WIN_CLIENT_LIST. When neither can be read the list is empty.
func (c *Client) GetClientsHint(name string) []xproto.Window {
	candidates := []string{name}
	if name != HintWinClientList {
		candidates = append(candidates, HintWinClientList)
	}

	for i, hint := range candidates {
		buf, err := c.GetWindowProperty(c.root, TypeWindow, hint)
		if err != nil {
			if i+1 < len(candidates) {
				c.logger.Debug("client list unavailable, trying legacy hint",
					"hint", hint, "fallback", candidates[i+1], "error", err)
				continue
			}
			c.logger.Warn("cannot read client list", "hint", hint, "error", err)
			break
		}
		return buf.Windows()
	}
	return []xproto.Window{}
}

// GetWindowTitle resolves the title of win from _NET_WM_NAME, falling back
// to WM_NAME. An unresolvable title is empty.
func (c *Client) GetWindowTitle(win xproto.Window) string {
	return c.GetWindowTitleHint(win, HintName)
}

// GetWindowTitleHint resolves the title of win from the named hint, falling
// back once to the other title hint.
func (c *Client) GetWindowTitleHint(win xproto.Window, name string) string {
	fallback := HintWMName
	if name == HintWMName {
		fallback = HintName
	}

	for _, hint := range []string{name, fallback} {
		buf, err := c.GetWindowProperty(win, titleType(hint), hint)
		if err != nil {
			c.logger.Debug("cannot read window title", "window", win, "hint", hint, "error", err)
			continue
		}
		return buf.String()
	}
	return ""
}

func titleType(hint string) string {
	if hint == HintWMName {
		return TypeString
	}
	return TypeUTF8String
}

// GetWindowPID returns the process id published in _NET_WM_PID. A window
// without a usable pid hint reports 0; read failures are returned.
func (c *Client) GetWindowPID(win xproto.Window) (uint32, error) {
	buf, err := c.GetWindowProperty(win, TypeCardinal, HintPID)
	if err != nil {
		if errors.Is(err, ErrPropertyType) {
			c.logger.Debug("window has no pid hint", "window", win, "error", err)
			return 0, nil
		}
		return 0, err
	}
	pid, ok := buf.Cardinal()
	if !ok {
		return 0, nil
	}
	return uint32(pid), nil
}

// GetWindows lists every client window with its pid and title.
func (c *Client) GetWindows() ([]Window, error) {
	clients := c.GetClients()
	windows := make([]Window, 0, len(clients))
	for _, win := range clients {
		pid, err := c.GetWindowPID(win)
		if err != nil {
			return nil, err
		}
		windows = append(windows, Window{
			ID:    win,
			PID:   pid,
			Title: c.GetWindowTitle(win),
		})
	}
	return windows, nil
}

// GetWindowByPID returns the first client window owned by pid.
func (c *Client) GetWindowByPID(pid uint32) (Window, error) {
	if pid != 0 {
		for _, win := range c.GetClients() {
			got, err := c.GetWindowPID(win)
			if err != nil {
				return Window{}, err
			}
			if got != pid {
				continue
			}
			return Window{ID: win, PID: pid, Title: c.GetWindowTitle(win)}, nil
		}
	}
	return Window{}, &Error{Kind: ErrNotFound, Op: "find window", Hint: HintPID, Err: fmt.Errorf("no window with process id %d", pid)}
}
