package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// desktopHints are tried in order when looking up a window's desktop.
var desktopHints = [...]string{HintDesktop, HintWinWorkspace}

// allDesktops is the desktop index of sticky windows.
const allDesktops = 0xFFFFFFFF

// sourcePager marks requests as coming from a pager or direct user action,
// so focus-stealing prevention does not drop them.
const sourcePager = 2

// WindowDesktop returns the desktop index of win from _NET_WM_DESKTOP, or
// from _WIN_WORKSPACE when the former cannot be read.
func (c *Client) WindowDesktop(win xproto.Window) (uint32, error) {
	var lastErr error
	for i, hint := range desktopHints {
		buf, err := c.GetWindowProperty(win, TypeCardinal, hint)
		if err == nil {
			desktop, ok := buf.Cardinal()
			if ok {
				return uint32(desktop), nil
			}
			err = &Error{Kind: ErrPropertyType, Op: "get property", Hint: hint, Window: win,
				Err: fmt.Errorf("empty value")}
		}
		lastErr = err
		if i+1 < len(desktopHints) {
			c.logger.Debug("retrying desktop lookup with legacy hint",
				"window", win, "hint", hint, "fallback", desktopHints[i+1], "error", err)
		}
	}
	return 0, lastErr
}

// SwitchDesktop asks the window manager to show the desktop win is on.
func (c *Client) SwitchDesktop(win xproto.Window) bool {
	desktop, err := c.WindowDesktop(win)
	if err != nil {
		c.logger.Warn("cannot find desktop of window", "window", win, "error", err)
		return false
	}
	if desktop == allDesktops {
		c.logger.Debug("window is on all desktops", "window", win)
		return true
	}

	if err := c.ClientMSG(c.root, HintCurrentDesktop, desktop); err != nil {
		c.logger.Warn("unable to switch desktop", "window", win, "desktop", desktop, "error", err)
		return false
	}
	return true
}

// Activate optionally switches to the desktop of win, then asks the window
// manager to activate it and raises it. A desktop switch failure does not
// stop activation.
func (c *Client) Activate(win xproto.Window, switchDesktop bool) error {
	if switchDesktop {
		c.SwitchDesktop(win)
	}

	if err := c.ClientMSG(win, HintActiveWindow, sourcePager); err != nil {
		return err
	}

	if err := c.display.MapRaised(win); err != nil {
		c.logger.Warn("activation sent but raise failed", "window", win, "error", err)
	}
	return nil
}

// ActivateWindow is Activate reporting only whether the activation message
// was sent.
func (c *Client) ActivateWindow(win xproto.Window, switchDesktop bool) bool {
	if err := c.Activate(win, switchDesktop); err != nil {
		c.logger.Warn("unable to activate window", "window", win, "error", err)
		return false
	}
	return true
}
