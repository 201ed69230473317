package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Display is the subset of the X protocol the window-manager client needs.
// Connection implements it against a live server; tests use an in-memory fake.
type Display interface {
	RootWindow() xproto.Window
	Atom(name string) (xproto.Atom, error)
	GetProperty(win xproto.Window, property, typ xproto.Atom, longLength uint32) (*xproto.GetPropertyReply, error)
	SendEvent(dest xproto.Window, mask uint32, event []byte) error
	MapRaised(win xproto.Window) error
	Close()
}

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

var _ Display = (*Connection)(nil)

// NewConnection establishes a connection to the X11 server. An empty display
// name uses the DISPLAY environment variable.
func NewConnection(display string) (*Connection, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, &Error{Kind: ErrConnection, Op: "open display " + displayLabel(display), Err: err}
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// RootWindow returns the root window of the default screen.
func (c *Connection) RootWindow() xproto.Window {
	return c.Root
}

// Atom interns name, using xgbutil's per-connection atom cache.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	return xprop.Atm(c.XUtil, name)
}

// GetProperty reads up to longLength 32-bit words of a property without deleting it.
func (c *Connection) GetProperty(win xproto.Window, property, typ xproto.Atom, longLength uint32) (*xproto.GetPropertyReply, error) {
	reply, err := xproto.GetProperty(c.XUtil.Conn(), false, win, property, typ, 0, longLength).Reply()
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, fmt.Errorf("empty GetProperty reply")
	}
	return reply, nil
}

// SendEvent delivers a raw 32-byte event to dest with the given event mask.
func (c *Connection) SendEvent(dest xproto.Window, mask uint32, event []byte) error {
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		dest,
		mask,
		string(event),
	).Check()
}

// MapRaised raises win to the top of the stack and maps it.
func (c *Connection) MapRaised(win xproto.Window) error {
	err := xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		win,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to raise window: %w", err)
	}
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), win).Check(); err != nil {
		return fmt.Errorf("failed to map window: %w", err)
	}
	return nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

func displayLabel(display string) string {
	if display == "" {
		return "$DISPLAY"
	}
	return display
}
