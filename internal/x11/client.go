package x11

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
)

// Hints read and messages sent by the client, as published by EWMH and
// GNOME (legacy) window managers.
const (
	HintClientList     = "_NET_CLIENT_LIST"
	HintWinClientList  = "_WIN_CLIENT_LIST"
	HintPID            = "_NET_WM_PID"
	HintName           = "_NET_WM_NAME"
	HintWMName         = "WM_NAME"
	HintDesktop        = "_NET_WM_DESKTOP"
	HintWinWorkspace   = "_WIN_WORKSPACE"
	HintActiveWindow   = "_NET_ACTIVE_WINDOW"
	HintCurrentDesktop = "_NET_CURRENT_DESKTOP"
)

// Property types, by atom name.
const (
	TypeWindow     = "WINDOW"
	TypeCardinal   = "CARDINAL"
	TypeString     = "STRING"
	TypeUTF8String = "UTF8_STRING"
)

const clientMessageFields = 5

// Client talks to the running window manager through its hint protocol.
// It owns one display connection and is not safe for concurrent use.
type Client struct {
	display   Display
	root      xproto.Window
	logger    *slog.Logger
	longWidth int
	closeOnce sync.Once
}

// NewClient wraps an open display. A nil logger discards log output.
func NewClient(display Display, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		display:   display,
		root:      display.RootWindow(),
		logger:    logger,
		longWidth: nativeLongWidth,
	}
}

// Open connects to the named display ("" for $DISPLAY) and returns a client
// owning that connection.
func Open(display string, logger *slog.Logger) (*Client, error) {
	conn, err := NewConnection(display)
	if err != nil {
		return nil, err
	}
	return NewClient(conn, logger), nil
}

// Close releases the display connection. Only the first call has an effect.
func (c *Client) Close() {
	c.closeOnce.Do(c.display.Close)
}

// Root returns the root window of the default screen.
func (c *Client) Root() xproto.Window {
	return c.root
}

// GetWindowProperty reads property name of win, which must have type
// expectedType. A property that is absent reports type None and fails the
// type check.
func (c *Client) GetWindowProperty(win xproto.Window, expectedType, name string) (*PropertyBuffer, error) {
	const op = "get property"

	propAtom, err := c.display.Atom(name)
	if err != nil {
		return nil, &Error{Kind: ErrPropertyRead, Op: op, Hint: name, Window: win, Err: err}
	}
	typeAtom, err := c.display.Atom(expectedType)
	if err != nil {
		return nil, &Error{Kind: ErrPropertyRead, Op: op, Hint: name, Window: win, Err: err}
	}

	reply, err := c.display.GetProperty(win, propAtom, typeAtom, maxPropertyLength)
	if err != nil {
		return nil, &Error{Kind: ErrPropertyRead, Op: op, Hint: name, Window: win, Err: err}
	}
	if reply.Type != typeAtom {
		return nil, &Error{
			Kind:   ErrPropertyType,
			Op:     op,
			Hint:   name,
			Window: win,
			Err:    fmt.Errorf("want %s, got atom %d", expectedType, reply.Type),
		}
	}

	return newPropertyBuffer(reply, c.longWidth), nil
}

// ClientMSG sends a 32-bit client message named msg about win to the root
// window, where the window manager intercepts it. Up to five data fields may
// be given; missing ones are zero.
func (c *Client) ClientMSG(win xproto.Window, msg string, data ...uint32) error {
	const op = "send"

	if len(data) > clientMessageFields {
		return &Error{Kind: ErrMessageSend, Op: op, Hint: msg, Window: win,
			Err: fmt.Errorf("%d data fields, at most %d allowed", len(data), clientMessageFields)}
	}

	msgAtom, err := c.display.Atom(msg)
	if err != nil {
		return &Error{Kind: ErrMessageSend, Op: op, Hint: msg, Window: win, Err: err}
	}

	fields := make([]uint32, clientMessageFields)
	copy(fields, data)

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   msgAtom,
		Data:   xproto.ClientMessageDataUnionData32New(fields),
	}

	err = c.display.SendEvent(
		c.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		ev.Bytes(),
	)
	if err != nil {
		return &Error{Kind: ErrMessageSend, Op: op, Hint: msg, Window: win, Err: err}
	}
	return nil
}
