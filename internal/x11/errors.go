package x11

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// Error kinds. Match them with errors.Is.
var (
	ErrConnection   = errors.New("cannot open display")
	ErrPropertyRead = errors.New("cannot read property")
	ErrPropertyType = errors.New("invalid property type")
	ErrMessageSend  = errors.New("cannot send client message")
	ErrNotFound     = errors.New("no matching window")
)

// Error describes a failed window-manager operation. Kind is one of the
// Err* values above; Err is the underlying cause, if any.
type Error struct {
	Kind   error
	Op     string
	Hint   string
	Window xproto.Window
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Hint != "" {
		b.WriteString(" ")
		b.WriteString(e.Hint)
	}
	if e.Window != 0 {
		fmt.Fprintf(&b, " (window 0x%x)", uint32(e.Window))
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
