package x11

import (
	"encoding/binary"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

const fakeRoot xproto.Window = 0x1e5

type fakeProp struct {
	typ    string
	format byte
	value  []byte
}

func cardinalProp(values ...uint32) fakeProp {
	return fakeProp{typ: TypeCardinal, format: 32, value: wire32(values...)}
}

func windowProp(wins ...xproto.Window) fakeProp {
	values := make([]uint32, len(wins))
	for i, w := range wins {
		values[i] = uint32(w)
	}
	return fakeProp{typ: TypeWindow, format: 32, value: wire32(values...)}
}

func utf8Prop(s string) fakeProp {
	return fakeProp{typ: TypeUTF8String, format: 8, value: []byte(s)}
}

func stringProp(s string) fakeProp {
	return fakeProp{typ: TypeString, format: 8, value: []byte(s)}
}

func wire32(values ...uint32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
	return b
}

type propRequest struct {
	win  xproto.Window
	name string
}

type sentMessage struct {
	dest   xproto.Window
	mask   uint32
	window xproto.Window
	name   string
	format byte
	data   []uint32
}

// fakeDisplay answers property reads from an in-memory table the way an X
// server does: an absent property has type None, a property of another type
// reports its real type and no data.
type fakeDisplay struct {
	atoms map[string]xproto.Atom
	names map[xproto.Atom]string
	next  xproto.Atom

	props   map[xproto.Window]map[string]fakeProp
	readErr map[string]error
	sendErr error
	raise   error

	requests []propRequest
	messages []sentMessage
	raised   []xproto.Window
	closed   int
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{
		atoms:   map[string]xproto.Atom{},
		names:   map[xproto.Atom]string{},
		next:    300,
		props:   map[xproto.Window]map[string]fakeProp{},
		readErr: map[string]error{},
	}
	d.define(TypeCardinal, xproto.AtomCardinal)
	d.define(TypeString, xproto.AtomString)
	d.define(TypeWindow, xproto.AtomWindow)
	return d
}

func (d *fakeDisplay) define(name string, atom xproto.Atom) {
	d.atoms[name] = atom
	d.names[atom] = name
}

func (d *fakeDisplay) set(win xproto.Window, name string, p fakeProp) {
	if d.props[win] == nil {
		d.props[win] = map[string]fakeProp{}
	}
	d.props[win][name] = p
}

func (d *fakeDisplay) requestedNames() []string {
	out := make([]string, len(d.requests))
	for i, r := range d.requests {
		out[i] = r.name
	}
	return out
}

func (d *fakeDisplay) RootWindow() xproto.Window { return fakeRoot }

func (d *fakeDisplay) Atom(name string) (xproto.Atom, error) {
	if atom, ok := d.atoms[name]; ok {
		return atom, nil
	}
	atom := d.next
	d.next++
	d.define(name, atom)
	return atom, nil
}

func (d *fakeDisplay) GetProperty(win xproto.Window, property, typ xproto.Atom, longLength uint32) (*xproto.GetPropertyReply, error) {
	name := d.names[property]
	d.requests = append(d.requests, propRequest{win: win, name: name})
	if err := d.readErr[name]; err != nil {
		return nil, err
	}

	p, ok := d.props[win][name]
	if !ok {
		return &xproto.GetPropertyReply{}, nil
	}
	actual, _ := d.Atom(p.typ)
	if actual != typ {
		return &xproto.GetPropertyReply{Type: actual, Format: p.format, BytesAfter: uint32(len(p.value))}, nil
	}

	value := p.value
	if limit := int(longLength) * 4; len(value) > limit {
		value = value[:limit]
	}
	return &xproto.GetPropertyReply{
		Type:       actual,
		Format:     p.format,
		BytesAfter: uint32(len(p.value) - len(value)),
		ValueLen:   uint32(len(value) / int(p.format/8)),
		Value:      value,
	}, nil
}

func (d *fakeDisplay) SendEvent(dest xproto.Window, mask uint32, event []byte) error {
	if d.sendErr != nil {
		return d.sendErr
	}
	ev := xproto.ClientMessageEventNew(event).(xproto.ClientMessageEvent)
	d.messages = append(d.messages, sentMessage{
		dest:   dest,
		mask:   mask,
		window: ev.Window,
		name:   d.names[ev.Type],
		format: ev.Format,
		data:   append([]uint32(nil), ev.Data.Data32...),
	})
	return nil
}

func (d *fakeDisplay) MapRaised(win xproto.Window) error {
	if d.raise != nil {
		return d.raise
	}
	d.raised = append(d.raised, win)
	return nil
}

func (d *fakeDisplay) Close() { d.closed++ }

func newTestClient(t *testing.T) (*Client, *fakeDisplay) {
	t.Helper()
	d := newFakeDisplay()
	return NewClient(d, nil), d
}
