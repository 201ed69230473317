package x11

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// maxPropertyLength caps every property read at 4096 bytes. GetProperty
// expresses the length in 32-bit words.
const maxPropertyLength = 4096 / 4

// nativeLongWidth is the byte width of a C long on this host. Xlib hands out
// format-32 property data as arrays of longs, and callers index it that way.
const nativeLongWidth = bits.UintSize / 8

// PropertyBuffer holds the value of one property read. Format-32 items are
// stored one native long per item, so the buffer of N items is N*8 bytes on
// 64-bit hosts and N*4 bytes on 32-bit ones.
type PropertyBuffer struct {
	data      []byte
	format    byte
	longWidth int
}

func newPropertyBuffer(reply *xproto.GetPropertyReply, longWidth int) *PropertyBuffer {
	size := int(reply.Format/8) * int(reply.ValueLen)
	if reply.Format == 32 {
		size *= longWidth / 4
	}

	buf := &PropertyBuffer{
		data:      make([]byte, size),
		format:    reply.Format,
		longWidth: longWidth,
	}

	if reply.Format != 32 {
		copy(buf.data, reply.Value)
		return buf
	}

	for i := 0; i < int(reply.ValueLen) && (i+1)*4 <= len(reply.Value); i++ {
		putLong(buf.data[i*longWidth:], uint64(xgb.Get32(reply.Value[i*4:])), longWidth)
	}
	return buf
}

// Len is the payload size in bytes.
func (p *PropertyBuffer) Len() int {
	return len(p.data)
}

// Format is the item width in bits reported by the server (8, 16 or 32).
func (p *PropertyBuffer) Format() byte {
	return p.format
}

// Bytes returns a copy of the raw payload.
func (p *PropertyBuffer) Bytes() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

// String returns the payload as text, terminated at the first NUL byte.
func (p *PropertyBuffer) String() string {
	if i := bytes.IndexByte(p.data, 0); i >= 0 {
		return string(p.data[:i])
	}
	return string(p.data)
}

// LongCount is the number of native longs in the payload.
func (p *PropertyBuffer) LongCount() int {
	if p.longWidth == 0 {
		return 0
	}
	return len(p.data) / p.longWidth
}

// Long returns the i-th native long of the payload.
func (p *PropertyBuffer) Long(i int) (uint64, bool) {
	if i < 0 || i >= p.LongCount() {
		return 0, false
	}
	return getLong(p.data[i*p.longWidth:], p.longWidth), true
}

// Longs returns every native long in the payload.
func (p *PropertyBuffer) Longs() []uint64 {
	out := make([]uint64, p.LongCount())
	for i := range out {
		out[i] = getLong(p.data[i*p.longWidth:], p.longWidth)
	}
	return out
}

// Cardinal returns the first long, the usual shape of single-value hints.
func (p *PropertyBuffer) Cardinal() (uint64, bool) {
	return p.Long(0)
}

// Windows decodes the payload as a list of window identifiers, one per long.
func (p *PropertyBuffer) Windows() []xproto.Window {
	longs := p.Longs()
	out := make([]xproto.Window, len(longs))
	for i, v := range longs {
		out[i] = xproto.Window(v)
	}
	return out
}

func putLong(b []byte, v uint64, width int) {
	if width == 8 {
		binary.NativeEndian.PutUint64(b, v)
		return
	}
	binary.NativeEndian.PutUint32(b, uint32(v))
}

func getLong(b []byte, width int) uint64 {
	if width == 8 {
		return binary.NativeEndian.Uint64(b)
	}
	return uint64(binary.NativeEndian.Uint32(b))
}
