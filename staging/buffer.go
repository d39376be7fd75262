// Package staging holds the fixed-capacity buffers that turn short keys and values
// into NUL-terminated strings for the native encode primitives.
//
// A Buffer is a single slot: every copy overwrites the previous content and
// invalidates every CStr handed out before it.
package staging

import (
	"fmt"

	"github.com/arloliu/coapenc/bytestr"
	"github.com/arloliu/coapenc/errs"
)

// Size is the capacity of a staging buffer, terminator included.
const Size = 32

// Buffer is a fixed-capacity staging slot. The zero value is ready to use and
// all-zero.
type Buffer struct {
	data  [Size]byte
	stamp uint64
}

// Copy copies v.Raw() to the start of the buffer, writes a NUL right after it and
// returns a CStr over the buffer with logical length v.LogicalLen().
//
// len(v.Raw()) must be less than Size. A longer input panics with an *errs.Fault
// wrapping tooLong.
func (b *Buffer) Copy(v bytestr.View, tooLong error) bytestr.CStr {
	raw := v.Raw()
	if len(raw) >= Size {
		errs.Abort(fmt.Errorf("%w: %d bytes, capacity %d", tooLong, len(raw), Size-1))
	}

	b.stamp++
	copy(b.data[:], raw)
	b.data[len(raw)] = 0

	// A terminated input already put its NUL at LogicalLen.
	return bytestr.Borrow(b.data[:], v.LogicalLen(), &b.stamp)
}

// Stage returns v unchanged when it is already NUL-terminated, otherwise it copies
// v into the buffer like Copy.
//
// The zero-copy result aliases the caller's storage and is not affected by later
// staging calls.
func (b *Buffer) Stage(v bytestr.View, tooLong error) bytestr.CStr {
	if v.Terminated() {
		return bytestr.Borrow(v.Raw(), v.LogicalLen(), nil)
	}

	return b.Copy(v, tooLong)
}

// Contents returns the whole backing array. It is meant for inspection only.
func (b *Buffer) Contents() []byte {
	return b.data[:]
}

// Generation returns the number of copies made into the buffer.
func (b *Buffer) Generation() uint64 {
	return b.stamp
}

// Reset zeroes the buffer and invalidates outstanding CStr values.
func (b *Buffer) Reset() {
	b.data = [Size]byte{}
	b.stamp++
}
