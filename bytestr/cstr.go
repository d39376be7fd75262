package bytestr

// CStr is a NUL-terminated byte string ready to be passed to a native encode
// primitive. It is either a slice of a staging buffer or, on the zero-copy path, a
// slice of the caller's own storage.
//
// A CStr that points into a staging buffer is only valid until the next staging call
// on that buffer. Valid reports whether that is still the case.
type CStr struct {
	b     []byte // logical bytes followed by exactly one NUL
	stamp *uint64
	gen   uint64
}

// Borrow returns a CStr over b[:n+1]. b[n] must be NUL.
//
// When stamp is non-nil the CStr stays valid only while *stamp equals its current
// value; owners bump the stamp to invalidate every CStr handed out before.
func Borrow(b []byte, n int, stamp *uint64) CStr {
	if n < 0 || n >= len(b) || b[n] != 0 {
		panic("Borrow: b[n] is not a NUL terminator")
	}

	c := CStr{b: b[:n+1:n+1], stamp: stamp}
	if stamp != nil {
		c.gen = *stamp
	}

	return c
}

// Ptr returns the address of the first byte, or nil for the zero CStr.
func (c CStr) Ptr() *byte {
	if len(c.b) == 0 {
		return nil
	}

	return &c.b[0]
}

// Len returns the logical length, excluding the terminator.
func (c CStr) Len() int {
	if len(c.b) == 0 {
		return 0
	}

	return len(c.b) - 1
}

// Bytes returns the logical content without the terminator.
func (c CStr) Bytes() []byte {
	return c.b[:c.Len()]
}

// WithNul returns the content including the terminator.
func (c CStr) WithNul() []byte {
	return c.b
}

// Valid reports whether the CStr is non-zero and its backing buffer has not been
// restaged since it was handed out.
func (c CStr) Valid() bool {
	if len(c.b) == 0 {
		return false
	}

	return c.stamp == nil || *c.stamp == c.gen
}

func (c CStr) String() string {
	return string(c.Bytes())
}
