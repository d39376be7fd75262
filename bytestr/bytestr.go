// Package bytestr normalizes string-like inputs into byte views that may or may not
// carry a trailing NUL terminator, and defines CStr, the NUL-terminated string handed
// to the native encode primitives.
//
// The logical length of a byte string is its length without the trailing NUL when one
// is present:
//
//	bytestr.LogicalLen([]byte("temp"))   // 4
//	bytestr.LogicalLen([]byte("on\x00")) // 2
package bytestr

import "unsafe"

// Source is the set of string-like types a View can be built from.
// CString satisfies it through its underlying []byte type.
type Source interface {
	~[]byte | ~string
}

// CString is a byte string that always ends with a NUL byte.
type CString []byte

// MakeCString returns s as a CString with a NUL appended.
func MakeCString(s string) CString {
	b := make([]byte, len(s)+1)
	copy(b, s)

	return b
}

// View is a non-owning view over caller data. The bytes returned by Raw must not be
// modified: for string sources they alias immutable string memory.
type View struct {
	b []byte
}

// Of builds a View over s without copying.
//
// For CString sources the view includes the trailing NUL, so the logical length rule
// applies uniformly.
func Of[T Source](s T) View {
	if str, ok := any(s).(string); ok {
		return View{b: unsafe.Slice(unsafe.StringData(str), len(str))}
	}

	return View{b: []byte(s)}
}

// FromCString builds a View over c, trailing NUL included.
func FromCString(c CString) View {
	return View{b: c}
}

// Raw returns the full content, including a trailing NUL if the source carries one.
func (v View) Raw() []byte {
	return v.b
}

// Len returns the total length of the view in bytes.
func (v View) Len() int {
	return len(v.b)
}

// Terminated reports whether the last byte of the view is NUL.
func (v View) Terminated() bool {
	return len(v.b) > 0 && v.b[len(v.b)-1] == 0
}

// LogicalLen returns the length of the view excluding a trailing NUL.
func (v View) LogicalLen() int {
	return LogicalLen(v.b)
}

// LogicalLen returns len(b)-1 if b ends with a NUL byte, otherwise len(b).
func LogicalLen(b []byte) int {
	if len(b) > 0 && b[len(b)-1] == 0 {
		return len(b) - 1
	}

	return len(b)
}
