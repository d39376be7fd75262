package errs

import "fmt"

// Code is the closed set of failure codes an encoding step can report.
type Code uint8

const (
	OK           Code = 0 // OK means no error.
	ValueNotUint Code = 1 // ValueNotUint means the encoded value is not an unsigned integer.
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case ValueNotUint:
		return "VALUE_NOT_UINT"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// Err returns the sentinel error for the code, or nil for OK.
func (c Code) Err() error {
	switch c {
	case OK:
		return nil
	case ValueNotUint:
		return ErrValueNotUint
	default:
		return fmt.Errorf("%w: code %d", ErrEncodeFailed, uint8(c))
	}
}
