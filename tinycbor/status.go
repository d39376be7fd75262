package tinycbor

import "fmt"

// Status is the numeric result of an encode primitive. Zero means success.
type Status uint32

const (
	StatusOK                Status = 0          // StatusOK means the item was written.
	StatusUnknown           Status = 1          // StatusUnknown means the CBOR encoder rejected the item.
	StatusIO                Status = 4          // StatusIO means the stream has been released.
	StatusIllegalType       Status = 260        // StatusIllegalType means the value has no CBOR representation.
	StatusTooManyItems      Status = 768        // StatusTooManyItems means the encoder accepts no more items.
	StatusTooFewItems       Status = 769        // StatusTooFewItems means a map was closed with a key but no value.
	StatusContainerMismatch Status = 770        // StatusContainerMismatch means the encoder is not the innermost open container.
	StatusStaleString       Status = 1024       // StatusStaleString means a staged string was restaged before use.
	StatusLengthMismatch    Status = 1025       // StatusLengthMismatch means the length exceeds the string.
	StatusOutOfMemory       Status = 0x80000000 // StatusOutOfMemory means the payload capacity is exhausted.
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "no error"
	case StatusUnknown:
		return "unknown error"
	case StatusIO:
		return "stream released"
	case StatusIllegalType:
		return "illegal type"
	case StatusTooManyItems:
		return "too many items"
	case StatusTooFewItems:
		return "too few items"
	case StatusContainerMismatch:
		return "container mismatch"
	case StatusStaleString:
		return "stale staged string"
	case StatusLengthMismatch:
		return "length exceeds string"
	case StatusOutOfMemory:
		return "out of memory"
	default:
		return fmt.Sprintf("status %d", uint32(s))
	}
}
