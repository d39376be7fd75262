package tinycbor

import "github.com/arloliu/coapenc/bytestr"

type containerKind uint8

const (
	kindTop containerKind = iota
	kindMap
	kindArray
)

// Encoder writes CBOR items into one container of a Stream: the top level, a map or
// an array. Maps and arrays are indefinite-length.
//
// Only the innermost open container accepts items; writing through an outer encoder
// while a child is open returns StatusContainerMismatch.
//
// The zero Encoder is unbound; use Init for the top level and CreateMap/CreateArray
// for containers.
type Encoder struct {
	stream *Stream
	kind   containerKind
	level  int // stream depth this encoder writes at
	items  int
	limit  int // 0 means unbounded
	open   bool
}

// Init binds e to the top level of s. The top level takes exactly one item.
func (e *Encoder) Init(s *Stream) {
	*e = Encoder{stream: s, kind: kindTop, limit: 1, open: true}
}

// Items returns the number of items written into this container. A map counts keys
// and values separately.
func (e *Encoder) Items() int {
	return e.items
}

// IsOpen reports whether the encoder can still take items.
func (e *Encoder) IsOpen() bool {
	return e.open
}

// IsMap reports whether the encoder writes a map.
func (e *Encoder) IsMap() bool {
	return e.kind == kindMap
}

// IsArray reports whether the encoder writes an array.
func (e *Encoder) IsArray() bool {
	return e.kind == kindArray
}

func (e *Encoder) writable() Status {
	if e.stream == nil || !e.open || e.level != e.stream.depth {
		return StatusContainerMismatch
	}
	if e.stream.released {
		return StatusIO
	}
	if e.limit > 0 && e.items >= e.limit {
		return StatusTooManyItems
	}

	return StatusOK
}

func (e *Encoder) encode(v any) Status {
	if st := e.writable(); st != StatusOK {
		return st
	}
	if err := e.stream.enc.Encode(v); err != nil {
		return statusOf(err)
	}
	e.items++

	return StatusOK
}

// CreateMap opens a map inside e and binds child to it.
func (e *Encoder) CreateMap(child *Encoder) Status {
	return e.create(child, kindMap)
}

// CreateArray opens an array inside e and binds child to it.
func (e *Encoder) CreateArray(child *Encoder) Status {
	return e.create(child, kindArray)
}

func (e *Encoder) create(child *Encoder, kind containerKind) Status {
	if child == nil || child == e {
		return StatusContainerMismatch
	}
	if st := e.writable(); st != StatusOK {
		return st
	}

	var err error
	if kind == kindMap {
		err = e.stream.enc.StartIndefiniteMap()
	} else {
		err = e.stream.enc.StartIndefiniteArray()
	}
	if err != nil {
		return statusOf(err)
	}

	e.items++
	e.stream.depth++
	*child = Encoder{stream: e.stream, kind: kind, level: e.stream.depth, open: true}

	return StatusOK
}

// CloseContainer closes child, which must be the innermost open container created
// from e. A map holding a key without a value returns StatusTooFewItems.
func (e *Encoder) CloseContainer(child *Encoder) Status {
	if child == nil || child.stream != e.stream || child.kind == kindTop || !child.open {
		return StatusContainerMismatch
	}
	if e.stream == nil || !e.open || child.level != e.level+1 || child.level != e.stream.depth {
		return StatusContainerMismatch
	}
	if e.stream.released {
		return StatusIO
	}
	if child.kind == kindMap && child.items%2 != 0 {
		return StatusTooFewItems
	}
	if err := e.stream.enc.EndIndefinite(); err != nil {
		return statusOf(err)
	}

	child.open = false
	e.stream.depth--

	return StatusOK
}

// EncodeTextString writes the first n bytes of s as a text string.
//
// s must still be valid (not restaged) and n must not exceed its logical length.
func (e *Encoder) EncodeTextString(s bytestr.CStr, n int) Status {
	if !s.Valid() {
		return StatusStaleString
	}
	if n < 0 || n > s.Len() {
		return StatusLengthMismatch
	}

	return e.encode(string(s.Bytes()[:n]))
}

// EncodeByteString writes b as a byte string.
func (e *Encoder) EncodeByteString(b []byte) Status {
	if b == nil {
		b = []byte{}
	}

	return e.encode(b)
}

// EncodeInt writes a signed integer in its shortest form.
func (e *Encoder) EncodeInt(v int64) Status {
	return e.encode(v)
}

// EncodeUint writes an unsigned integer in its shortest form.
func (e *Encoder) EncodeUint(v uint64) Status {
	return e.encode(v)
}

// EncodeDouble writes a floating-point number in the shortest form that
// preserves its value.
func (e *Encoder) EncodeDouble(v float64) Status {
	return e.encode(v)
}

// EncodeBool writes true or false.
func (e *Encoder) EncodeBool(v bool) Status {
	return e.encode(v)
}

// EncodeNull writes the null simple value.
func (e *Encoder) EncodeNull() Status {
	return e.encode(nil)
}
