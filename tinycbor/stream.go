package tinycbor

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/pool"
)

// Capacity bounds of a Stream.
const (
	MinCapacity     = 16
	MaxCapacity     = 1024 * 64
	DefaultCapacity = pool.PayloadBufferDefaultSize
)

// encMode writes preferred serialization (shortest integers and floats) in call
// order. Containers are indefinite-length, so IndefLength must stay allowed.
var encMode cbor.EncMode

func init() {
	opts := cbor.PreferredUnsortedEncOptions()
	opts.IndefLength = cbor.IndefLengthAllowed

	var err error
	encMode, err = opts.EncMode()
	if err != nil {
		panic("tinycbor: CBOR encoder initialization failed: " + err.Error())
	}
}

var errOutOfMemory = errors.New("tinycbor: payload capacity exceeded")

// Stream is the bounded output buffer shared by all encoders of one payload.
//
// Writes are all-or-nothing: an item that does not fit leaves the stream unchanged.
type Stream struct {
	out      *boundedWriter
	enc      *cbor.Encoder
	depth    int // number of open containers
	released bool
}

type boundedWriter struct {
	buf      *pool.ByteBuffer
	capacity int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.capacity {
		return 0, errOutOfMemory
	}
	w.buf.MustWrite(p)

	return len(p), nil
}

// NewStream creates a stream that holds at most capacity bytes.
//
// Returns errs.ErrInvalidPayloadCapacity if capacity is outside [MinCapacity, MaxCapacity].
func NewStream(capacity int) (*Stream, error) {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", errs.ErrInvalidPayloadCapacity, capacity, MinCapacity, MaxCapacity)
	}

	buf := pool.GetPayloadBuffer()
	buf.Grow(capacity)

	s := &Stream{out: &boundedWriter{buf: buf, capacity: capacity}}
	s.enc = encMode.NewEncoder(s.out)

	return s, nil
}

// Bytes returns the encoded payload. The slice is reused after Reset.
func (s *Stream) Bytes() []byte {
	if s.released {
		return nil
	}

	return s.out.buf.Bytes()
}

// Len returns the number of bytes written.
func (s *Stream) Len() int {
	if s.released {
		return 0
	}

	return s.out.buf.Len()
}

// Capacity returns the maximum payload size.
func (s *Stream) Capacity() int {
	return s.out.capacity
}

// Depth returns the number of open containers.
func (s *Stream) Depth() int {
	return s.depth
}

// Reset empties the stream for the next payload.
func (s *Stream) Reset() {
	if s.released {
		return
	}
	s.out.buf.Reset()
	s.enc = encMode.NewEncoder(s.out)
	s.depth = 0
}

// Release returns the buffer to the pool. The stream must not be used afterwards;
// encoders bound to it report StatusIO.
func (s *Stream) Release() {
	if s.released {
		return
	}
	pool.PutPayloadBuffer(s.out.buf)
	s.out.buf = nil
	s.released = true
}

// Diagnose returns the RFC 8949 diagnostic notation of the payload.
func (s *Stream) Diagnose() (string, error) {
	return cbor.Diagnose(s.Bytes())
}

func statusOf(err error) Status {
	if errors.Is(err, errOutOfMemory) {
		return StatusOutOfMemory
	}
	var ute *cbor.UnsupportedTypeError
	if errors.As(err, &ute) {
		return StatusIllegalType
	}

	return StatusUnknown
}
