package encoding

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/coapenc/bytestr"
	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/logging"
	"github.com/arloliu/coapenc/internal/options"
	"github.com/arloliu/coapenc/registry"
	"github.com/arloliu/coapenc/staging"
	"github.com/arloliu/coapenc/tinycbor"
)

// CoapContext is the state of one CBOR payload build: the key and value staging
// buffers, the encoder registry and the bounded payload stream.
//
// A CoapContext is not safe for concurrent use. Create one per encoding session and
// call Release when done.
type CoapContext struct {
	keys         staging.Buffer
	values       staging.Buffer
	stream       *tinycbor.Stream
	reg          *registry.Registry
	zeroCopyKeys bool
	logger       *zap.Logger
}

// NewCoapContext creates a context with empty staging buffers and an empty payload.
func NewCoapContext(opts ...ContextOption) (*CoapContext, error) {
	cfg := &ContextConfig{payloadCapacity: tinycbor.DefaultCapacity}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	stream, err := tinycbor.NewStream(cfg.payloadCapacity)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Logger()
	}

	return &CoapContext{
		stream:       stream,
		reg:          registry.New(stream),
		zeroCopyKeys: cfg.zeroCopyKeys,
		logger:       logger,
	}, nil
}

// StageKey returns v as a NUL-terminated string in the key buffer. The logical
// length is CStr.Len().
//
// Keys are copied even when v is already terminated, unless the context was built
// with WithZeroCopyKeys. The result is valid until the next StageKey call.
// A key of 32 bytes or more panics with an *errs.Fault wrapping errs.ErrKeyTooLong.
func (c *CoapContext) StageKey(v bytestr.View) bytestr.CStr {
	if c.zeroCopyKeys {
		return c.keys.Stage(v, errs.ErrKeyTooLong)
	}

	return c.keys.Copy(v, errs.ErrKeyTooLong)
}

// StageValue returns v as a NUL-terminated string. An already terminated v is
// returned without copying; otherwise it is copied into the value buffer and is
// valid until the next StageValue call.
//
// A value copy of 32 bytes or more panics with an *errs.Fault wrapping
// errs.ErrValueTooLong.
func (c *CoapContext) StageValue(v bytestr.View) bytestr.CStr {
	return c.values.Stage(v, errs.ErrValueTooLong)
}

// CStrLen returns the logical length of v.
func (c *CoapContext) CStrLen(v bytestr.View) int {
	return v.LogicalLen()
}

// ResolveEncoder returns the encoder named by (name, suffix): ("root", "_map") is
// the root map and "values" with any suffix is the values array.
//
// Encoder names are fixed at the call site, so an unknown pair panics with an
// *errs.Fault wrapping errs.ErrUnknownEncoder.
func (c *CoapContext) ResolveEncoder(name, suffix string) *tinycbor.Encoder {
	c.logger.Debug("resolve encoder", zap.String("name", name), zap.String("suffix", suffix))

	enc, err := c.reg.Lookup(name, suffix)
	if err != nil {
		errs.Abort(err)
	}

	return enc
}

// Encoder returns the encoder for role.
func (c *CoapContext) Encoder(role registry.Role) *tinycbor.Encoder {
	return c.reg.Encoder(role)
}

// GlobalEncoder returns the top-level encoder the root map is created from.
func (c *CoapContext) GlobalEncoder() *tinycbor.Encoder {
	return c.reg.Global()
}

// Check returns nil for tinycbor.StatusOK and a *CheckError otherwise.
func (c *CoapContext) Check(st tinycbor.Status) error {
	if st == tinycbor.StatusOK {
		return nil
	}

	c.logger.Warn("encode primitive failed",
		zap.Uint32("status", uint32(st)),
		zap.Stringer("reason", st),
	)

	return &CheckError{Status: st}
}

// Fail returns nil for errs.OK and the code's error otherwise.
func (c *CoapContext) Fail(code errs.Code) error {
	if code == errs.OK {
		return nil
	}

	c.logger.Warn("encode step failed", zap.Stringer("code", code))

	return code.Err()
}

// MustCheck is like Check but panics with an *errs.Fault on failure.
func (c *CoapContext) MustCheck(st tinycbor.Status) {
	if err := c.Check(st); err != nil {
		errs.Abort(err)
	}
}

// MustFail is like Fail but panics with an *errs.Fault on failure.
func (c *CoapContext) MustFail(code errs.Code) {
	if err := c.Fail(code); err != nil {
		errs.Abort(err)
	}
}

// Encode resets the context, runs build and returns a copy of the finished payload.
//
// A fault raised inside build (an oversized key, an unknown encoder, a failed
// MustCheck) aborts only this payload and is returned as an error. A payload with
// open containers returns errs.ErrUnclosedContainer.
func (c *CoapContext) Encode(build func(*CoapContext) error) ([]byte, error) {
	c.Reset()

	if err := c.run(build); err != nil {
		c.logger.Warn("payload aborted", zap.Error(err))
		return nil, err
	}

	if depth := c.stream.Depth(); depth != 0 {
		return nil, fmt.Errorf("%w: %d still open", errs.ErrUnclosedContainer, depth)
	}

	return bytes.Clone(c.stream.Bytes()), nil
}

func (c *CoapContext) run(build func(*CoapContext) error) (err error) {
	defer errs.Recover(&err)

	return build(c)
}

// Payload returns the bytes written so far. The slice is reused after Reset.
func (c *CoapContext) Payload() []byte {
	return c.stream.Bytes()
}

// Diagnose returns the payload in CBOR diagnostic notation.
func (c *CoapContext) Diagnose() (string, error) {
	return c.stream.Diagnose()
}

// Capacity returns the maximum payload size.
func (c *CoapContext) Capacity() int {
	return c.stream.Capacity()
}

// Reset clears the payload, both staging buffers and every encoder binding.
// Staged strings handed out before are no longer valid.
func (c *CoapContext) Reset() {
	c.keys.Reset()
	c.values.Reset()
	c.stream.Reset()
	c.reg.Reset()
}

// Release returns the payload buffer to the pool. The context must not be used
// afterwards.
func (c *CoapContext) Release() {
	c.stream.Release()
}
