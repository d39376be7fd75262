// Package coapenc builds compact CBOR sensor messages for CoAP transport.
//
// The core is encoding.CoapContext, which stages short keys and values as
// NUL-terminated strings, resolves symbolic encoder names to live CBOR encoders and
// checks the status of every encode primitive. The sensor package is the
// high-level caller: it composes readings into payloads, frames them as CoAP
// requests and batches them for forwarding.
//
// # Basic Usage
//
// Composing a temperature payload:
//
//	import "github.com/arloliu/coapenc"
//
//	payload, err := coapenc.Compose(sensor.NewReading("t", sensor.Uint(2870)))
//	// payload is {_ "t": 2870}
//
// Building a payload by hand through the encoding context:
//
//	ctx, _ := coapenc.NewContext()
//	defer ctx.Release()
//
//	payload, err := ctx.Encode(func(ctx *encoding.CoapContext) error {
//	    root := ctx.ResolveEncoder("root", "_map")
//	    if err := ctx.Check(ctx.GlobalEncoder().CreateMap(root)); err != nil {
//	        return err
//	    }
//	    key := ctx.StageKey(bytestr.Of("t"))
//	    if err := ctx.Check(root.EncodeTextString(key, key.Len())); err != nil {
//	        return err
//	    }
//	    if err := ctx.Check(root.EncodeUint(2870)); err != nil {
//	        return err
//	    }
//	    return ctx.Check(ctx.GlobalEncoder().CloseContainer(root))
//	})
//
// # Package Structure
//
//   - bytestr: byte views and NUL-terminated strings
//   - staging: fixed-capacity key and value buffers
//   - registry: encoder roles and their live encoders
//   - encoding: the encoding context
//   - tinycbor: status-returning CBOR primitives
//   - sensor: payload composition, CoAP posts and collector batches
//   - coap: CoAP message serialization
//   - compress: batch codecs
package coapenc

import (
	"go.uber.org/zap"

	"github.com/arloliu/coapenc/encoding"
	"github.com/arloliu/coapenc/internal/logging"
	"github.com/arloliu/coapenc/sensor"
)

// NewContext creates an encoding context.
func NewContext(opts ...encoding.ContextOption) (*encoding.CoapContext, error) {
	return encoding.NewCoapContext(opts...)
}

// NewComposer creates a sensor payload composer.
func NewComposer(opts ...sensor.ComposerOption) (*sensor.Composer, error) {
	return sensor.NewComposer(opts...)
}

// Compose writes readings into a flat payload with a one-off composer.
func Compose(readings ...sensor.Reading) ([]byte, error) {
	c, err := sensor.NewComposer()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.Compose(readings...)
}

// NewBatch creates a collector batch.
func NewBatch(opts ...sensor.BatchOption) (*sensor.Batch, error) {
	return sensor.NewBatch(opts...)
}

// OpenBatch decompresses a sealed batch into its payloads.
func OpenBatch(sealed []byte) ([][]byte, error) {
	return sensor.OpenBatch(sealed)
}

// SetLogger sets the logger used by contexts created without WithLogger.
// A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	logging.SetLogger(l)
}
