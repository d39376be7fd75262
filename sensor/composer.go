package sensor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/coapenc/bytestr"
	"github.com/arloliu/coapenc/encoding"
	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/collision"
	"github.com/arloliu/coapenc/internal/hash"
	"github.com/arloliu/coapenc/internal/logging"
	"github.com/arloliu/coapenc/internal/options"
	"github.com/arloliu/coapenc/registry"
	"github.com/arloliu/coapenc/tinycbor"
)

// Field names of a LayoutThings item.
const (
	itemKeyField   = "key"
	itemValueField = "value"
	valuesField    = "values"
)

// Composer turns readings into CBOR payloads.
//
// A Composer owns an encoding context and is not safe for concurrent use.
type Composer struct {
	ctx      *encoding.CoapContext
	cfg      *ComposerConfig
	keys     *collision.Tracker
	readings []Reading
}

// NewComposer creates a composer.
func NewComposer(opts ...ComposerOption) (*Composer, error) {
	cfg := &ComposerConfig{
		layout:   LayoutFlat,
		uintKeys: map[string]struct{}{DefaultUintKey: {}},
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	ctx, err := encoding.NewCoapContext(cfg.contextOpts...)
	if err != nil {
		return nil, err
	}

	return &Composer{ctx: ctx, cfg: cfg, keys: collision.NewTracker()}, nil
}

// Layout returns the configured layout.
func (c *Composer) Layout() Layout {
	return c.cfg.layout
}

// Compose writes readings into one payload and returns a copy of it.
//
// Every key may appear once (errs.ErrDuplicateKey). A reading under an unsigned
// key must hold a Uint value (errs.ErrValueNotUint). A failure drops the whole
// payload.
func (c *Composer) Compose(readings ...Reading) ([]byte, error) {
	c.readings = c.readings[:0]
	if c.cfg.deviceKey != "" {
		c.readings = append(c.readings, NewReading(c.cfg.deviceKey, Text(c.cfg.deviceID)))
	}
	c.readings = append(c.readings, readings...)
	c.keys.Reset()

	payload, err := c.ctx.Encode(c.build)
	if err != nil {
		return nil, err
	}

	logging.Logger().Debug("payload composed",
		zap.Stringer("layout", c.cfg.layout),
		zap.Int("readings", len(c.readings)),
		zap.Int("bytes", len(payload)),
	)

	return payload, nil
}

// Diagnose returns the last payload in CBOR diagnostic notation.
func (c *Composer) Diagnose() (string, error) {
	return c.ctx.Diagnose()
}

// Close releases the composer's encoding context.
func (c *Composer) Close() {
	c.ctx.Release()
}

func (c *Composer) build(ctx *encoding.CoapContext) error {
	global := ctx.GlobalEncoder()
	root := ctx.ResolveEncoder("root", "_map")
	if err := ctx.Check(global.CreateMap(root)); err != nil {
		return err
	}

	var err error
	if c.cfg.layout == LayoutThings {
		err = c.buildValues(ctx, root)
	} else {
		err = c.buildFlat(ctx, root)
	}
	if err != nil {
		return err
	}

	return ctx.Check(global.CloseContainer(root))
}

func (c *Composer) buildFlat(ctx *encoding.CoapContext, root *tinycbor.Encoder) error {
	for _, r := range c.readings {
		if err := c.track(r.Key); err != nil {
			return err
		}
		if err := writeKey(ctx, root, r.Key); err != nil {
			return err
		}
		if err := c.writeValue(ctx, root, r); err != nil {
			return err
		}
	}

	return nil
}

func (c *Composer) buildValues(ctx *encoding.CoapContext, root *tinycbor.Encoder) error {
	if err := writeKey(ctx, root, valuesField); err != nil {
		return err
	}

	values := ctx.ResolveEncoder(valuesField, "_array")
	if err := ctx.Check(root.CreateArray(values)); err != nil {
		return err
	}

	item := ctx.Encoder(registry.ValuesItem)
	for _, r := range c.readings {
		if err := c.track(r.Key); err != nil {
			return err
		}
		if err := ctx.Check(values.CreateMap(item)); err != nil {
			return err
		}
		if err := writeKey(ctx, item, itemKeyField); err != nil {
			return err
		}
		name := ctx.StageValue(bytestr.Of(r.Key))
		if err := ctx.Check(item.EncodeTextString(name, name.Len())); err != nil {
			return err
		}
		if err := writeKey(ctx, item, itemValueField); err != nil {
			return err
		}
		if err := c.writeValue(ctx, item, r); err != nil {
			return err
		}
		if err := ctx.Check(values.CloseContainer(item)); err != nil {
			return err
		}
	}

	return ctx.Check(root.CloseContainer(values))
}

func (c *Composer) track(key string) error {
	return c.keys.Track(key, hash.Key(key))
}

func writeKey(ctx *encoding.CoapContext, enc *tinycbor.Encoder, key string) error {
	k := ctx.StageKey(bytestr.Of(key))
	return ctx.Check(enc.EncodeTextString(k, k.Len()))
}

func (c *Composer) writeValue(ctx *encoding.CoapContext, enc *tinycbor.Encoder, r Reading) error {
	v := r.Value
	if _, ok := c.cfg.uintKeys[r.Key]; ok && v.kind != KindUint {
		return fmt.Errorf("key %q holds %s: %w", r.Key, v.kind, ctx.Fail(errs.ValueNotUint))
	}

	switch v.kind {
	case KindUint:
		return ctx.Check(enc.EncodeUint(v.u))
	case KindInt:
		return ctx.Check(enc.EncodeInt(v.i))
	case KindFloat:
		return ctx.Check(enc.EncodeDouble(v.f))
	case KindBool:
		return ctx.Check(enc.EncodeBool(v.b))
	case KindText:
		s := ctx.StageValue(bytestr.Of(v.s))
		return ctx.Check(enc.EncodeTextString(s, s.Len()))
	default:
		return ctx.Check(tinycbor.StatusIllegalType)
	}
}
