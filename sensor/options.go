package sensor

import (
	"fmt"

	"github.com/arloliu/coapenc/encoding"
	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/options"
)

// Layout selects the shape of a composed payload.
type Layout uint8

const (
	// LayoutFlat writes readings as pairs of one map: {"t": 2870}.
	LayoutFlat Layout = iota
	// LayoutThings writes readings as key/value items of a "values" array:
	// {"values": [{"key": "t", "value": 2870}]}.
	LayoutThings
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutThings:
		return "things"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout returns the layout named by s, as printed by String.
func ParseLayout(s string) (Layout, bool) {
	switch s {
	case "flat":
		return LayoutFlat, true
	case "things":
		return LayoutThings, true
	default:
		return 0, false
	}
}

// DefaultUintKey is the key of the raw temperature reading, which must be
// unsigned.
const DefaultUintKey = "t"

// ComposerConfig collects the settings of a Composer.
type ComposerConfig struct {
	layout      Layout
	uintKeys    map[string]struct{}
	deviceKey   string
	deviceID    string
	contextOpts []encoding.ContextOption
}

// ComposerOption configures a Composer.
type ComposerOption = options.Option[*ComposerConfig]

// WithLayout sets the payload layout. The default is LayoutFlat.
func WithLayout(l Layout) ComposerOption {
	return options.New(func(c *ComposerConfig) error {
		switch l {
		case LayoutFlat, LayoutThings:
			c.layout = l
			return nil
		default:
			return fmt.Errorf("%w: layout %s", errs.ErrInvalidOption, l)
		}
	})
}

// WithUintKeys replaces the set of keys whose values must be unsigned integers.
// The default set is {DefaultUintKey}.
func WithUintKeys(keys ...string) ComposerOption {
	return options.NoError(func(c *ComposerConfig) {
		c.uintKeys = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			c.uintKeys[k] = struct{}{}
		}
	})
}

// WithDeviceKey writes key with the text value id ahead of the readings of every
// payload, e.g. the address of the sensor node a collector forwards for.
func WithDeviceKey(key, id string) ComposerOption {
	return options.New(func(c *ComposerConfig) error {
		if key == "" {
			return fmt.Errorf("%w: empty device key", errs.ErrInvalidOption)
		}
		c.deviceKey = key
		c.deviceID = id

		return nil
	})
}

// WithContextOptions passes opts to the composer's encoding context.
func WithContextOptions(opts ...encoding.ContextOption) ComposerOption {
	return options.NoError(func(c *ComposerConfig) {
		c.contextOpts = append(c.contextOpts, opts...)
	})
}
