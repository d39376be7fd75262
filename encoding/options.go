package encoding

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/options"
	"github.com/arloliu/coapenc/tinycbor"
)

// ContextConfig collects the settings of a CoapContext.
type ContextConfig struct {
	payloadCapacity int
	zeroCopyKeys    bool
	logger          *zap.Logger
}

// ContextOption configures a CoapContext.
type ContextOption = options.Option[*ContextConfig]

// WithPayloadCapacity sets the maximum payload size in bytes.
//
// The default is tinycbor.DefaultCapacity; accepted values are
// [tinycbor.MinCapacity, tinycbor.MaxCapacity].
func WithPayloadCapacity(n int) ContextOption {
	return options.New(func(c *ContextConfig) error {
		if n < tinycbor.MinCapacity || n > tinycbor.MaxCapacity {
			return fmt.Errorf("%w: %d not in [%d, %d]", errs.ErrInvalidPayloadCapacity, n, tinycbor.MinCapacity, tinycbor.MaxCapacity)
		}
		c.payloadCapacity = n

		return nil
	})
}

// WithZeroCopyKeys makes StageKey return already NUL-terminated keys without
// copying them, the way StageValue does. By default keys are always copied.
func WithZeroCopyKeys() ContextOption {
	return options.NoError(func(c *ContextConfig) {
		c.zeroCopyKeys = true
	})
}

// WithLogger sets the logger used for encoder resolution traces and check
// failures. A nil logger selects the package logger.
func WithLogger(l *zap.Logger) ContextOption {
	return options.NoError(func(c *ContextConfig) {
		c.logger = l
	})
}
