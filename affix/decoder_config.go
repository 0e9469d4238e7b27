package affix

import (
	"fmt"

	"github.com/arloliu/bjevko/errs"
	"github.com/arloliu/bjevko/format"
	"github.com/arloliu/bjevko/internal/options"
	"go.uber.org/zap"
)

// DecoderConfig holds the decoder settings assembled from DecoderOptions.
type DecoderConfig struct {
	logger     *zap.Logger
	lengthMode format.LengthMode
}

// newDecoderConfig returns the wire-format defaults: 24-bit length reads and no logging.
func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		logger:     zap.NewNop(),
		lengthMode: format.LengthMode24,
	}
}

// Validate rejects an unknown length mode. Only the final setting counts, so a
// later WithLengthMode can replace an earlier invalid one.
func (c *DecoderConfig) Validate() error {
	if !c.lengthMode.Valid() {
		return fmt.Errorf("%w: length mode %s", errs.ErrInvalidOption, c.lengthMode)
	}

	return nil
}

// DecoderOption represents a functional option for configuring the DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithLengthMode selects how many bytes of each length field are trusted.
//
// format.LengthMode24 (the default) matches the wire format: the most significant
// byte of the 4-byte field is ignored. format.LengthMode32 reads the full field,
// making the decoder symmetric with the encoder.
func WithLengthMode(mode format.LengthMode) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.lengthMode = mode
	})
}

// WithLogger sets the logger used for debug diagnostics. A nil logger disables logging.
func WithLogger(logger *zap.Logger) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
