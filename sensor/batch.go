package sensor

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/coapenc/compress"
	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/format"
	"github.com/arloliu/coapenc/internal/options"
	"github.com/arloliu/coapenc/internal/pool"
)

const batchTarget = "batch"

// BatchConfig collects the settings of a Batch.
type BatchConfig struct {
	compression format.CompressionType
	codec       compress.Codec
}

// BatchOption configures a Batch.
type BatchOption = options.Option[*BatchConfig]

// WithBatchCompression sets the codec a sealed batch is compressed with. The
// default is format.CompressionS2.
func WithBatchCompression(ct format.CompressionType) BatchOption {
	return options.New(func(c *BatchConfig) error {
		codec, err := compress.CreateCodec(ct, batchTarget)
		if err != nil {
			return err
		}
		c.compression = ct
		c.codec = codec

		return nil
	})
}

// Batch collects payloads received by a collector node into a CBOR sequence
// (RFC 8742) and seals it compressed for forwarding.
//
// A sealed batch is one byte holding the format.CompressionType followed by the
// compressed sequence.
type Batch struct {
	cfg   *BatchConfig
	buf   *pool.ByteBuffer
	count int
	stats compress.CompressionStats
}

// NewBatch creates an empty batch.
func NewBatch(opts ...BatchOption) (*Batch, error) {
	cfg := &BatchConfig{
		compression: format.CompressionS2,
		codec:       compress.NewS2Compressor(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Batch{cfg: cfg, buf: pool.GetBatchBuffer()}, nil
}

// Add appends payload, which must be exactly one well-formed CBOR item.
//
// Returns errs.ErrMalformedPayload otherwise.
func (b *Batch) Add(payload []byte) error {
	if err := cbor.Wellformed(payload); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrMalformedPayload, err)
	}
	b.buf.MustWrite(payload)
	b.count++

	return nil
}

// Count returns the number of payloads added.
func (b *Batch) Count() int {
	return b.count
}

// Len returns the uncompressed size of the sequence.
func (b *Batch) Len() int {
	return b.buf.Len()
}

// Seal compresses the sequence and returns the sealed batch. The batch keeps its
// content until Reset.
//
// Returns errs.ErrEmptyBatch if nothing was added.
func (b *Batch) Seal() ([]byte, error) {
	if b.count == 0 {
		return nil, errs.ErrEmptyBatch
	}

	packed, stats, err := compress.Run(b.cfg.codec, b.cfg.compression, b.buf.Bytes())
	if err != nil {
		return nil, err
	}
	b.stats = stats

	out := make([]byte, 1+len(packed))
	out[0] = byte(b.cfg.compression)
	copy(out[1:], packed)

	return out, nil
}

// Stats returns the sizes of the last Seal.
func (b *Batch) Stats() compress.CompressionStats {
	return b.stats
}

// Reset empties the batch.
func (b *Batch) Reset() {
	b.buf.Reset()
	b.count = 0
	b.stats = compress.CompressionStats{}
}

// Release returns the batch buffer to the pool. The batch must not be used
// afterwards.
func (b *Batch) Release() {
	if b.buf != nil {
		pool.PutBatchBuffer(b.buf)
		b.buf = nil
	}
}

// OpenBatch decompresses a sealed batch and splits it into its payloads.
func OpenBatch(sealed []byte) ([][]byte, error) {
	if len(sealed) == 0 {
		return nil, fmt.Errorf("%w: empty batch data", errs.ErrMalformedPayload)
	}

	ct := format.CompressionType(sealed[0])
	codec, err := compress.CreateCodec(ct, batchTarget)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(sealed[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedPayload, err)
	}

	var payloads [][]byte
	dec := cbor.NewDecoder(bytes.NewReader(raw))
	for {
		var item cbor.RawMessage
		if err := dec.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w: %w", errs.ErrMalformedPayload, err)
		}
		payloads = append(payloads, item)
	}

	if len(payloads) == 0 {
		return nil, errs.ErrEmptyBatch
	}

	return payloads, nil
}
