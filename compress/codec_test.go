package compress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// sensorSequence mimics a collector batch: the same small map repeated with
// different readings.
func sensorSequence(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Write([]byte{0xbf, 0x61, 't', 0x19, byte(0x0b), byte(i), 0xff})
	}

	return buf.Bytes()
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "batch")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(99), "batch")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	require.Contains(t, err.Error(), "batch")
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"single payload": {0xbf, 0x61, 't', 0x19, 0x0b, 0x36, 0xff},
		"sensor batch":   sensorSequence(200),
		"zeros":          make([]byte, 64*1024),
	}

	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "batch")
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			for name, data := range inputs {
				t.Run(name, func(t *testing.T) {
					compressed, err := codec.Compress(data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, data, decompressed)
				})
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "batch")
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_InvalidData(t *testing.T) {
	invalid := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("this is not compressed data"),
	}

	for _, ct := range allTypes {
		if ct == format.CompressionNone {
			continue
		}
		codec, err := CreateCodec(ct, "batch")
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			for _, data := range invalid {
				_, err := codec.Decompress(data)
				require.Error(t, err)
			}
		})
	}
}

func TestCodecs_Concurrent(t *testing.T) {
	data := sensorSequence(64)

	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "batch")
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 16)
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					out, err := codec.Decompress(compressed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(out, data) {
						errCh <- errs.ErrEncodeFailed
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestRun_Stats(t *testing.T) {
	data := sensorSequence(500)
	codec, err := CreateCodec(format.CompressionS2, "batch")
	require.NoError(t, err)

	out, stats, err := Run(codec, format.CompressionS2, data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, stats.Algorithm)
	require.Equal(t, int64(len(data)), stats.OriginalSize)
	require.Equal(t, int64(len(out)), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)
}

func TestCompressionStats_Empty(t *testing.T) {
	var s CompressionStats
	require.InDelta(t, 0.0, s.CompressionRatio(), 0)
	require.InDelta(t, 100.0, s.SpaceSavings(), 0)
}
