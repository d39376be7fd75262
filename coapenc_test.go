package coapenc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/coapenc/bytestr"
	"github.com/arloliu/coapenc/encoding"
	"github.com/arloliu/coapenc/format"
	"github.com/arloliu/coapenc/sensor"
)

func TestCompose(t *testing.T) {
	payload, err := Compose(sensor.NewReading("t", sensor.Uint(2870)))
	require.NoError(t, err)
	require.Equal(t, []byte{0xbf, 0x61, 't', 0x19, 0x0b, 0x36, 0xff}, payload)
}

func TestNewContext_ManualBuild(t *testing.T) {
	ctx, err := NewContext(encoding.WithPayloadCapacity(64))
	require.NoError(t, err)
	defer ctx.Release()

	payload, err := ctx.Encode(func(ctx *encoding.CoapContext) error {
		root := ctx.ResolveEncoder("root", "_map")
		ctx.MustCheck(ctx.GlobalEncoder().CreateMap(root))
		key := ctx.StageKey(bytestr.Of("t"))
		ctx.MustCheck(root.EncodeTextString(key, key.Len()))
		ctx.MustCheck(root.EncodeUint(2870))
		ctx.MustCheck(ctx.GlobalEncoder().CloseContainer(root))

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0xbf, 0x61, 't', 0x19, 0x0b, 0x36, 0xff}, payload)
}

func TestBatchRoundTrip(t *testing.T) {
	c, err := NewComposer(sensor.WithLayout(sensor.LayoutThings))
	require.NoError(t, err)
	defer c.Close()

	b, err := NewBatch(sensor.WithBatchCompression(format.CompressionZstd))
	require.NoError(t, err)
	defer b.Release()

	payload, err := c.Compose(sensor.NewReading("t", sensor.Uint(2870)))
	require.NoError(t, err)
	require.NoError(t, b.Add(payload))

	sealed, err := b.Seal()
	require.NoError(t, err)

	got, err := OpenBatch(sealed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, payload, got[0])
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Release()

	ctx.ResolveEncoder("values", "_array")
	require.Equal(t, 1, logs.FilterMessage("resolve encoder").Len())
}
