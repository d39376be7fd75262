package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/internal/hash"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Keys())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("t", hash.Key("t")))
	require.NoError(t, tracker.Track("rssi0", hash.Key("rssi0")))
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"t", "rssi0"}, tracker.Keys())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("t", hash.Key("t")))
	err := tracker.Track("t", hash.Key("t"))

	require.ErrorIs(t, err, errs.ErrDuplicateKey)
	require.Contains(t, err.Error(), `"t"`)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker()
	const h = 0x1234567890abcdef

	require.NoError(t, tracker.Track("ssid0", h))
	require.NoError(t, tracker.Track("rssi0", h))
	require.True(t, tracker.HasCollision())
	require.Equal(t, []string{"ssid0", "rssi0"}, tracker.Keys())

	// the second key of a colliding pair is still caught as a duplicate
	require.ErrorIs(t, tracker.Track("rssi0", h), errs.ErrDuplicateKey)
	require.ErrorIs(t, tracker.Track("ssid0", h), errs.ErrDuplicateKey)
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 1))
	require.NoError(t, tracker.Track("b", 1))

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.Track("a", 1))
}
