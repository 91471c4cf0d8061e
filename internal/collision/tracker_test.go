package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker[string]()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Collisions())
	require.Zero(t, tracker.Duplicates())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker[[2]byte]()

	require.Equal(t, New, tracker.Track([2]byte{1, 1}, 0xAAAA))
	require.Equal(t, New, tracker.Track([2]byte{1, 2}, 0xBBBB))
	require.Equal(t, 2, tracker.Count())

	require.Equal(t, Duplicate, tracker.Track([2]byte{1, 1}, 0xAAAA))
	require.Equal(t, 1, tracker.Duplicates())
	require.False(t, tracker.HasCollision())

	require.Equal(t, Collision, tracker.Track([2]byte{1, 2}, 0xCCCC))
	require.True(t, tracker.HasCollision())
	require.Equal(t, [][2]byte{{1, 2}}, tracker.Collisions())
	require.Equal(t, 2, tracker.Count())

	// the colliding content is now the reference
	require.Equal(t, Duplicate, tracker.Track([2]byte{1, 2}, 0xCCCC))
	require.Equal(t, Collision, tracker.Track([2]byte{1, 2}, 0xBBBB))
	require.Len(t, tracker.Collisions(), 2)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker[int]()
	tracker.Track(1, 1)
	tracker.Track(1, 1)
	tracker.Track(1, 2)

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.Zero(t, tracker.Duplicates())
	require.False(t, tracker.HasCollision())
	require.Equal(t, New, tracker.Track(1, 2))
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{New, "new"},
		{Duplicate, "duplicate"},
		{Collision, "collision"},
		{Outcome(9), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.outcome.String())
		})
	}
}
