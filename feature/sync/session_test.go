package sync

import (
	"testing"
	"time"

	"subscription-sync/core/transient"

	"github.com/stretchr/testify/assert"
)

func newTestSessions(ttl time.Duration) *Sessions {
	return NewSessions(transient.NewMemoryStore(), ttl)
}

func TestSessions(t *testing.T) {
	t.Run("No Session", func(t *testing.T) {
		s := newTestSessions(time.Hour)
		_, ok := s.Current()
		assert.False(t, ok)
		assert.Equal(t, 0, s.Count())
		assert.Equal(t, DefaultMode, s.Mode())
		assert.Empty(t, s.Slice(0, 10))
	})

	t.Run("Begin And Read Back", func(t *testing.T) {
		s := newTestSessions(time.Hour)
		s.Begin(SessionState{
			ID:        "2026-08-31-120000",
			Mode:      ModeAllActive,
			FrozenIDs: []int64{101, 102, 103},
		})

		state, ok := s.Current()
		assert.True(t, ok)
		assert.Equal(t, "2026-08-31-120000", state.ID)
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, ModeAllActive, s.Mode())
	})

	t.Run("Slice Bounds", func(t *testing.T) {
		s := newTestSessions(time.Hour)
		s.Begin(SessionState{ID: "x", FrozenIDs: []int64{1, 2, 3, 4, 5}})

		assert.Equal(t, []int64{1, 2, 3}, s.Slice(0, 3))
		assert.Equal(t, []int64{4, 5}, s.Slice(3, 3))
		assert.Empty(t, s.Slice(5, 3))
		assert.Empty(t, s.Slice(100, 3))
		assert.Empty(t, s.Slice(-1, 3))
	})

	t.Run("Expired Session Is Uninitialized", func(t *testing.T) {
		s := newTestSessions(time.Millisecond)
		s.Begin(SessionState{ID: "x", FrozenIDs: []int64{1}})

		time.Sleep(5 * time.Millisecond)

		assert.Equal(t, 0, s.Count())
		assert.Equal(t, DefaultMode, s.Mode())
	})

	t.Run("Begin Replaces Previous Session", func(t *testing.T) {
		s := newTestSessions(time.Hour)
		s.Begin(SessionState{ID: "first", FrozenIDs: []int64{1, 2}})
		s.Begin(SessionState{ID: "second", FrozenIDs: []int64{9}})

		state, ok := s.Current()
		assert.True(t, ok)
		assert.Equal(t, "second", state.ID)
		assert.Equal(t, 1, s.Count())
	})
}
