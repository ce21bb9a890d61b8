package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/killallgit/annotator-api/internal/playback"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTimelineBuilder struct{ mock.Mock }

func (m *MockTimelineBuilder) Build(ctx context.Context, videoID string) (*playback.Timeline, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playback.Timeline), args.Error(1)
}

func (m *MockTimelineBuilder) Annotations(ctx context.Context, videoID string) ([]playback.Annotation, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).([]playback.Annotation), args.Error(1)
}

func testTimeline() *playback.Timeline {
	return &playback.Timeline{
		VideoID: "v1",
		Segments: []playback.Segment{
			{ID: "s1", StartTime: 0, EndTime: 300},
			{ID: "s2", Index: 1, StartTime: 300, EndTime: 600},
		},
		Annotations: []playback.Annotation{
			{ID: "a1", Title: "Intro", StartTime: 0, EndTime: 30},
			{ID: "a2", Title: "Main", StartTime: 30, EndTime: 500},
		},
	}
}

func newTestManager(t *testing.T, cfg Config) (*Manager, *MockTimelineBuilder) {
	builder := new(MockTimelineBuilder)
	builder.On("Build", mock.Anything, "v1").Return(testTimeline(), nil)
	builder.On("Build", mock.Anything, "empty").Return(&playback.Timeline{VideoID: "empty"}, nil)
	builder.On("Build", mock.Anything, mock.Anything).Return(nil, apperrors.NotFound("video", "missing"))

	m := NewManager(builder, cfg, nil)
	t.Cleanup(m.Stop)
	return m, builder
}

func TestManager_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, Config{})

	session, err := m.Create(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, session.ID, 36)
	assert.Equal(t, "v1", session.VideoID)
	assert.Equal(t, playback.StateReady, session.Player.State())
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	require.NoError(t, m.Delete(session.ID))
	assert.Equal(t, 0, m.Count())

	_, err = m.Get(session.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	assert.True(t, apperrors.Is(m.Delete(session.ID), apperrors.ErrCodeNotFound))
}

func TestManager_CreateErrors(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, Config{MaxSessions: 1})

	_, err := m.Create(ctx, "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = m.Create(ctx, "empty")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNoSegment))
	assert.ErrorIs(t, err, playback.ErrNoSegmentFound)

	_, err = m.Create(ctx, "v1")
	require.NoError(t, err)
	_, err = m.Create(ctx, "v1")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
}

func TestManager_RefreshAnnotations(t *testing.T) {
	ctx := context.Background()
	m, builder := newTestManager(t, Config{})

	session, err := m.Create(ctx, "v1")
	require.NoError(t, err)
	require.NoError(t, session.Player.Select("a1"))

	builder.On("Annotations", mock.Anything, "v1").Return([]playback.Annotation{
		{ID: "a2", Title: "Main", StartTime: 30, EndTime: 500},
	}, nil)

	refreshed, err := m.RefreshAnnotations(ctx, session.ID)
	require.NoError(t, err)

	snap := refreshed.Player.Snapshot()
	assert.Empty(t, snap.SelectedID, "removed annotation is deselected")
	assert.Len(t, snap.Active, 0)

	_, err = m.RefreshAnnotations(ctx, "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestManager_Expire(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, Config{TTL: time.Minute, CleanupInterval: time.Hour})

	var mu sync.Mutex
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	}
	advance := func(d time.Duration) {
		mu.Lock()
		clock = clock.Add(d)
		mu.Unlock()
	}

	idle, err := m.Create(ctx, "v1")
	require.NoError(t, err)
	busy, err := m.Create(ctx, "v1")
	require.NoError(t, err)

	advance(45 * time.Second)
	_, err = m.Get(busy.ID)
	require.NoError(t, err)

	advance(30 * time.Second)
	assert.Equal(t, 1, m.expire())

	_, err = m.Get(idle.ID)
	assert.Error(t, err)
	_, err = m.Get(busy.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.Count())
}

func TestManager_StopIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t, Config{CleanupInterval: time.Millisecond})
	m.Stop()
	m.Stop()
}
