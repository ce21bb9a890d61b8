package playback

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedPlayer(t *testing.T) *Player {
	t.Helper()
	p := NewPlayer(PlayerConfig{})
	require.NoError(t, p.Load(Timeline{
		VideoID:     "video-1",
		Segments:    threeSegments(),
		Annotations: threeAnnotations(),
	}))
	return p
}

func TestPlayer_Load(t *testing.T) {
	t.Run("empty timeline stays idle", func(t *testing.T) {
		p := NewPlayer(PlayerConfig{})
		err := p.Load(Timeline{VideoID: "v"})
		assert.ErrorIs(t, err, ErrNoSegmentFound)
		assert.Equal(t, StateIdle, p.State())
	})

	t.Run("parks on first segment", func(t *testing.T) {
		p := loadedPlayer(t)
		snap := p.Snapshot()

		assert.Equal(t, StateReady, snap.State)
		assert.Equal(t, 0.0, snap.Position)
		require.NotNil(t, snap.Segment)
		assert.Equal(t, "seg-1", snap.Segment.ID)
		assert.Equal(t, 900.0, snap.TotalDuration)
		assert.Equal(t, 1.0, snap.PlaybackRate)
		assert.Equal(t, "video-1", p.VideoID())
	})

	t.Run("operations before load fail", func(t *testing.T) {
		p := NewPlayer(PlayerConfig{})

		_, err := p.Seek(10)
		assert.ErrorIs(t, err, ErrNotLoaded)
		assert.ErrorIs(t, p.Play(), ErrNotLoaded)
		assert.ErrorIs(t, p.Select("A"), ErrNotLoaded)
		_, err = p.Dispatch(Signal{Kind: SignalTick})
		assert.ErrorIs(t, err, ErrNotLoaded)
	})
}

func TestPlayer_SeekAcrossSegments(t *testing.T) {
	p := loadedPlayer(t)

	plan, err := p.Seek(450)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), plan.Seq)
	assert.Equal(t, SwitchSegment, plan.Kind)
	assert.Equal(t, "seg-2", plan.Segment.ID)
	assert.Equal(t, 150.0, plan.LocalTime)
	assert.False(t, plan.Resume)

	snap := p.Snapshot()
	assert.Equal(t, StateSeeking, snap.State)
	assert.Equal(t, 450.0, snap.Position, "displayed position jumps to the target")

	assert.True(t, p.OnReady(1))
	snap = p.Snapshot()
	assert.Equal(t, StatePaused, snap.State)
	assert.Equal(t, 450.0, snap.Position)
	assert.Equal(t, 150.0, snap.LocalTime)
	assert.Nil(t, snap.Pending)
}

func TestPlayer_SeekWhilePlayingResumes(t *testing.T) {
	p := loadedPlayer(t)
	require.NoError(t, p.Play())

	plan, err := p.Seek(50)
	require.NoError(t, err)
	assert.Equal(t, SeekInPlace, plan.Kind)
	assert.True(t, plan.Resume)

	require.True(t, p.OnReady(plan.Seq))
	assert.Equal(t, StatePlaying, p.State())
}

func TestPlayer_StaleReadyIsDiscarded(t *testing.T) {
	p := loadedPlayer(t)

	first, err := p.Seek(450)
	require.NoError(t, err)
	second, err := p.Seek(700)
	require.NoError(t, err)
	assert.Greater(t, second.Seq, first.Seq)

	assert.False(t, p.OnReady(first.Seq), "superseded plan must not apply")
	snap := p.Snapshot()
	assert.Equal(t, StateSeeking, snap.State)
	assert.Equal(t, 700.0, snap.Position)
	require.NotNil(t, snap.Pending)
	assert.Equal(t, second.Seq, snap.Pending.Seq)

	assert.True(t, p.OnReady(second.Seq))
	snap = p.Snapshot()
	assert.Equal(t, StatePaused, snap.State)
	assert.Equal(t, 700.0, snap.Position)
	assert.Equal(t, "seg-3", snap.Segment.ID)

	assert.False(t, p.OnReady(second.Seq), "ready is only applied once")
}

func TestPlayer_TicksSuppressedWhileSeeking(t *testing.T) {
	p := loadedPlayer(t)
	require.NoError(t, p.Play())

	_, err := p.Seek(450)
	require.NoError(t, err)

	assert.Nil(t, p.OnPositionTick(10))
	assert.Equal(t, 450.0, p.Snapshot().Position)
}

func TestPlayer_PositionTick(t *testing.T) {
	p := loadedPlayer(t)
	require.NoError(t, p.Play())

	assert.Nil(t, p.OnPositionTick(120))
	snap := p.Snapshot()
	assert.Equal(t, 120.0, snap.Position)

	ids := []string{}
	for _, a := range snap.Active {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"A", "B"}, ids)
}

func TestPlayer_AutoAdvance(t *testing.T) {
	t.Run("near segment end while playing", func(t *testing.T) {
		p := loadedPlayer(t)
		require.NoError(t, p.Play())

		assert.Nil(t, p.OnPositionTick(299.4))

		plan := p.OnPositionTick(299.6)
		require.NotNil(t, plan)
		assert.True(t, plan.Auto)
		assert.True(t, plan.Resume)
		assert.Equal(t, SwitchSegment, plan.Kind)
		assert.Equal(t, "seg-2", plan.Segment.ID)
		assert.Equal(t, 0.0, plan.LocalTime)
		assert.Equal(t, 300.0, plan.GlobalTime)

		require.True(t, p.OnReady(plan.Seq))
		assert.Equal(t, StatePlaying, p.State())
	})

	t.Run("not while paused", func(t *testing.T) {
		p := loadedPlayer(t)
		require.NoError(t, p.Pause())

		assert.Nil(t, p.OnPositionTick(299.9))
		assert.Equal(t, StatePaused, p.State())
	})

	t.Run("not on last segment", func(t *testing.T) {
		p := loadedPlayer(t)
		plan, err := p.Seek(850)
		require.NoError(t, err)
		require.True(t, p.OnReady(plan.Seq))
		require.NoError(t, p.Play())

		assert.Nil(t, p.OnPositionTick(299.9))
		assert.Equal(t, StatePlaying, p.State())
	})

	t.Run("custom threshold", func(t *testing.T) {
		p := NewPlayer(PlayerConfig{AutoAdvanceThreshold: 2})
		require.NoError(t, p.Load(Timeline{Segments: threeSegments()}))
		require.NoError(t, p.Play())

		assert.NotNil(t, p.OnPositionTick(298.5))
	})
}

func TestPlayer_OnEnded(t *testing.T) {
	t.Run("advances to next segment", func(t *testing.T) {
		p := loadedPlayer(t)
		require.NoError(t, p.Play())

		plan := p.OnEnded()
		require.NotNil(t, plan)
		assert.Equal(t, "seg-2", plan.Segment.ID)
		assert.True(t, plan.Auto)
	})

	t.Run("pauses at end of video", func(t *testing.T) {
		p := loadedPlayer(t)
		plan, err := p.Seek(890)
		require.NoError(t, err)
		require.NoError(t, p.Play())
		require.True(t, p.OnReady(plan.Seq))

		assert.Nil(t, p.OnEnded())
		snap := p.Snapshot()
		assert.Equal(t, StatePaused, snap.State)
		assert.Equal(t, 900.0, snap.Position)
	})

	t.Run("ignored while seeking", func(t *testing.T) {
		p := loadedPlayer(t)
		_, err := p.Seek(450)
		require.NoError(t, err)

		assert.Nil(t, p.OnEnded())
		assert.Equal(t, StateSeeking, p.State())
	})
}

func TestPlayer_LoadErrorsAndRetry(t *testing.T) {
	p := loadedPlayer(t)
	loadErr := errors.New("network error")

	plan, err := p.Seek(450)
	require.NoError(t, err)

	assert.True(t, p.OnLoadError(plan.Seq, loadErr), "first failure allows retry")
	snap := p.Snapshot()
	assert.Equal(t, StateSeeking, snap.State)
	assert.Equal(t, "network error", snap.LastError)
	assert.Equal(t, 1, snap.LoadAttempts)
	assert.True(t, snap.CanRetry)

	retry, err := p.Retry()
	require.NoError(t, err)
	assert.Greater(t, retry.Seq, plan.Seq)
	assert.Equal(t, plan.Segment.ID, retry.Segment.ID)
	assert.Equal(t, plan.LocalTime, retry.LocalTime)

	assert.False(t, p.OnLoadError(plan.Seq, loadErr), "errors for the replaced plan are stale")
	assert.Equal(t, 1, p.Snapshot().LoadAttempts)

	assert.True(t, p.OnLoadError(retry.Seq, loadErr))
	retry, err = p.Retry()
	require.NoError(t, err)

	assert.False(t, p.OnLoadError(retry.Seq, loadErr), "third failure exhausts retries")
	_, err = p.Retry()
	assert.ErrorIs(t, err, ErrRetryLimit)
	assert.False(t, p.Snapshot().CanRetry)

	t.Run("a new seek starts a fresh attempt budget", func(t *testing.T) {
		plan, err := p.Seek(100)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Snapshot().LoadAttempts)
		assert.True(t, p.OnReady(plan.Seq))
	})

	t.Run("retry without pending seek", func(t *testing.T) {
		_, err := p.Retry()
		assert.ErrorIs(t, err, ErrNoPendingSeek)
	})
}

func TestPlayer_PlansAgainstLoadedSegment(t *testing.T) {
	t.Run("seek after a failed load reloads the segment", func(t *testing.T) {
		p := loadedPlayer(t)

		first, err := p.Seek(450)
		require.NoError(t, err)
		require.Equal(t, SwitchSegment, first.Kind)
		p.OnLoadError(first.Seq, errors.New("network error"))

		second, err := p.Seek(500)
		require.NoError(t, err)
		assert.Equal(t, SwitchSegment, second.Kind)
		assert.Equal(t, "seg-2", second.Segment.ID)
		assert.Equal(t, 200.0, second.LocalTime)

		assert.True(t, p.OnReady(second.Seq))
		assert.Equal(t, StatePaused, p.State())
	})

	t.Run("second seek into a segment that is still loading", func(t *testing.T) {
		p := loadedPlayer(t)

		first, err := p.Seek(450)
		require.NoError(t, err)
		second, err := p.Seek(500)
		require.NoError(t, err)
		assert.Equal(t, SwitchSegment, first.Kind)
		assert.Equal(t, SwitchSegment, second.Kind)

		require.True(t, p.OnReady(second.Seq))
		third, err := p.Seek(550)
		require.NoError(t, err)
		assert.Equal(t, SeekInPlace, third.Kind, "segment is loaded once ready")
	})

	t.Run("seek back while a switch is pending", func(t *testing.T) {
		p := loadedPlayer(t)

		_, err := p.Seek(450)
		require.NoError(t, err)
		back, err := p.Seek(100)
		require.NoError(t, err)
		assert.Equal(t, SwitchSegment, back.Kind)
		assert.Equal(t, "seg-1", back.Segment.ID)
	})
}

func TestPlayer_PlaybackRateIsSticky(t *testing.T) {
	p := loadedPlayer(t)
	require.NoError(t, p.SetPlaybackRate(1.5))

	plan, err := p.Seek(450)
	require.NoError(t, err)
	assert.Equal(t, 1.5, plan.PlaybackRate)
	require.True(t, p.OnReady(plan.Seq))

	require.NoError(t, p.Play())
	next := p.OnPositionTick(299.8)
	require.NotNil(t, next)
	assert.Equal(t, 1.5, next.PlaybackRate)

	require.NoError(t, p.SetPlaybackRate(2))
	assert.Equal(t, 2.0, p.Snapshot().Pending.PlaybackRate)

	assert.ErrorIs(t, p.SetPlaybackRate(0), ErrInvalidRate)
	assert.ErrorIs(t, p.SetPlaybackRate(-1), ErrInvalidRate)
	assert.Equal(t, 2.0, p.Snapshot().PlaybackRate)
}

func TestPlayer_PlayPauseWhileSeeking(t *testing.T) {
	p := loadedPlayer(t)

	plan, err := p.Seek(450)
	require.NoError(t, err)
	require.NoError(t, p.Play())
	assert.Equal(t, StateSeeking, p.State(), "play waits for the pending load")

	require.True(t, p.OnReady(plan.Seq))
	assert.Equal(t, StatePlaying, p.State())

	plan, err = p.Seek(700)
	require.NoError(t, err)
	assert.True(t, plan.Resume)
	require.NoError(t, p.Pause())
	require.True(t, p.OnReady(plan.Seq))
	assert.Equal(t, StatePaused, p.State())
}

func TestPlayer_ClickTimeline(t *testing.T) {
	t.Run("seeks and selects by ordinal slot", func(t *testing.T) {
		p := loadedPlayer(t)

		plan, selected, err := p.ClickTimeline(0.6)
		require.NoError(t, err)
		assert.Equal(t, 540.0, plan.GlobalTime)
		assert.Equal(t, "seg-2", plan.Segment.ID)
		require.NotNil(t, selected)
		assert.Equal(t, "B", selected.ID)
		assert.Equal(t, "B", p.Snapshot().SelectedID)
	})

	t.Run("clears selection without annotations", func(t *testing.T) {
		p := loadedPlayer(t)
		require.NoError(t, p.Select("A"))
		require.NoError(t, p.SetAnnotations(nil))

		plan, selected, err := p.ClickTimeline(0.25)
		require.NoError(t, err)
		assert.Nil(t, selected)
		assert.Equal(t, 225.0, plan.GlobalTime)
		assert.Empty(t, p.Snapshot().SelectedID)
	})

	t.Run("not loaded", func(t *testing.T) {
		_, _, err := NewPlayer(PlayerConfig{}).ClickTimeline(0.5)
		assert.ErrorIs(t, err, ErrNotLoaded)
	})
}

func TestPlayer_Selection(t *testing.T) {
	p := loadedPlayer(t)

	assert.ErrorIs(t, p.Select("missing"), ErrUnknownAnnotation)

	require.NoError(t, p.Select("C"))
	require.NoError(t, p.Play())

	// time moving away from the annotation never clears the selection
	p.OnPositionTick(10)
	plan, err := p.Seek(400)
	require.NoError(t, err)
	p.OnReady(plan.Seq)

	snap := p.Snapshot()
	assert.Equal(t, "C", snap.SelectedID)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "Outro", snap.Selected.Title)

	p.ClearSelection()
	assert.Empty(t, p.Snapshot().SelectedID)

	t.Run("refresh keeps surviving selection", func(t *testing.T) {
		require.NoError(t, p.Select("B"))
		anns := threeAnnotations()
		require.NoError(t, p.SetAnnotations(anns[1:]))
		assert.Equal(t, "B", p.Snapshot().SelectedID)

		require.NoError(t, p.SetAnnotations(anns[2:]))
		assert.Empty(t, p.Snapshot().SelectedID)
	})
}

func TestPlayer_Dispatch(t *testing.T) {
	p := loadedPlayer(t)

	plan, err := p.Seek(450)
	require.NoError(t, err)

	next, err := p.Dispatch(Signal{Kind: SignalReady, Seq: plan.Seq})
	require.NoError(t, err)
	assert.Nil(t, next)
	require.NoError(t, p.Play())

	_, err = p.Dispatch(Signal{Kind: SignalTick, Seq: plan.Seq, LocalTime: 200})
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.Snapshot().Position)

	_, err = p.Dispatch(Signal{Kind: SignalTick, Seq: plan.Seq + 5, LocalTime: 10})
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.Snapshot().Position, "ticks from a superseded source are dropped")

	next, err = p.Dispatch(Signal{Kind: SignalEnded, Seq: plan.Seq})
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "seg-3", next.Segment.ID)

	_, err = p.Dispatch(Signal{Kind: SignalError, Seq: next.Seq, Err: "decode failed"})
	require.NoError(t, err)
	assert.Equal(t, "decode failed", p.Snapshot().LastError)

	_, err = p.Dispatch(Signal{Kind: "buffering"})
	assert.Error(t, err)
}

func TestPlayer_ConcurrentSeeks(t *testing.T) {
	p := loadedPlayer(t)

	const workers = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seqs []uint64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plan, err := p.Seek(float64(i * 50))
			if err != nil {
				return
			}
			p.OnPositionTick(1)
			mu.Lock()
			seqs = append(seqs, plan.Seq)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	require.Len(t, seqs, workers)
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	for i, seq := range seqs {
		assert.Equal(t, uint64(i+1), seq, "sequence numbers are unique and gapless")
	}

	snap := p.Snapshot()
	require.NotNil(t, snap.Pending)
	assert.Equal(t, uint64(workers), snap.Pending.Seq, "the newest seek wins")
	assert.True(t, p.OnReady(uint64(workers)))
}
