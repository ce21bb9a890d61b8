package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/playback"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// TimelineBuilder assembles the timeline a session plays
type TimelineBuilder interface {
	Build(ctx context.Context, videoID string) (*playback.Timeline, error)
	Annotations(ctx context.Context, videoID string) ([]playback.Annotation, error)
}

// Config controls session lifetime and the players sessions create
type Config struct {
	TTL             time.Duration
	CleanupInterval time.Duration
	MaxSessions     int
	Player          playback.PlayerConfig
}

// Session is one viewer's player for one video
type Session struct {
	ID        string           `json:"id"`
	VideoID   string           `json:"video_id"`
	CreatedAt time.Time        `json:"created_at"`
	Player    *playback.Player `json:"-"`

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen is when the session was last accessed
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager owns the live sessions and expires idle ones
type Manager struct {
	timelines TimelineBuilder
	cfg       Config
	logger    hclog.Logger
	now       func() time.Time

	sessions sync.Map
	count    int
	countMu  sync.Mutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a manager and starts its cleanup goroutine
func NewManager(timelines TimelineBuilder, cfg Config, logger hclog.Logger) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("sessions")
	if cfg.Player.Logger == nil {
		cfg.Player.Logger = logger
	}

	m := &Manager{
		timelines: timelines,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// Create builds a timeline for the video and starts a new session on it
func (m *Manager) Create(ctx context.Context, videoID string) (*Session, error) {
	tl, err := m.timelines.Build(ctx, videoID)
	if err != nil {
		return nil, err
	}

	player := playback.NewPlayer(m.cfg.Player)
	if err := player.Load(*tl); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeNoSegment, "video has no playable segments").
			WithDetail("video_id", videoID)
	}

	m.countMu.Lock()
	defer m.countMu.Unlock()
	if m.cfg.MaxSessions > 0 && m.count >= m.cfg.MaxSessions {
		return nil, apperrors.New(apperrors.ErrCodeConflict, "too many active sessions")
	}

	now := m.now()
	session := &Session{
		ID:        uuid.New().String(),
		VideoID:   videoID,
		CreatedAt: now,
		Player:    player,
		lastSeen:  now,
	}
	m.sessions.Store(session.ID, session)
	m.count++

	m.logger.Debug("session created", "session", session.ID, "video", videoID, "segments", len(tl.Segments))
	return session, nil
}

// Get returns a live session and marks it as used
func (m *Manager) Get(id string) (*Session, error) {
	value, ok := m.sessions.Load(id)
	if !ok {
		return nil, apperrors.NotFound("session", id)
	}
	session := value.(*Session)
	session.touch(m.now())
	return session, nil
}

// Delete ends a session
func (m *Manager) Delete(id string) error {
	if _, ok := m.sessions.LoadAndDelete(id); !ok {
		return apperrors.NotFound("session", id)
	}
	m.countMu.Lock()
	m.count--
	m.countMu.Unlock()
	return nil
}

// RefreshAnnotations reloads the annotation list of a session's video
func (m *Manager) RefreshAnnotations(ctx context.Context, id string) (*Session, error) {
	session, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	annotations, err := m.timelines.Annotations(ctx, session.VideoID)
	if err != nil {
		return nil, err
	}
	if err := session.Player.SetAnnotations(annotations); err != nil {
		return nil, err
	}
	return session, nil
}

// Count of live sessions
func (m *Manager) Count() int {
	m.countMu.Lock()
	defer m.countMu.Unlock()
	return m.count
}

// Stop halts the cleanup goroutine
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(m.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.expire()
		case <-m.stop:
			return
		}
	}
}

// expire removes sessions idle for longer than the TTL
func (m *Manager) expire() int {
	now := m.now()
	removed := 0
	m.sessions.Range(func(key, value any) bool {
		session := value.(*Session)
		if now.Sub(session.LastSeen()) > m.cfg.TTL {
			if m.Delete(key.(string)) == nil {
				removed++
			}
		}
		return true
	})
	if removed > 0 {
		m.logger.Info("expired idle sessions", "count", removed)
	}
	return removed
}
