package playback

import (
	"errors"
	"math"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Player defaults
const (
	DefaultAutoAdvanceThreshold = 0.5
	DefaultMaxLoadAttempts      = 3
)

// PlayerConfig tunes a Player. Zero values fall back to the defaults.
type PlayerConfig struct {
	AutoAdvanceThreshold float64 // Seconds before segment end that trigger auto-advance
	MaxLoadAttempts      int
	Logger               hclog.Logger
}

// Player is the state machine for one viewer of one video. The media element
// itself lives elsewhere; the player issues SeekPlans and consumes Signals.
//
// Every plan carries a sequence number strictly greater than all earlier
// ones. Only a ready or error signal carrying the pending plan's number is
// acted on, so a slow load for a superseded seek can never override a newer
// one.
type Player struct {
	mu sync.Mutex

	threshold   float64
	maxAttempts int
	logger      hclog.Logger

	timeline *Timeline
	state    State
	current  int     // Position of the displayed segment
	loaded   int     // Position of the segment the media element last reported ready
	position float64 // Displayed global time
	rate     float64

	seq          uint64
	appliedSeq   uint64
	pending      *SeekPlan
	loadAttempts int
	lastErr      error

	selectedID string
}

// NewPlayer creates an idle player
func NewPlayer(cfg PlayerConfig) *Player {
	threshold := cfg.AutoAdvanceThreshold
	if threshold <= 0 {
		threshold = DefaultAutoAdvanceThreshold
	}
	attempts := cfg.MaxLoadAttempts
	if attempts <= 0 {
		attempts = DefaultMaxLoadAttempts
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Player{
		threshold:   threshold,
		maxAttempts: attempts,
		logger:      logger,
		state:       StateIdle,
		rate:        1,
	}
}

// Load installs a timeline and parks the player on the first segment
func (p *Player) Load(tl Timeline) error {
	if len(tl.Segments) == 0 {
		return ErrNoSegmentFound
	}

	for _, d := range CheckContinuity(tl.Segments) {
		p.logger.Warn("segment discontinuity",
			"video", tl.VideoID, "after", d.After, "before", d.Before, "gap", d.Gap)
	}

	copied := Timeline{
		VideoID:     tl.VideoID,
		Segments:    append([]Segment(nil), tl.Segments...),
		Annotations: append([]Annotation(nil), tl.Annotations...),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.timeline = &copied
	p.state = StateReady
	p.current = 0
	p.loaded = 0
	p.position = copied.Segments[0].StartTime
	p.pending = nil
	p.appliedSeq = p.seq
	p.loadAttempts = 0
	p.lastErr = nil
	p.selectedID = ""
	return nil
}

// Seek moves playback to global time t. Any pending seek is superseded.
func (p *Player) Seek(t float64) (SeekPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateIdle {
		return SeekPlan{}, ErrNotLoaded
	}
	return p.seekLocked(t, p.wasPlayingLocked(), false)
}

func (p *Player) wasPlayingLocked() bool {
	if p.state == StateSeeking && p.pending != nil {
		return p.pending.Resume
	}
	return p.state == StatePlaying
}

func (p *Player) seekLocked(t float64, resume, auto bool) (SeekPlan, error) {
	loc, err := Resolve(t, p.timeline.Segments, p.logger)
	if err != nil {
		return SeekPlan{}, err
	}
	return p.issueLocked(loc, resume, auto), nil
}

func (p *Player) issueLocked(loc Location, resume, auto bool) SeekPlan {
	// While a segment switch is unapplied the media element holds no known
	// source, so every new plan has to load its segment again.
	var loaded *Segment
	if p.pending == nil || p.pending.Kind != SwitchSegment {
		seg := p.timeline.Segments[p.loaded]
		loaded = &seg
	}
	plan := PlanSeek(loaded, loc, resume, p.rate)
	plan.Auto = auto

	p.seq++
	plan.Seq = p.seq

	p.pending = &plan
	p.state = StateSeeking
	p.current = loc.Position
	p.position = plan.GlobalTime
	p.loadAttempts = 0
	p.lastErr = nil

	p.logger.Debug("seek issued", "seq", plan.Seq, "kind", plan.Kind,
		"segment", plan.Segment.ID, "local_time", plan.LocalTime, "auto", auto)
	return plan
}

// OnReady reports that the media element finished the plan with number seq.
// It returns false when the signal is stale and was discarded.
func (p *Player) OnReady(seq uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readyLocked(seq)
}

func (p *Player) readyLocked(seq uint64) bool {
	if p.state != StateSeeking || p.pending == nil || p.pending.Seq != seq {
		p.logger.Trace("discarding stale ready", "seq", seq, "pending", p.pendingSeqLocked())
		return false
	}

	if p.pending.Resume {
		p.state = StatePlaying
	} else {
		p.state = StatePaused
	}
	p.position = p.pending.GlobalTime
	p.current = p.pending.Position
	p.loaded = p.pending.Position
	p.appliedSeq = seq
	p.pending = nil
	p.loadAttempts = 0
	p.lastErr = nil
	return true
}

// OnPositionTick reports the media element's local time. Ticks are ignored
// while a seek is pending. Returns a plan when the tick triggers auto-advance.
func (p *Player) OnPositionTick(local float64) *SeekPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tickLocked(local)
}

func (p *Player) tickLocked(local float64) *SeekPlan {
	if p.state == StateIdle || p.state == StateSeeking || math.IsNaN(local) {
		return nil
	}

	seg := p.timeline.Segments[p.current]
	local = math.Max(0, math.Min(local, seg.Length()))
	p.position = seg.StartTime + local

	if p.state != StatePlaying || local < seg.Length()-p.threshold {
		return nil
	}
	return p.advanceLocked()
}

// OnEnded reports that the current segment finished. Playback continues on
// the next segment or stops at the end of the video.
func (p *Player) OnEnded() *SeekPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.endedLocked()
}

func (p *Player) endedLocked() *SeekPlan {
	if p.state == StateIdle || p.state == StateSeeking {
		return nil
	}
	if plan := p.advanceLocked(); plan != nil {
		return plan
	}

	seg := p.timeline.Segments[p.current]
	p.position = seg.EndTime
	p.state = StatePaused
	return nil
}

func (p *Player) advanceLocked() *SeekPlan {
	next := p.current + 1
	if next >= len(p.timeline.Segments) {
		return nil
	}

	seg := p.timeline.Segments[next]
	plan := p.issueLocked(Location{Segment: seg, Position: next}, true, true)
	p.logger.Info("auto-advancing to next segment", "segment", seg.ID, "index", seg.Index, "seq", plan.Seq)
	return &plan
}

// OnLoadError records a failed load for plan seq. It returns whether another
// retry is allowed; stale errors are ignored and report false.
func (p *Player) OnLoadError(seq uint64, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadErrorLocked(seq, err)
}

func (p *Player) loadErrorLocked(seq uint64, err error) bool {
	if p.state != StateSeeking || p.pending == nil || p.pending.Seq != seq {
		p.logger.Trace("discarding stale load error", "seq", seq, "error", err)
		return false
	}
	if err == nil {
		err = errors.New("segment load failed")
	}

	p.loadAttempts++
	p.lastErr = err
	p.logger.Warn("segment load failed",
		"segment", p.pending.Segment.ID, "seq", seq, "attempt", p.loadAttempts, "error", err)
	return p.loadAttempts < p.maxAttempts
}

// Retry re-issues the pending plan under a fresh sequence number
func (p *Player) Retry() (SeekPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		return SeekPlan{}, ErrNoPendingSeek
	}
	if p.loadAttempts >= p.maxAttempts {
		return SeekPlan{}, ErrRetryLimit
	}

	plan := *p.pending
	p.seq++
	plan.Seq = p.seq
	p.pending = &plan
	return plan, nil
}

// Dispatch routes a signal. Ticks and ended events tagged with a sequence
// number other than the last applied plan come from a superseded source and
// are dropped.
func (p *Player) Dispatch(sig Signal) (*SeekPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateIdle {
		return nil, ErrNotLoaded
	}

	switch sig.Kind {
	case SignalReady:
		p.readyLocked(sig.Seq)
		return nil, nil
	case SignalError:
		var err error
		if sig.Err != "" {
			err = errors.New(sig.Err)
		}
		p.loadErrorLocked(sig.Seq, err)
		return nil, nil
	case SignalTick:
		if sig.Seq != 0 && sig.Seq != p.appliedSeq {
			return nil, nil
		}
		return p.tickLocked(sig.LocalTime), nil
	case SignalEnded:
		if sig.Seq != 0 && sig.Seq != p.appliedSeq {
			return nil, nil
		}
		return p.endedLocked(), nil
	default:
		_, err := ParseSignalKind(string(sig.Kind))
		return nil, err
	}
}

// Play starts playback, or records the intent when a seek is pending
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case StateIdle:
		return ErrNotLoaded
	case StateSeeking:
		p.pending.Resume = true
	default:
		p.state = StatePlaying
	}
	return nil
}

// Pause stops playback, or records the intent when a seek is pending
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case StateIdle:
		return ErrNotLoaded
	case StateSeeking:
		p.pending.Resume = false
	default:
		p.state = StatePaused
	}
	return nil
}

// SetPlaybackRate changes the rate. It is carried into every later plan so
// it survives segment switches.
func (p *Player) SetPlaybackRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ErrInvalidRate
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.rate = rate
	if p.pending != nil {
		p.pending.PlaybackRate = rate
	}
	return nil
}

// Select marks an annotation as selected
func (p *Player) Select(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timeline == nil {
		return ErrNotLoaded
	}
	if _, ok := p.findAnnotationLocked(id); !ok {
		return ErrUnknownAnnotation
	}
	p.selectedID = id
	return nil
}

// ClearSelection drops the current selection
func (p *Player) ClearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedID = ""
}

// ClickTimeline seeks to fraction of the total duration and selects the
// annotation owning that ordinal slot. With no annotations the selection is
// cleared.
func (p *Player) ClickTimeline(fraction float64) (SeekPlan, *Annotation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateIdle {
		return SeekPlan{}, nil, ErrNotLoaded
	}

	t := SeekTimeForFraction(fraction, p.timeline.TotalDuration())
	plan, err := p.seekLocked(t, p.wasPlayingLocked(), false)
	if err != nil {
		return SeekPlan{}, nil, err
	}

	ann, _, ok := AnnotationForClickFraction(fraction, p.timeline.Annotations)
	if !ok {
		p.selectedID = ""
		return plan, nil, nil
	}
	p.selectedID = ann.ID
	return plan, &ann, nil
}

// SetAnnotations replaces the annotation list. A selection that no longer
// exists is cleared.
func (p *Player) SetAnnotations(annotations []Annotation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timeline == nil {
		return ErrNotLoaded
	}

	updated := *p.timeline
	updated.Annotations = append([]Annotation(nil), annotations...)
	p.timeline = &updated

	if _, ok := p.findAnnotationLocked(p.selectedID); !ok {
		p.selectedID = ""
	}
	return nil
}

func (p *Player) findAnnotationLocked(id string) (Annotation, bool) {
	if id == "" || p.timeline == nil {
		return Annotation{}, false
	}
	for _, a := range p.timeline.Annotations {
		if a.ID == id {
			return a, true
		}
	}
	return Annotation{}, false
}

func (p *Player) pendingSeqLocked() uint64 {
	if p.pending == nil {
		return 0
	}
	return p.pending.Seq
}

// State returns the current state
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// VideoID of the loaded timeline
func (p *Player) VideoID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timeline == nil {
		return ""
	}
	return p.timeline.VideoID
}

// Snapshot copies the observable state
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		State:        p.state,
		Position:     p.position,
		PlaybackRate: p.rate,
		SelectedID:   p.selectedID,
		Active:       []Annotation{},
		Seq:          p.seq,
		LoadAttempts: p.loadAttempts,
	}
	if p.lastErr != nil {
		snap.LastError = p.lastErr.Error()
	}
	if p.pending != nil {
		plan := *p.pending
		snap.Pending = &plan
		snap.CanRetry = p.loadAttempts > 0 && p.loadAttempts < p.maxAttempts
	}
	if p.timeline == nil {
		return snap
	}

	seg := p.timeline.Segments[p.current]
	snap.Segment = &seg
	snap.SegmentPosition = p.current
	snap.LocalTime = p.position - seg.StartTime
	snap.TotalDuration = p.timeline.TotalDuration()
	snap.Active = ActiveAnnotations(p.position, p.timeline.Annotations)
	if a, ok := p.findAnnotationLocked(p.selectedID); ok {
		snap.Selected = &a
	}
	return snap
}
