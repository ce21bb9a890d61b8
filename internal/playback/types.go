// Package playback maps a logical video timeline onto its physical segments
// and drives a per-viewer player state machine over that mapping.
package playback

import (
	"fmt"
	"strings"
)

// Segment is a physical media file covering [StartTime, EndTime] of the
// logical timeline.
type Segment struct {
	ID        string  `json:"id"`
	Index     int     `json:"index"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Duration  float64 `json:"duration"`
	SourceRef string  `json:"source_ref"`
}

// Length is the segment's playable length in seconds
func (s Segment) Length() float64 {
	if s.Duration > 0 {
		return s.Duration
	}
	return s.EndTime - s.StartTime
}

// Annotation is a labeled range on the global timeline
type Annotation struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Color     string  `json:"color"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
}

// Contains reports whether t lies within the annotation, bounds inclusive
func (a Annotation) Contains(t float64) bool {
	return a.StartTime <= t && t <= a.EndTime
}

// Location is the answer to "where is global time t physically"
type Location struct {
	Segment   Segment `json:"segment"`
	Position  int     `json:"position"` // Slice index of Segment
	LocalTime float64 `json:"local_time"`
	Clamped   bool    `json:"clamped"`
}

// GlobalTime converts the location back onto the logical timeline
func (l Location) GlobalTime() float64 {
	return l.Segment.StartTime + l.LocalTime
}

// Timeline is everything a player needs for one video. Treat it as
// immutable once handed to a Player.
type Timeline struct {
	VideoID     string       `json:"video_id"`
	Segments    []Segment    `json:"segments"`
	Annotations []Annotation `json:"annotations"`
}

// TotalDuration of the timeline
func (t *Timeline) TotalDuration() float64 {
	return TotalDuration(t.Segments)
}

// SeekKind distinguishes seeks that stay on the loaded source from ones that
// require loading a different segment.
type SeekKind string

const (
	SeekInPlace   SeekKind = "in_place"
	SwitchSegment SeekKind = "switch_segment"
)

// SeekPlan tells the media element owner what to do. For SwitchSegment the
// owner loads Segment.SourceRef, waits until it is ready, applies
// PlaybackRate, sets LocalTime and only then resumes when Resume is set.
type SeekPlan struct {
	Seq          uint64   `json:"seq"`
	Kind         SeekKind `json:"kind"`
	Segment      Segment  `json:"segment"`
	Position     int      `json:"position"`
	LocalTime    float64  `json:"local_time"`
	GlobalTime   float64  `json:"global_time"`
	Resume       bool     `json:"resume"`
	PlaybackRate float64  `json:"playback_rate"`
	Auto         bool     `json:"auto"` // Issued by auto-advance rather than the viewer
}

// State of a Player
type State string

const (
	StateIdle    State = "idle"
	StateReady   State = "ready"
	StateSeeking State = "seeking"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// SignalKind enumerates events reported by the media element owner
type SignalKind string

const (
	SignalReady SignalKind = "ready"
	SignalTick  SignalKind = "tick"
	SignalEnded SignalKind = "ended"
	SignalError SignalKind = "error"
)

// ParseSignalKind validates a signal name
func ParseSignalKind(s string) (SignalKind, error) {
	switch kind := SignalKind(strings.ToLower(s)); kind {
	case SignalReady, SignalTick, SignalEnded, SignalError:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown signal kind %q", s)
	}
}

// Signal is one inbound media event. Seq is the plan the event belongs to;
// zero means the sender does not track plans.
type Signal struct {
	Kind      SignalKind `json:"kind"`
	Seq       uint64     `json:"seq"`
	LocalTime float64    `json:"local_time"`
	Err       string     `json:"error,omitempty"`
}

// Discontinuity between two adjacent segments. Positive Gap means uncovered
// time, negative means overlap.
type Discontinuity struct {
	After  int     `json:"after"`  // Position of the earlier segment
	Before int     `json:"before"` // Position of the later segment
	Gap    float64 `json:"gap"`
}

// Snapshot is a read-only view of a Player for rendering
type Snapshot struct {
	State           State        `json:"state"`
	Position        float64      `json:"position"`
	LocalTime       float64      `json:"local_time"`
	Segment         *Segment     `json:"segment,omitempty"`
	SegmentPosition int          `json:"segment_position"`
	PlaybackRate    float64      `json:"playback_rate"`
	SelectedID      string       `json:"selected_id,omitempty"`
	Selected        *Annotation  `json:"selected,omitempty"`
	Active          []Annotation `json:"active"`
	Seq             uint64       `json:"seq"`
	Pending         *SeekPlan    `json:"pending,omitempty"`
	LastError       string       `json:"last_error,omitempty"`
	LoadAttempts    int          `json:"load_attempts"`
	CanRetry        bool         `json:"can_retry"`
	TotalDuration   float64      `json:"total_duration"`
}
