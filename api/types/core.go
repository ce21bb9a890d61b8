package types

import "github.com/killallgit/annotator-api/internal/playback"

// Core playback data types used across API responses

// Segment is a physical chunk with its playback URL
type Segment struct {
	ID        string  `json:"id"`
	Index     int     `json:"index"`
	Filename  string  `json:"filename,omitempty"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Duration  float64 `json:"duration"`
	URL       string  `json:"url"`
}

// Annotation is the slim form used by playback responses
type Annotation struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Type      string  `json:"type"`
	Color     string  `json:"color"`
}

// Location of a global time inside a segment
type Location struct {
	Segment    Segment `json:"segment"`
	Position   int     `json:"position"`
	LocalTime  float64 `json:"local_time"`
	GlobalTime float64 `json:"global_time"`
	Clamped    bool    `json:"clamped"`
}

// Discontinuity between two adjacent segments
type Discontinuity = playback.Discontinuity

// SeekPlan tells the client how to move its media element
type SeekPlan struct {
	Seq          uint64  `json:"seq"`
	Kind         string  `json:"kind"` // in_place|switch_segment
	Segment      Segment `json:"segment"`
	LocalTime    float64 `json:"local_time"`
	GlobalTime   float64 `json:"global_time"`
	Resume       bool    `json:"resume"`
	PlaybackRate float64 `json:"playback_rate"`
	Auto         bool    `json:"auto"`
}

// Session is the renderable state of a playback session
type Session struct {
	ID              string       `json:"id"`
	VideoID         string       `json:"video_id"`
	State           string       `json:"state"`
	Position        float64      `json:"position"`
	LocalTime       float64      `json:"local_time"`
	TotalDuration   float64      `json:"total_duration"`
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
}
