package types

import (
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
	"github.com/killallgit/annotator-api/internal/services/sessions"
)

// FromPlaybackSegment converts a timeline segment
func FromPlaybackSegment(s playback.Segment) Segment {
	return Segment{
		ID:        s.ID,
		Index:     s.Index,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Duration:  s.Length(),
		URL:       s.SourceRef,
	}
}

// FromModelSegments converts stored segments, resolving each URL with url
func FromModelSegments(list []models.Segment, url func(models.Segment) string) []Segment {
	out := make([]Segment, 0, len(list))
	for _, s := range list {
		out = append(out, Segment{
			ID:        s.ID,
			Index:     s.Index,
			Filename:  s.Filename,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Duration:  s.Duration,
			URL:       url(s),
		})
	}
	return out
}

// FromPlaybackAnnotation converts a timeline annotation
func FromPlaybackAnnotation(a playback.Annotation) Annotation {
	return Annotation{
		ID:        a.ID,
		Title:     a.Title,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Type:      a.Type,
		Color:     a.Color,
	}
}

// FromPlaybackAnnotations converts a list, never returning nil
func FromPlaybackAnnotations(list []playback.Annotation) []Annotation {
	out := make([]Annotation, 0, len(list))
	for _, a := range list {
		out = append(out, FromPlaybackAnnotation(a))
	}
	return out
}

// FromLocation converts a resolver location
func FromLocation(loc playback.Location) Location {
	return Location{
		Segment:    FromPlaybackSegment(loc.Segment),
		Position:   loc.Position,
		LocalTime:  loc.LocalTime,
		GlobalTime: loc.GlobalTime(),
		Clamped:    loc.Clamped,
	}
}

// FromSeekPlan converts a plan; nil stays nil
func FromSeekPlan(plan *playback.SeekPlan) *SeekPlan {
	if plan == nil {
		return nil
	}
	return &SeekPlan{
		Seq:          plan.Seq,
		Kind:         string(plan.Kind),
		Segment:      FromPlaybackSegment(plan.Segment),
		LocalTime:    plan.LocalTime,
		GlobalTime:   plan.GlobalTime,
		Resume:       plan.Resume,
		PlaybackRate: plan.PlaybackRate,
		Auto:         plan.Auto,
	}
}

// FromSession snapshots a session's player
func FromSession(s *sessions.Session) Session {
	snap := s.Player.Snapshot()

	out := Session{
		ID:              s.ID,
		VideoID:         s.VideoID,
		State:           string(snap.State),
		Position:        snap.Position,
		LocalTime:       snap.LocalTime,
		TotalDuration:   snap.TotalDuration,
		SegmentPosition: snap.SegmentPosition,
		PlaybackRate:    snap.PlaybackRate,
		SelectedID:      snap.SelectedID,
		Active:          FromPlaybackAnnotations(snap.Active),
		Seq:             snap.Seq,
		Pending:         FromSeekPlan(snap.Pending),
		LastError:       snap.LastError,
		LoadAttempts:    snap.LoadAttempts,
		CanRetry:        snap.CanRetry,
	}
	if snap.Segment != nil {
		seg := FromPlaybackSegment(*snap.Segment)
		out.Segment = &seg
	}
	if snap.Selected != nil {
		sel := FromPlaybackAnnotation(*snap.Selected)
		out.Selected = &sel
	}
	return out
}

// NewSessionResponse wraps a session and the plan the call produced
func NewSessionResponse(s *sessions.Session, plan *playback.SeekPlan) SessionResponse {
	return SessionResponse{
		BaseResponse: BaseResponse{Status: StatusOK},
		Session:      FromSession(s),
		Plan:         FromSeekPlan(plan),
	}
}
