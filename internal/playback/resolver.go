package playback

import (
	"errors"
	"math"

	"github.com/hashicorp/go-hclog"
)

// continuityTolerance absorbs float noise in stored segment boundaries
const continuityTolerance = 0.001

// LocateSegment finds the first segment with StartTime <= t <= EndTime.
// Times before zero clamp to the start of the first segment and times past
// the last segment clamp to its end. A gap in coverage or an empty list
// yields ErrNoSegmentFound.
func LocateSegment(t float64, segments []Segment) (Location, error) {
	if len(segments) == 0 {
		return Location{}, ErrNoSegmentFound
	}

	if math.IsNaN(t) || t < 0 {
		return Location{Segment: segments[0], Position: 0, LocalTime: 0, Clamped: true}, nil
	}

	last := len(segments) - 1
	if t > segments[last].EndTime {
		return Location{
			Segment:   segments[last],
			Position:  last,
			LocalTime: segments[last].Length(),
			Clamped:   true,
		}, nil
	}

	for i, seg := range segments {
		if seg.StartTime <= t && t <= seg.EndTime {
			return Location{Segment: seg, Position: i, LocalTime: t - seg.StartTime}, nil
		}
	}

	return Location{}, ErrNoSegmentFound
}

// NearestSegment picks the segment whose range is closest to t and clamps the
// local time into it. Used when LocateSegment falls into a gap.
func NearestSegment(t float64, segments []Segment) (Location, error) {
	if len(segments) == 0 {
		return Location{}, ErrNoSegmentFound
	}
	if math.IsNaN(t) {
		t = 0
	}

	best, bestDist := 0, math.Inf(1)
	for i, seg := range segments {
		var dist float64
		switch {
		case t < seg.StartTime:
			dist = seg.StartTime - t
		case t > seg.EndTime:
			dist = t - seg.EndTime
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}

	seg := segments[best]
	local := math.Max(0, math.Min(t-seg.StartTime, seg.Length()))
	return Location{Segment: seg, Position: best, LocalTime: local, Clamped: true}, nil
}

// Resolve locates t and degrades to the nearest segment when t falls into a
// coverage gap. It only fails for an empty segment list.
func Resolve(t float64, segments []Segment, logger hclog.Logger) (Location, error) {
	loc, err := LocateSegment(t, segments)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, ErrNoSegmentFound) || len(segments) == 0 {
		return Location{}, err
	}

	loc, err = NearestSegment(t, segments)
	if err != nil {
		return Location{}, err
	}
	if logger != nil {
		logger.Warn("no segment covers time, using nearest",
			"time", t, "segment", loc.Segment.ID, "local_time", loc.LocalTime)
	}
	return loc, nil
}

// CheckContinuity reports every pair of adjacent segments that do not meet
func CheckContinuity(segments []Segment) []Discontinuity {
	var out []Discontinuity
	for i := 1; i < len(segments); i++ {
		gap := segments[i].StartTime - segments[i-1].EndTime
		if math.Abs(gap) > continuityTolerance {
			out = append(out, Discontinuity{After: i - 1, Before: i, Gap: gap})
		}
	}
	return out
}

// TotalDuration is the end of the last segment
func TotalDuration(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].EndTime
}

// PlanSeek decides how to reach target from the currently loaded segment.
// Seq is left for the caller to assign.
func PlanSeek(current *Segment, target Location, wasPlaying bool, rate float64) SeekPlan {
	kind := SwitchSegment
	if current != nil && current.ID == target.Segment.ID {
		kind = SeekInPlace
	}
	if rate <= 0 {
		rate = 1
	}
	return SeekPlan{
		Kind:         kind,
		Segment:      target.Segment,
		Position:     target.Position,
		LocalTime:    target.LocalTime,
		GlobalTime:   target.GlobalTime(),
		Resume:       wasPlaying,
		PlaybackRate: rate,
	}
}

// ActiveAnnotations returns every annotation containing t, in input order
func ActiveAnnotations(t float64, annotations []Annotation) []Annotation {
	active := make([]Annotation, 0)
	for _, a := range annotations {
		if a.Contains(t) {
			active = append(active, a)
		}
	}
	return active
}

// AnnotationForClickFraction maps a click at fraction of the timeline width
// to the annotation owning that ordinal slot. The timeline is divided into
// len(annotations) equal intervals regardless of annotation times.
func AnnotationForClickFraction(fraction float64, annotations []Annotation) (Annotation, int, bool) {
	n := len(annotations)
	if n == 0 {
		return Annotation{}, -1, false
	}

	idx := int(math.Floor(clampFraction(fraction) * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return annotations[idx], idx, true
}

// SeekTimeForFraction is the global time a timeline click at fraction seeks to
func SeekTimeForFraction(fraction, total float64) float64 {
	return clampFraction(fraction) * total
}

func clampFraction(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
