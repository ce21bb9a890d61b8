package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	videos      VideoSource
	segments    SegmentSource
	annotations AnnotationSource
	urlPrefix   string
}

// NewService creates a timeline builder. urlPrefix is where raw video files
// are served for videos without segments.
func NewService(videos VideoSource, segments SegmentSource, annotations AnnotationSource, urlPrefix string) Service {
	return &ServiceImpl{
		videos:      videos,
		segments:    segments,
		annotations: annotations,
		urlPrefix:   strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Build loads a video's segments and annotations. A video without segments
// plays from its single file, so it gets one implicit segment covering its
// whole duration.
func (s *ServiceImpl) Build(ctx context.Context, videoID string) (*playback.Timeline, error) {
	video, err := s.videos.LookupVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	stored, err := s.segments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var segments []playback.Segment
	if len(stored) == 0 {
		segments = []playback.Segment{s.implicitSegment(video)}
	} else {
		if err := copier.Copy(&segments, &stored); err != nil {
			return nil, fmt.Errorf("mapping segments: %w", err)
		}
		for i := range segments {
			segments[i].SourceRef = s.segments.SourceRef(stored[i])
		}
	}

	annotations, err := s.Annotations(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &playback.Timeline{
		VideoID:     video.ID,
		Segments:    segments,
		Annotations: annotations,
	}, nil
}

// Annotations loads just the annotation half of a timeline
func (s *ServiceImpl) Annotations(ctx context.Context, videoID string) ([]playback.Annotation, error) {
	stored, err := s.annotations.GetAnnotationsByVideoID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	annotations := make([]playback.Annotation, 0, len(stored))
	if err := copier.Copy(&annotations, &stored); err != nil {
		return nil, fmt.Errorf("mapping annotations: %w", err)
	}
	return annotations, nil
}

func (s *ServiceImpl) implicitSegment(video *models.Video) playback.Segment {
	duration := video.PlaybackDuration()
	return playback.Segment{
		ID:        video.ID,
		Index:     0,
		StartTime: 0,
		EndTime:   duration,
		Duration:  duration,
		SourceRef: fmt.Sprintf("%s/videos/%s", s.urlPrefix, video.Filename),
	}
}
