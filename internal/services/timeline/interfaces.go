package timeline

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
)

// VideoSource looks up videos without counting views
type VideoSource interface {
	LookupVideo(ctx context.Context, id string) (*models.Video, error)
}

// SegmentSource lists a video's segments and knows their playback URLs
type SegmentSource interface {
	ListByVideo(ctx context.Context, videoID string) ([]models.Segment, error)
	SourceRef(segment models.Segment) string
}

// AnnotationSource lists a video's annotations ordered by start time
type AnnotationSource interface {
	GetAnnotationsByVideoID(ctx context.Context, videoID string) ([]models.Annotation, error)
}

// Service assembles playback timelines
type Service interface {
	Build(ctx context.Context, videoID string) (*playback.Timeline, error)
	Annotations(ctx context.Context, videoID string) ([]playback.Annotation, error)
}
