package segments

import (
	"context"
	"io"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
)

// Repository defines the interface for segment data access
type Repository interface {
	GetSegmentsByVideoID(ctx context.Context, videoID string) ([]models.Segment, error)
	CreateSegments(ctx context.Context, segments []models.Segment) error
	ReplaceSegments(ctx context.Context, videoID string, segments []models.Segment) error
}

// VideoCatalog is the slice of the video service segments depend on
type VideoCatalog interface {
	LookupVideo(ctx context.Context, id string) (*models.Video, error)
	SetTimeline(ctx context.Context, id string, total float64) error
}

// Service defines the interface for the segment catalog
type Service interface {
	ListByVideo(ctx context.Context, videoID string) ([]models.Segment, error)
	Add(ctx context.Context, videoID string, inputs []Input) (*Result, error)
	ImportPlaylist(ctx context.Context, videoID string, r io.Reader) (*Result, error)
	Playlist(ctx context.Context, videoID string) (string, error)
	SourceRef(segment models.Segment) string
}

// Input describes one segment to add. EndTime may be omitted when Duration
// is given.
type Input struct {
	Filename  string
	StartTime float64
	EndTime   float64
	Duration  float64
	Size      int64
	FPS       float64
	Width     int
	Height    int
}

// Result of a catalog write. Discontinuities are reported, not rejected.
type Result struct {
	Segments        []models.Segment         `json:"segments"`
	Discontinuities []playback.Discontinuity `json:"discontinuities"`
	TotalDuration   float64                  `json:"total_duration"`
}
