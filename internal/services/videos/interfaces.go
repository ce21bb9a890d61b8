package videos

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
)

// Repository defines the interface for video data access
type Repository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideoByID(ctx context.Context, id string) (*models.Video, error)
	GetVideoByFilename(ctx context.Context, filename string) (*models.Video, error)
	ListVideos(ctx context.Context, productionOnly bool) ([]models.Video, error)
	IncrementViews(ctx context.Context, id string) error
	SetTotalDuration(ctx context.Context, id string, total float64) error
	SoftDeleteVideo(ctx context.Context, id string) error
}

// Service defines the interface for the video catalog
type Service interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
	ListProductionVideos(ctx context.Context) ([]models.Video, error)

	// GetVideo counts as a view; LookupVideo does not
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	LookupVideo(ctx context.Context, id string) (*models.Video, error)
	MimeTypeForFile(ctx context.Context, filename string) string

	CreateVideo(ctx context.Context, input CreateInput) (*models.Video, error)
	SetTimeline(ctx context.Context, id string, total float64) error
	RemoveVideo(ctx context.Context, id string) error
}

// CreateInput describes a new video record
type CreateInput struct {
	Title        string
	Description  string
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	Duration     float64
	IsProduction bool
}
