package videos

import (
	"context"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// DefaultMimeType is served when a file has no catalog entry
const DefaultMimeType = "video/mp4"

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository   Repository
	allowedTypes []string
	logger       hclog.Logger
}

// NewService creates a new video catalog service. An empty allow-list
// accepts any video/* type.
func NewService(repository Repository, allowedTypes []string, logger hclog.Logger) Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ServiceImpl{
		repository:   repository,
		allowedTypes: allowedTypes,
		logger:       logger.Named("videos"),
	}
}

// ListVideos returns every active video
func (s *ServiceImpl) ListVideos(ctx context.Context) ([]models.Video, error) {
	return s.repository.ListVideos(ctx, false)
}

// ListProductionVideos returns active segmented videos
func (s *ServiceImpl) ListProductionVideos(ctx context.Context) ([]models.Video, error) {
	return s.repository.ListVideos(ctx, true)
}

// GetVideo returns a video and records a view
func (s *ServiceImpl) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.repository.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repository.IncrementViews(ctx, id); err != nil {
		// a lost view count should not fail the read
		s.logger.Warn("failed to increment views", "video", id, "error", err)
		return video, nil
	}
	video.Views++
	return video, nil
}

// LookupVideo returns a video without side effects
func (s *ServiceImpl) LookupVideo(ctx context.Context, id string) (*models.Video, error) {
	return s.repository.GetVideoByID(ctx, id)
}

// MimeTypeForFile resolves the content type recorded for a stored file
func (s *ServiceImpl) MimeTypeForFile(ctx context.Context, filename string) string {
	video, err := s.repository.GetVideoByFilename(ctx, filename)
	if err == nil && video.MimeType != "" {
		return video.MimeType
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".ts":
		return "video/mp2t"
	case ".m4s":
		return "video/iso.segment"
	default:
		return DefaultMimeType
	}
}

// CreateVideo validates and stores a new video
func (s *ServiceImpl) CreateVideo(ctx context.Context, input CreateInput) (*models.Video, error) {
	input.Title = strings.TrimSpace(input.Title)
	switch {
	case input.Title == "":
		return nil, apperrors.MissingFieldError("title")
	case input.Filename == "":
		return nil, apperrors.MissingFieldError("filename")
	case input.OriginalName == "":
		return nil, apperrors.MissingFieldError("original_name")
	case input.MimeType == "":
		return nil, apperrors.MissingFieldError("mime_type")
	}
	if filepath.Base(input.Filename) != input.Filename {
		return nil, apperrors.ValidationError("filename", "must not contain a path")
	}
	if !s.mimeAllowed(input.MimeType) {
		return nil, apperrors.ValidationError("mime_type", "unsupported video type "+input.MimeType)
	}
	if input.Size < 0 {
		return nil, apperrors.ValidationError("size", "must not be negative")
	}
	if input.Duration < 0 || math.IsNaN(input.Duration) {
		return nil, apperrors.ValidationError("duration", "must not be negative")
	}

	video := &models.Video{
		Title:        input.Title,
		Description:  input.Description,
		Filename:     input.Filename,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		Size:         input.Size,
		Duration:     input.Duration,
		IsProduction: input.IsProduction,
		IsActive:     true,
	}
	if err := s.repository.CreateVideo(ctx, video); err != nil {
		return nil, err
	}

	s.logger.Info("video created", "id", video.ID, "filename", video.Filename)
	return video, nil
}

func (s *ServiceImpl) mimeAllowed(mimeType string) bool {
	if len(s.allowedTypes) == 0 {
		return strings.HasPrefix(mimeType, "video/")
	}
	return slices.Contains(s.allowedTypes, mimeType)
}

// SetTimeline records the total segment duration of a production video
func (s *ServiceImpl) SetTimeline(ctx context.Context, id string, total float64) error {
	if total < 0 || math.IsNaN(total) {
		return apperrors.ValidationError("total_duration", "must not be negative")
	}
	return s.repository.SetTotalDuration(ctx, id, total)
}

// RemoveVideo soft-deletes a video
func (s *ServiceImpl) RemoveVideo(ctx context.Context, id string) error {
	if err := s.repository.SoftDeleteVideo(ctx, id); err != nil {
		return err
	}
	s.logger.Info("video removed", "id", id)
	return nil
}
