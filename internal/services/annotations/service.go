package annotations

import (
	"context"
	"math"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// DefaultSpan is the length of an annotation created at a playback position
const DefaultSpan = 30.0

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	defaults   Defaults
	logger     hclog.Logger
}

// NewService creates a new annotation service
func NewService(repository Repository, defaults Defaults, logger hclog.Logger) Service {
	if defaults.Span <= 0 {
		defaults.Span = DefaultSpan
	}
	if defaults.Type == "" {
		defaults.Type = models.DefaultAnnotationType
	}
	if defaults.Color == "" {
		defaults.Color = models.DefaultAnnotationColor
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &ServiceImpl{
		repository: repository,
		defaults:   defaults,
		logger:     logger.Named("annotations"),
	}
}

// CreateAnnotation creates a new annotation with validation
func (s *ServiceImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	annotation.Title = strings.TrimSpace(annotation.Title)
	if annotation.VideoID == "" {
		return apperrors.MissingFieldError("video_id")
	}
	if err := validate(annotation); err != nil {
		return err
	}

	exists, err := s.repository.VideoExists(ctx, annotation.VideoID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("video", annotation.VideoID)
	}

	if annotation.Type == "" {
		annotation.Type = s.defaults.Type
	}
	if annotation.Color == "" {
		annotation.Color = s.defaults.Color
	}
	annotation.IsActive = true

	if err := s.repository.CreateAnnotation(ctx, annotation); err != nil {
		return err
	}

	s.logger.Debug("annotation created", "id", annotation.ID, "video", annotation.VideoID,
		"start", annotation.StartTime, "end", annotation.EndTime)
	return nil
}

// NewAnnotationAt creates an annotation starting at position and spanning the
// default length
func (s *ServiceImpl) NewAnnotationAt(ctx context.Context, videoID, title string, position float64) (*models.Annotation, error) {
	annotation := &models.Annotation{
		VideoID:   videoID,
		Title:     title,
		StartTime: position,
		EndTime:   position + s.defaults.Span,
	}
	if err := s.CreateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// GetAnnotationByID retrieves an annotation by its ID
func (s *ServiceImpl) GetAnnotationByID(ctx context.Context, id string) (*models.Annotation, error) {
	return s.repository.GetAnnotationByID(ctx, id)
}

// GetAnnotationsByVideoID retrieves all annotations for a specific video
func (s *ServiceImpl) GetAnnotationsByVideoID(ctx context.Context, videoID string) ([]models.Annotation, error) {
	return s.repository.GetAnnotationsByVideoID(ctx, videoID)
}

// ListAnnotations retrieves every annotation
func (s *ServiceImpl) ListAnnotations(ctx context.Context) ([]models.Annotation, error) {
	return s.repository.ListAnnotations(ctx)
}

// UpdateAnnotation applies a partial update to an existing annotation
func (s *ServiceImpl) UpdateAnnotation(ctx context.Context, id string, input UpdateInput) (*models.Annotation, error) {
	annotation, err := s.repository.GetAnnotationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		annotation.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		annotation.Description = *input.Description
	}
	if input.StartTime != nil {
		annotation.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		annotation.EndTime = *input.EndTime
	}
	if input.Type != nil && *input.Type != "" {
		annotation.Type = *input.Type
	}
	if input.Color != nil && *input.Color != "" {
		annotation.Color = *input.Color
	}

	if err := validate(annotation); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// RemoveAnnotation soft-deletes an annotation by its ID
func (s *ServiceImpl) RemoveAnnotation(ctx context.Context, id string) error {
	if err := s.repository.SoftDeleteAnnotation(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("annotation removed", "id", id)
	return nil
}

// Defaults returns the values applied to new annotations
func (s *ServiceImpl) Defaults() Defaults {
	return s.defaults
}

func validate(annotation *models.Annotation) error {
	if annotation.Title == "" {
		return apperrors.MissingFieldError("title")
	}
	if math.IsNaN(annotation.StartTime) || annotation.StartTime < 0 {
		return apperrors.ValidationError("start_time", "must be a non-negative number")
	}
	if math.IsNaN(annotation.EndTime) || annotation.EndTime < annotation.StartTime {
		return apperrors.ValidationError("end_time", "must not be before start_time")
	}
	return nil
}
