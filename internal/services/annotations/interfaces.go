package annotations

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
)

// Repository defines the interface for annotation data access.
// Reads only ever see active annotations.
type Repository interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Read operations
	GetAnnotationByID(ctx context.Context, id string) (*models.Annotation, error)
	GetAnnotationsByVideoID(ctx context.Context, videoID string) ([]models.Annotation, error)
	ListAnnotations(ctx context.Context) ([]models.Annotation, error)
	VideoExists(ctx context.Context, videoID string) (bool, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Delete operations
	SoftDeleteAnnotation(ctx context.Context, id string) error
}

// Service defines the interface for annotation business logic
type Service interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error
	NewAnnotationAt(ctx context.Context, videoID, title string, position float64) (*models.Annotation, error)

	// Read operations
	GetAnnotationByID(ctx context.Context, id string) (*models.Annotation, error)
	GetAnnotationsByVideoID(ctx context.Context, videoID string) ([]models.Annotation, error)
	ListAnnotations(ctx context.Context) ([]models.Annotation, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, id string, input UpdateInput) (*models.Annotation, error)

	// Delete operations
	RemoveAnnotation(ctx context.Context, id string) error

	// Defaults returns the values applied to new annotations
	Defaults() Defaults
}

// UpdateInput carries a partial update; nil fields are left unchanged
type UpdateInput struct {
	Title       *string
	Description *string
	StartTime   *float64
	EndTime     *float64
	Type        *string
	Color       *string
}

// Defaults applied to new annotations
type Defaults struct {
	Span  float64 // Seconds covered by NewAnnotationAt
	Type  string
	Color string
}
