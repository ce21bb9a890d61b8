package annotations

import (
	"context"
	"errors"

	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("is_active = ?", true)
}

// CreateAnnotation creates a new annotation in the database
func (r *RepositoryImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if err := r.db.WithContext(ctx).Create(annotation).Error; err != nil {
		return apperrors.DatabaseError("create annotation", err)
	}
	return nil
}

// GetAnnotationByID retrieves an active annotation by its ID
func (r *RepositoryImpl) GetAnnotationByID(ctx context.Context, id string) (*models.Annotation, error) {
	var annotation models.Annotation
	if err := r.active(ctx).Where("id = ?", id).First(&annotation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("annotation", id)
		}
		return nil, apperrors.DatabaseError("get annotation", err)
	}
	return &annotation, nil
}

// GetAnnotationsByVideoID retrieves all active annotations for a video ordered by start time
func (r *RepositoryImpl) GetAnnotationsByVideoID(ctx context.Context, videoID string) ([]models.Annotation, error) {
	annotations := []models.Annotation{}
	if err := r.active(ctx).
		Where("video_id = ?", videoID).
		Order("start_time ASC").
		Find(&annotations).Error; err != nil {
		return nil, apperrors.DatabaseError("list annotations for video", err)
	}
	return annotations, nil
}

// ListAnnotations retrieves every active annotation
func (r *RepositoryImpl) ListAnnotations(ctx context.Context) ([]models.Annotation, error) {
	annotations := []models.Annotation{}
	if err := r.active(ctx).
		Order("video_id ASC, start_time ASC").
		Find(&annotations).Error; err != nil {
		return nil, apperrors.DatabaseError("list annotations", err)
	}
	return annotations, nil
}

// VideoExists reports whether an active video with the ID exists
func (r *RepositoryImpl) VideoExists(ctx context.Context, videoID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ? AND is_active = ?", videoID, true).
		Count(&count).Error; err != nil {
		return false, apperrors.DatabaseError("check video", err)
	}
	return count > 0, nil
}

// UpdateAnnotation updates an existing annotation
func (r *RepositoryImpl) UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	result := r.db.WithContext(ctx).Save(annotation)
	if result.Error != nil {
		return apperrors.DatabaseError("update annotation", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("annotation", annotation.ID)
	}
	return nil
}

// SoftDeleteAnnotation marks an annotation inactive. Rows are never removed.
func (r *RepositoryImpl) SoftDeleteAnnotation(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return apperrors.DatabaseError("remove annotation", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("annotation", id)
	}
	return nil
}
