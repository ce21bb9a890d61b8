package segments

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new segment repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetSegmentsByVideoID returns active segments ordered by index
func (r *RepositoryImpl) GetSegmentsByVideoID(ctx context.Context, videoID string) ([]models.Segment, error) {
	segments := []models.Segment{}
	if err := r.db.WithContext(ctx).
		Where("video_id = ? AND is_active = ?", videoID, true).
		Order("chunk_index ASC").
		Find(&segments).Error; err != nil {
		return nil, apperrors.DatabaseError("list segments", err)
	}
	return segments, nil
}

// CreateSegments inserts segments in one transaction
func (r *RepositoryImpl) CreateSegments(ctx context.Context, segments []models.Segment) error {
	if len(segments) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&segments).Error; err != nil {
		return apperrors.DatabaseError("create segments", err)
	}
	return nil
}

// ReplaceSegments deactivates the video's current segments and inserts the
// new set atomically
func (r *RepositoryImpl) ReplaceSegments(ctx context.Context, videoID string, segments []models.Segment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Segment{}).
			Where("video_id = ? AND is_active = ?", videoID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if len(segments) == 0 {
			return nil
		}
		return tx.Create(&segments).Error
	})
	if err != nil {
		return apperrors.DatabaseError("replace segments", err)
	}
	return nil
}
