package videos

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

// NewRepository creates a new video repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func activeAnnotations(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("start_time ASC")
}

// CreateVideo inserts a video
func (r *RepositoryImpl) CreateVideo(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return apperrors.DatabaseError("create video", err)
	}
	return nil
}

// GetVideoByID retrieves an active video with its active annotations
func (r *RepositoryImpl) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	var video models.Video
	err := r.db.WithContext(ctx).
		Preload("Annotations", activeAnnotations).
		Where("id = ? AND is_active = ?", id, true).
		First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("video", id)
		}
		return nil, apperrors.DatabaseError("get video", err)
	}
	return &video, nil
}

// GetVideoByFilename finds a video by its stored filename, active or not
func (r *RepositoryImpl) GetVideoByFilename(ctx context.Context, filename string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("filename = ?", filename).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("video", filename)
		}
		return nil, apperrors.DatabaseError("get video by filename", err)
	}
	return &video, nil
}

// ListVideos returns active videos newest first
func (r *RepositoryImpl) ListVideos(ctx context.Context, productionOnly bool) ([]models.Video, error) {
	videos := []models.Video{}
	query := r.db.WithContext(ctx).
		Preload("Annotations", activeAnnotations).
		Where("is_active = ?", true)
	if productionOnly {
		query = query.Where("is_production = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, apperrors.DatabaseError("list videos", err)
	}
	return videos, nil
}

// IncrementViews bumps the view counter atomically
func (r *RepositoryImpl) IncrementViews(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return apperrors.DatabaseError("increment views", err)
	}
	return nil
}

// SetTotalDuration marks a video as production and records its segment total
func (r *RepositoryImpl) SetTotalDuration(ctx context.Context, id string, total float64) error {
	result := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{"is_production": true, "total_duration": total})
	if result.Error != nil {
		return apperrors.DatabaseError("set total duration", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("video", id)
	}
	return nil
}

// SoftDeleteVideo marks a video inactive
func (r *RepositoryImpl) SoftDeleteVideo(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return apperrors.DatabaseError("remove video", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("video", id)
	}
	return nil
}
