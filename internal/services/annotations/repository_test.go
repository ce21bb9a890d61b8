package annotations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedVideo(t *testing.T, db *gorm.DB) *models.Video {
	video := &models.Video{Title: "Demo", Filename: "demo.mp4", OriginalName: "demo.mp4", MimeType: "video/mp4"}
	require.NoError(t, db.Create(video).Error)
	return video
}

func TestRepository_GetAnnotationsByVideoID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	video := seedVideo(t, db)
	other := seedVideo(t, db)

	for _, a := range []models.Annotation{
		{VideoID: video.ID, Title: "Late", StartTime: 300, EndTime: 320},
		{VideoID: video.ID, Title: "Early", StartTime: 10, EndTime: 40},
		{VideoID: video.ID, Title: "Middle", StartTime: 100, EndTime: 130},
		{VideoID: other.ID, Title: "Elsewhere", StartTime: 0, EndTime: 5},
	} {
		a := a
		require.NoError(t, repo.CreateAnnotation(ctx, &a))
	}

	list, err := repo.GetAnnotationsByVideoID(ctx, video.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Early", list[0].Title)
	assert.Equal(t, "Middle", list[1].Title)
	assert.Equal(t, "Late", list[2].Title)

	empty, err := repo.GetAnnotationsByVideoID(ctx, "nope")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	all, err := repo.ListAnnotations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	video := seedVideo(t, db)

	annotation := &models.Annotation{VideoID: video.ID, Title: "Gone soon", StartTime: 0, EndTime: 30}
	require.NoError(t, repo.CreateAnnotation(ctx, annotation))

	require.NoError(t, repo.SoftDeleteAnnotation(ctx, annotation.ID))

	_, err := repo.GetAnnotationByID(ctx, annotation.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	list, err := repo.GetAnnotationsByVideoID(ctx, video.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// the row is retained
	var raw models.Annotation
	require.NoError(t, db.Where("id = ?", annotation.ID).First(&raw).Error)
	assert.False(t, raw.IsActive)

	err = repo.SoftDeleteAnnotation(ctx, annotation.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound), "removing twice reports not found")
}

func TestRepository_UpdateAnnotation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	video := seedVideo(t, db)

	annotation := &models.Annotation{VideoID: video.ID, Title: "Before", StartTime: 0, EndTime: 30}
	require.NoError(t, repo.CreateAnnotation(ctx, annotation))

	annotation.Title = "After"
	annotation.EndTime = 45
	require.NoError(t, repo.UpdateAnnotation(ctx, annotation))

	reloaded, err := repo.GetAnnotationByID(ctx, annotation.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", reloaded.Title)
	assert.Equal(t, 45.0, reloaded.EndTime)
	assert.True(t, reloaded.IsActive)
}

func TestRepository_VideoExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	video := seedVideo(t, db)

	ok, err := repo.VideoExists(ctx, video.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, db.Model(video).Update("is_active", false).Error)
	ok, err = repo.VideoExists(ctx, video.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_DatabaseErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := NewRepository(db)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "annotations"`).WillReturnError(dbErr)

		_, err := repo.GetAnnotationsByVideoID(ctx, "video-1")
		assert.Equal(t, apperrors.ErrCodeDatabaseQuery, apperrors.GetCode(err))
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("get", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "annotations"`).WillReturnError(dbErr)

		_, err := repo.GetAnnotationByID(ctx, "ann-1")
		assert.Equal(t, apperrors.ErrCodeDatabaseQuery, apperrors.GetCode(err))
	})

	t.Run("soft delete", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "annotations" SET`).WillReturnError(dbErr)
		mock.ExpectRollback()

		err := repo.SoftDeleteAnnotation(ctx, "ann-1")
		assert.Equal(t, apperrors.ErrCodeDatabaseQuery, apperrors.GetCode(err))
	})

	t.Run("video exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "videos"`).WillReturnError(dbErr)

		_, err := repo.VideoExists(ctx, "video-1")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
