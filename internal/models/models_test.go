package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func TestAnnotation_BeforeCreate(t *testing.T) {
	db := setupTestDB(t)

	video := &Video{Title: "Demo", Filename: "demo.mp4", OriginalName: "demo.mp4", MimeType: "video/mp4", IsActive: true}
	require.NoError(t, db.Create(video).Error)
	assert.Len(t, video.ID, 36)

	annotation := &Annotation{VideoID: video.ID, Title: "Intro", StartTime: 0, EndTime: 30, IsActive: true}
	require.NoError(t, db.Create(annotation).Error)

	assert.Len(t, annotation.ID, 36)
	assert.Equal(t, DefaultAnnotationType, annotation.Type)
	assert.Equal(t, DefaultAnnotationColor, annotation.Color)

	t.Run("keeps explicit values", func(t *testing.T) {
		custom := &Annotation{ID: "fixed-id", VideoID: video.ID, Title: "Ad", Type: "marker", Color: "#ff0000"}
		require.NoError(t, db.Create(custom).Error)
		assert.Equal(t, "fixed-id", custom.ID)
		assert.Equal(t, "marker", custom.Type)
		assert.Equal(t, "#ff0000", custom.Color)
	})
}

func TestAnnotation_Contains(t *testing.T) {
	a := Annotation{StartTime: 60, EndTime: 120}

	assert.True(t, a.Contains(60))
	assert.True(t, a.Contains(90))
	assert.True(t, a.Contains(120))
	assert.False(t, a.Contains(59.9))
	assert.False(t, a.Contains(120.1))
}

func TestVideo_PlaybackDuration(t *testing.T) {
	total := 900.0

	simple := Video{Duration: 42}
	assert.Equal(t, 42.0, simple.PlaybackDuration())

	production := Video{Duration: 42, IsProduction: true, TotalDuration: &total}
	assert.Equal(t, 900.0, production.PlaybackDuration())

	missingTotal := Video{Duration: 42, IsProduction: true}
	assert.Equal(t, 42.0, missingTotal.PlaybackDuration())
}

func TestSegment_TableName(t *testing.T) {
	db := setupTestDB(t)

	video := &Video{Title: "Prod", Filename: "prod.webm", OriginalName: "prod.webm", MimeType: "video/webm", IsProduction: true}
	require.NoError(t, db.Create(video).Error)

	segment := &Segment{VideoID: video.ID, Index: 0, Filename: "chunk_000.webm", StartTime: 0, EndTime: 300, Duration: 300}
	require.NoError(t, db.Create(segment).Error)
	assert.NotEmpty(t, segment.ID)
	assert.True(t, db.Migrator().HasTable("video_segments"))
	assert.True(t, db.Migrator().HasColumn(&Segment{}, "chunk_index"))
}
