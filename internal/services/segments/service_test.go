package segments

import (
	"context"
	"strings"
	"testing"

	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MockVideoCatalog is a mock implementation of the VideoCatalog interface
type MockVideoCatalog struct {
	mock.Mock
}

func (m *MockVideoCatalog) LookupVideo(ctx context.Context, id string) (*models.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoCatalog) SetTimeline(ctx context.Context, id string, total float64) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

const mediaPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:300
#EXT-X-MEDIA-SEQUENCE:0
#EXT-X-PLAYLIST-TYPE:VOD
#EXTINF:300.0,
chunk_000.webm
#EXTINF:300.0,
https://cdn.example.com/videos/chunk_001.webm
#EXTINF:120.5,
chunk_002.webm
#EXT-X-ENDLIST
`

const masterPlaylist = `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=1280x720
720p.m3u8
`

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

func setupService(t *testing.T) (Service, *MockVideoCatalog, *gorm.DB) {
	db := setupTestDB(t)
	catalog := new(MockVideoCatalog)
	catalog.On("LookupVideo", mock.Anything, "video-1").Return(&models.Video{ID: "video-1"}, nil)
	catalog.On("LookupVideo", mock.Anything, mock.Anything).Return(nil, apperrors.NotFound("video", "missing"))
	return NewService(NewRepository(db), catalog, "/api/v1/media/", nil), catalog, db
}

func TestServiceImpl_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("contiguous segments", func(t *testing.T) {
		service, catalog, _ := setupService(t)
		catalog.On("SetTimeline", ctx, "video-1", 600.0).Return(nil)

		result, err := service.Add(ctx, "video-1", []Input{
			{Filename: "chunk_000.webm", StartTime: 0, EndTime: 300},
			{Filename: "chunk_001.webm", StartTime: 300, Duration: 300},
		})
		require.NoError(t, err)
		require.Len(t, result.Segments, 2)
		assert.Empty(t, result.Discontinuities)
		assert.Equal(t, 600.0, result.TotalDuration)
		assert.Equal(t, 1, result.Segments[1].Index)
		assert.Equal(t, 600.0, result.Segments[1].EndTime)
		assert.Equal(t, 300.0, result.Segments[0].Duration)
		assert.NotEmpty(t, result.Segments[0].ID)
		catalog.AssertExpectations(t)
	})

	t.Run("appends after existing and reports gaps", func(t *testing.T) {
		service, catalog, _ := setupService(t)
		catalog.On("SetTimeline", ctx, "video-1", mock.Anything).Return(nil)

		_, err := service.Add(ctx, "video-1", []Input{{Filename: "a.webm", StartTime: 0, EndTime: 100}})
		require.NoError(t, err)

		result, err := service.Add(ctx, "video-1", []Input{{Filename: "b.webm", StartTime: 110, EndTime: 200}})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Segments[0].Index)
		require.Len(t, result.Discontinuities, 1)
		assert.Equal(t, 10.0, result.Discontinuities[0].Gap)
		assert.Equal(t, 200.0, result.TotalDuration)

		list, err := service.ListByVideo(ctx, "video-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "a.webm", list[0].Filename)
		assert.Equal(t, "b.webm", list[1].Filename)
	})

	t.Run("validation", func(t *testing.T) {
		service, _, _ := setupService(t)

		tests := []struct {
			name  string
			input Input
			code  apperrors.ErrorCode
		}{
			{"missing filename", Input{StartTime: 0, EndTime: 10}, apperrors.ErrCodeMissingField},
			{"path in filename", Input{Filename: "../x.webm", EndTime: 10}, apperrors.ErrCodeValidation},
			{"end before start", Input{Filename: "x.webm", StartTime: 10, EndTime: 5}, apperrors.ErrCodeValidation},
			{"zero length", Input{Filename: "x.webm", StartTime: 10, EndTime: 10}, apperrors.ErrCodeValidation},
			{"negative start", Input{Filename: "x.webm", StartTime: -1, EndTime: 10}, apperrors.ErrCodeValidation},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Add(ctx, "video-1", []Input{tt.input})
				assert.Equal(t, tt.code, apperrors.GetCode(err))
			})
		}

		_, err := service.Add(ctx, "video-1", nil)
		assert.Equal(t, apperrors.ErrCodeMissingField, apperrors.GetCode(err))
	})

	t.Run("unknown video", func(t *testing.T) {
		service, _, _ := setupService(t)
		_, err := service.Add(ctx, "missing", []Input{{Filename: "a.webm", EndTime: 1}})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestServiceImpl_ImportPlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("media playlist", func(t *testing.T) {
		service, catalog, _ := setupService(t)
		catalog.On("SetTimeline", ctx, "video-1", 720.5).Return(nil)

		result, err := service.ImportPlaylist(ctx, "video-1", strings.NewReader(mediaPlaylist))
		require.NoError(t, err)
		require.Len(t, result.Segments, 3)
		assert.Empty(t, result.Discontinuities)

		assert.Equal(t, "chunk_001.webm", result.Segments[1].Filename)
		assert.Equal(t, 300.0, result.Segments[1].StartTime)
		assert.Equal(t, 600.0, result.Segments[2].StartTime)
		assert.InDelta(t, 720.5, result.Segments[2].EndTime, 1e-9)
		catalog.AssertExpectations(t)
	})

	t.Run("replaces previous segments", func(t *testing.T) {
		service, catalog, db := setupService(t)
		catalog.On("SetTimeline", ctx, "video-1", mock.Anything).Return(nil)

		_, err := service.Add(ctx, "video-1", []Input{{Filename: "old.webm", EndTime: 50}})
		require.NoError(t, err)

		_, err = service.ImportPlaylist(ctx, "video-1", strings.NewReader(mediaPlaylist))
		require.NoError(t, err)

		list, err := service.ListByVideo(ctx, "video-1")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "chunk_000.webm", list[0].Filename)

		var total int64
		require.NoError(t, db.Model(&models.Segment{}).Count(&total).Error)
		assert.Equal(t, int64(4), total, "replaced rows are deactivated, not deleted")
	})

	t.Run("master playlist rejected", func(t *testing.T) {
		service, _, _ := setupService(t)
		_, err := service.ImportPlaylist(ctx, "video-1", strings.NewReader(masterPlaylist))
		assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetCode(err))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		service, _, _ := setupService(t)
		_, err := service.ImportPlaylist(ctx, "video-1", strings.NewReader("not a playlist"))
		assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetCode(err))
	})
}

func TestServiceImpl_Playlist(t *testing.T) {
	ctx := context.Background()

	t.Run("renders VOD playlist", func(t *testing.T) {
		service, catalog, _ := setupService(t)
		catalog.On("SetTimeline", ctx, "video-1", mock.Anything).Return(nil)

		_, err := service.Add(ctx, "video-1", []Input{
			{Filename: "chunk_000.webm", StartTime: 0, EndTime: 300},
			{Filename: "chunk_001.webm", StartTime: 300, EndTime: 600},
		})
		require.NoError(t, err)

		out, err := service.Playlist(ctx, "video-1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "#EXTM3U"))
		assert.Contains(t, out, "#EXT-X-PLAYLIST-TYPE:VOD")
		assert.Contains(t, out, "/api/v1/media/segments/chunk_000.webm")
		assert.Contains(t, out, "/api/v1/media/segments/chunk_001.webm")
		assert.Equal(t, 1, strings.Count(out, "#EXT-X-DISCONTINUITY\n"))
		assert.Contains(t, out, "#EXT-X-ENDLIST")

		// discontinuity precedes the second segment
		assert.Less(t, strings.Index(out, "chunk_000.webm"), strings.Index(out, "#EXT-X-DISCONTINUITY\n"))
	})

	t.Run("no segments", func(t *testing.T) {
		service, _, _ := setupService(t)
		_, err := service.Playlist(ctx, "video-1")
		assert.Equal(t, apperrors.ErrCodeNoSegment, apperrors.GetCode(err))
	})
}

func TestServiceImpl_SourceRef(t *testing.T) {
	service, _, _ := setupService(t)
	assert.Equal(t, "/api/v1/media/segments/chunk_007.webm", service.SourceRef(models.Segment{Filename: "chunk_007.webm"}))
}
