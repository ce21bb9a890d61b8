package videos

import (
	"context"
	"errors"
	"testing"

	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockRepository) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockRepository) GetVideoByFilename(ctx context.Context, filename string) (*models.Video, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockRepository) ListVideos(ctx context.Context, productionOnly bool) ([]models.Video, error) {
	args := m.Called(ctx, productionOnly)
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) SetTotalDuration(ctx context.Context, id string, total float64) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *MockRepository) SoftDeleteVideo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var allowed = []string{"video/mp4", "video/webm"}

func TestServiceImpl_GetVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("counts a view", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, allowed, nil)

		mockRepo.On("GetVideoByID", ctx, "v1").Return(&models.Video{ID: "v1", Views: 4}, nil)
		mockRepo.On("IncrementViews", ctx, "v1").Return(nil)

		video, err := service.GetVideo(ctx, "v1")
		require.NoError(t, err)
		assert.Equal(t, 5, video.Views)
		mockRepo.AssertExpectations(t)
	})

	t.Run("view counter failure does not fail the read", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, allowed, nil)

		mockRepo.On("GetVideoByID", ctx, "v1").Return(&models.Video{ID: "v1", Views: 4}, nil)
		mockRepo.On("IncrementViews", ctx, "v1").Return(errors.New("locked"))

		video, err := service.GetVideo(ctx, "v1")
		require.NoError(t, err)
		assert.Equal(t, 4, video.Views)
	})

	t.Run("lookup has no side effects", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, allowed, nil)

		mockRepo.On("GetVideoByID", ctx, "v1").Return(&models.Video{ID: "v1"}, nil)

		_, err := service.LookupVideo(ctx, "v1")
		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})
}

func TestServiceImpl_CreateVideo(t *testing.T) {
	ctx := context.Background()

	valid := CreateInput{
		Title:        "Demo",
		Filename:     "demo.mp4",
		OriginalName: "My Demo.mp4",
		MimeType:     "video/mp4",
		Size:         1024,
		Duration:     12.5,
	}

	t.Run("valid input", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, allowed, nil)

		mockRepo.On("CreateVideo", ctx, mock.AnythingOfType("*models.Video")).Return(nil)

		video, err := service.CreateVideo(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "Demo", video.Title)
		assert.True(t, video.IsActive)
		mockRepo.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		code   apperrors.ErrorCode
	}{
		{"missing title", func(in *CreateInput) { in.Title = " " }, apperrors.ErrCodeMissingField},
		{"missing filename", func(in *CreateInput) { in.Filename = "" }, apperrors.ErrCodeMissingField},
		{"missing original name", func(in *CreateInput) { in.OriginalName = "" }, apperrors.ErrCodeMissingField},
		{"missing mime type", func(in *CreateInput) { in.MimeType = "" }, apperrors.ErrCodeMissingField},
		{"path in filename", func(in *CreateInput) { in.Filename = "../etc/passwd" }, apperrors.ErrCodeValidation},
		{"mime type not allowed", func(in *CreateInput) { in.MimeType = "audio/mpeg" }, apperrors.ErrCodeValidation},
		{"negative size", func(in *CreateInput) { in.Size = -1 }, apperrors.ErrCodeValidation},
		{"negative duration", func(in *CreateInput) { in.Duration = -1 }, apperrors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, allowed, nil)

			input := valid
			tt.mutate(&input)

			_, err := service.CreateVideo(ctx, input)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
			mockRepo.AssertNotCalled(t, "CreateVideo", mock.Anything, mock.Anything)
		})
	}

	t.Run("empty allow-list accepts any video type", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, nil, nil)
		mockRepo.On("CreateVideo", ctx, mock.Anything).Return(nil)

		input := valid
		input.MimeType = "video/x-matroska"
		_, err := service.CreateVideo(ctx, input)
		assert.NoError(t, err)
	})
}

func TestServiceImpl_MimeTypeForFile(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, allowed, nil)

	mockRepo.On("GetVideoByFilename", ctx, "known.bin").Return(&models.Video{MimeType: "video/webm"}, nil)
	mockRepo.On("GetVideoByFilename", ctx, mock.Anything).Return(nil, apperrors.NotFound("video", "x"))

	assert.Equal(t, "video/webm", service.MimeTypeForFile(ctx, "known.bin"))
	assert.Equal(t, "video/webm", service.MimeTypeForFile(ctx, "chunk_001.webm"))
	assert.Equal(t, "video/mp2t", service.MimeTypeForFile(ctx, "seg.ts"))
	assert.Equal(t, DefaultMimeType, service.MimeTypeForFile(ctx, "unknown.xyz"))
}

func TestServiceImpl_SetTimeline(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, allowed, nil)

	mockRepo.On("SetTotalDuration", ctx, "v1", 900.0).Return(nil)

	require.NoError(t, service.SetTimeline(ctx, "v1", 900))
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(service.SetTimeline(ctx, "v1", -1)))
	mockRepo.AssertExpectations(t)
}

func TestServiceImpl_RemoveVideo(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, allowed, nil)

	mockRepo.On("SoftDeleteVideo", ctx, "v1").Return(nil)
	require.NoError(t, service.RemoveVideo(ctx, "v1"))
	mockRepo.AssertExpectations(t)
}
