// Package apitest builds handler dependencies on an in-memory database for
// handler tests.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/services/segments"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/killallgit/annotator-api/pkg/config"
	"github.com/stretchr/testify/require"
)

// Config returns the settings handler tests run with
func Config() *config.Config {
	return &config.Config{
		Media: config.MediaConfig{
			AllowedTypes:      []string{"video/mp4", "video/webm"},
			AllowedExtensions: []string{".mp4", ".webm"},
			URLPrefix:         "/api/v1/media",
		},
		Annotations: config.AnnotationsConfig{DefaultSpan: 30},
		Playback: config.PlaybackConfig{
			SessionTTL:             time.Hour,
			SessionCleanupInterval: time.Hour,
			MaxSessions:            10,
		},
	}
}

// NewDependencies wires real services over a fresh in-memory database
func NewDependencies(t testing.TB, cfg *config.Config) *types.Dependencies {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg == nil {
		cfg = Config()
	}

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	deps, err := types.NewDependencies(db, cfg, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		deps.Close()
		_ = db.Close()
	})
	return deps
}

// SeedVideo stores a plain video
func SeedVideo(t testing.TB, deps *types.Dependencies, filename string, duration float64) *models.Video {
	t.Helper()
	video, err := deps.VideoService.CreateVideo(context.Background(), videos.CreateInput{
		Title:        "Video " + filename,
		Filename:     filename,
		OriginalName: filename,
		MimeType:     "video/mp4",
		Size:         1024,
		Duration:     duration,
	})
	require.NoError(t, err)
	return video
}

// SeedSegmentedVideo stores a video split into three 300 second segments
// with annotations A [0,120], B [100,450] and C [800,900]
func SeedSegmentedVideo(t testing.TB, deps *types.Dependencies) *models.Video {
	t.Helper()
	ctx := context.Background()

	video := SeedVideo(t, deps, "lecture.webm", 900)
	_, err := deps.SegmentService.Add(ctx, video.ID, []segments.Input{
		{Filename: "chunk_000.webm", StartTime: 0, EndTime: 300},
		{Filename: "chunk_001.webm", StartTime: 300, EndTime: 600},
		{Filename: "chunk_002.webm", StartTime: 600, EndTime: 900},
	})
	require.NoError(t, err)

	for _, a := range []models.Annotation{
		{Title: "A", StartTime: 0, EndTime: 120},
		{Title: "B", StartTime: 100, EndTime: 450},
		{Title: "C", StartTime: 800, EndTime: 900},
	} {
		a.VideoID = video.ID
		require.NoError(t, deps.AnnotationService.CreateAnnotation(ctx, &a))
	}
	return video
}

// Do sends a request with an optional JSON body and returns the recorder
func Do(t testing.TB, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body into target
func Decode(t testing.TB, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}
