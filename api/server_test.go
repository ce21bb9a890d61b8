package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/killallgit/annotator-api/api/apitest"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *types.Dependencies) {
	cfg := apitest.Config()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 18080
	cfg.Security.EnableCORS = true
	cfg.Security.CORSOrigins = []string{"*"}
	cfg.Security.EnableGzip = true
	cfg.RateLimiting.Enabled = true
	cfg.RateLimiting.Endpoints = map[string]int{ScopeDefault: 100, ScopeSessions: 100}
	cfg.GraphQL.Path = "/graphql"

	deps := apitest.NewDependencies(t, cfg)
	server := NewServer(cfg, deps)
	server.Initialize()
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })
	return server, deps
}

func TestServer_Routes(t *testing.T) {
	server, deps := newTestServer(t)
	video := apitest.SeedSegmentedVideo(t, deps)
	assert.Equal(t, "127.0.0.1:18080", server.Addr())

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/docs", http.StatusMovedPermanently},
		{http.MethodGet, "/api/v1/videos", http.StatusOK},
		{http.MethodGet, "/api/v1/videos/" + video.ID, http.StatusOK},
		{http.MethodGet, "/api/v1/videos/" + video.ID + "/annotations", http.StatusOK},
		{http.MethodGet, "/api/v1/videos/" + video.ID + "/segments", http.StatusOK},
		{http.MethodGet, "/api/v1/videos/" + video.ID + "/playlist.m3u8", http.StatusOK},
		{http.MethodGet, "/api/v1/videos/" + video.ID + "/locate?t=450", http.StatusOK},
		{http.MethodGet, "/api/v1/annotations", http.StatusOK},
		{http.MethodGet, "/api/v1/sessions/missing", http.StatusNotFound},
		{http.MethodGet, "/graphql", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := apitest.Do(t, server.Engine(), tt.method, tt.path, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestServer_GraphQL(t *testing.T) {
	server, deps := newTestServer(t)
	apitest.SeedVideo(t, deps, "intro.mp4", 60)

	w := apitest.Do(t, server.Engine(), http.MethodPost, "/graphql", map[string]interface{}{
		"query": "{ videos { id filename } }",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "intro.mp4")
}

func TestServer_Gzip(t *testing.T) {
	server, deps := newTestServer(t)
	apitest.SeedVideo(t, deps, "intro.mp4", 60)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestServer_SessionFlow(t *testing.T) {
	server, deps := newTestServer(t)
	video := apitest.SeedSegmentedVideo(t, deps)

	w := apitest.Do(t, server.Engine(), http.MethodPost, "/api/v1/sessions", map[string]interface{}{"video_id": video.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created types.SessionResponse
	apitest.Decode(t, w, &created)

	w = apitest.Do(t, server.Engine(), http.MethodPost, "/api/v1/sessions/"+created.Session.ID+"/seek", map[string]interface{}{"time": 650})
	require.Equal(t, http.StatusOK, w.Code)

	var seek types.SessionResponse
	apitest.Decode(t, w, &seek)
	require.NotNil(t, seek.Plan)
	assert.True(t, strings.HasSuffix(seek.Plan.Segment.URL, "/chunk_002.webm"))
	assert.Equal(t, 1, deps.Sessions.Count())
}

func TestServer_ShutdownIsIdempotent(t *testing.T) {
	server, _ := newTestServer(t)
	assert.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, server.Shutdown(context.Background()))
}
