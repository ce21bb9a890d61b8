package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/annotator-api/api/annotations"
	"github.com/killallgit/annotator-api/api/health"
	"github.com/killallgit/annotator-api/api/media"
	"github.com/killallgit/annotator-api/api/playback"
	"github.com/killallgit/annotator-api/api/segments"
	"github.com/killallgit/annotator-api/api/sessions"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/api/version"
	"github.com/killallgit/annotator-api/api/videos"
	_ "github.com/killallgit/annotator-api/docs/swagger"
	"github.com/killallgit/annotator-api/internal/graphql"
)

// Rate limit scopes, keys of rate_limiting.endpoints
const (
	ScopeDefault  = "default"
	ScopeSessions = "sessions"
	ScopeMedia    = "media"
	ScopeGraphQL  = "graphql"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.Group("/docs").GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	limit := func(scope string) gin.HandlerFunc {
		cfg := deps.Config.RateLimiting
		if !cfg.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		rps := cfg.Endpoints[scope]
		if rps <= 0 {
			rps = cfg.Endpoints[ScopeDefault]
		}
		if rps <= 0 {
			rps = 10
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, scope, rps, rps*2)
	}

	v1 := engine.Group("/api/v1")

	// Catalog and timeline queries share the default bucket
	videoGroup := v1.Group("/videos", limit(ScopeDefault))
	videos.RegisterRoutes(videoGroup, deps)
	segments.RegisterRoutes(videoGroup, deps)
	playback.RegisterRoutes(videoGroup, deps)

	annotationGroup := v1.Group("/annotations", limit(ScopeDefault))
	annotations.RegisterRoutes(videoGroup, annotationGroup, deps)

	// Players report events several times a second
	sessions.RegisterRoutes(v1.Group("/sessions", limit(ScopeSessions)), deps)

	// Higher limits for media to allow seeking/scrubbing
	media.RegisterRoutes(v1.Group("/media", limit(ScopeMedia)), deps)

	if deps.GraphQLSchema != nil {
		path := deps.Config.GraphQL.Path
		if path == "" {
			path = "/graphql"
		}
		handler := graphql.Handler(deps.GraphQLSchema)
		engine.POST(path, limit(ScopeGraphQL), handler)
		engine.GET(path, handler)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
