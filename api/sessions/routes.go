package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers playback session routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", CreateSession(deps))
	router.GET("/:id", GetSession(deps))
	router.DELETE("/:id", DeleteSession(deps))

	router.POST("/:id/seek", Seek(deps))
	router.POST("/:id/click", ClickTimeline(deps))
	router.POST("/:id/play", Play(deps))
	router.POST("/:id/pause", Pause(deps))
	router.POST("/:id/rate", SetRate(deps))
	router.POST("/:id/select", Select(deps))
	router.DELETE("/:id/selection", ClearSelection(deps))
	router.POST("/:id/events", Signal(deps))
	router.POST("/:id/retry", Retry(deps))
	router.POST("/:id/annotations/refresh", RefreshAnnotations(deps))
}
