package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers video catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListVideos(deps))
	router.POST("", CreateVideo(deps))
	router.GET("/production", ListProductionVideos(deps))
	router.GET("/:id", GetVideo(deps))
	router.DELETE("/:id", DeleteVideo(deps))
}
