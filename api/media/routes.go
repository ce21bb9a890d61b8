package media

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers file serving routes for raw videos and segments
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	videos := ServeFile(deps, func() string { return deps.Config.Storage.VideosDir })
	router.GET("/videos/:filename", videos)
	router.HEAD("/videos/:filename", videos)

	segments := ServeFile(deps, func() string { return deps.Config.Storage.SegmentsDir })
	router.GET("/segments/:filename", segments)
	router.HEAD("/segments/:filename", segments)
}
