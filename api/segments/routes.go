package segments

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers segment catalog routes under a videos group
func RegisterRoutes(videos *gin.RouterGroup, deps *types.Dependencies) {
	videos.GET("/:id/segments", ListSegments(deps))
	videos.POST("/:id/segments", AddSegments(deps))
	videos.POST("/:id/segments/import", ImportPlaylist(deps))
	videos.GET("/:id/playlist.m3u8", GetPlaylist(deps))
}
