package playback

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers stateless timeline queries under a videos group
func RegisterRoutes(videos *gin.RouterGroup, deps *types.Dependencies) {
	videos.GET("/:id/locate", Locate(deps))
	videos.GET("/:id/active", ActiveAnnotations(deps))
	videos.GET("/:id/click", Click(deps))
}
