package annotations

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers annotation-related routes
func RegisterRoutes(videos *gin.RouterGroup, annotations *gin.RouterGroup, deps *types.Dependencies) {
	// Video annotation endpoints
	videos.POST("/:id/annotations", CreateAnnotation(deps))
	videos.GET("/:id/annotations", GetAnnotations(deps))

	// Direct annotation endpoints (not nested under videos)
	annotations.GET("", ListAnnotations(deps))
	annotations.GET("/:id", GetAnnotation(deps))
	annotations.PUT("/:id", UpdateAnnotation(deps))
	annotations.DELETE("/:id", DeleteAnnotation(deps))
}
