package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, overridden at link time with -ldflags "-X ..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Get handles version requests
// @Summary      Service information
// @Description  Name, version and build metadata of the running API
// @Tags         health
// @Produce      json
// @Success      200 {object} object{name=string,version=string,commit=string,build_date=string,description=string,status=string}
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Video Annotator API",
			"version":     Version,
			"commit":      Commit,
			"build_date":  BuildDate,
			"description": "API for annotating segmented videos and resolving playback positions",
			"status":      "running",
		})
	}
}
