package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database connectivity and the number of live playback sessions
// @Tags         health
// @Produce      json
// @Success      200 {object} object{status=string,timestamp=string,database=object,sessions=int}
// @Failure      503 {object} object{status=string,timestamp=string,database=object}
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		// Add database status
		dbStatus := getDatabaseStatus(deps)
		response["database"] = dbStatus
		if dbStatus["status"] == "unhealthy" {
			response["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}

		if deps != nil && deps.Sessions != nil {
			response["sessions"] = deps.Sessions.Count()
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured", "connected": false}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "connected": false, "error": err.Error()}
	}

	return gin.H{"status": "healthy", "connected": true, "dialect": deps.DB.Dialect}
}
