package videos

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/models"
	videoService "github.com/killallgit/annotator-api/internal/services/videos"
)

// ListVideos lists active videos
// @Summary      List videos
// @Description  List every active video, newest first
// @Tags         videos
// @Produce      json
// @Success      200 {object} types.VideosResponse
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos [get]
func ListVideos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.VideoService.ListVideos(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, videosResponse(list))
	}
}

// ListProductionVideos lists segmented videos
// @Summary      List production videos
// @Description  List active videos that are played from segments
// @Tags         videos
// @Produce      json
// @Success      200 {object} types.VideosResponse
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/production [get]
func ListProductionVideos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.VideoService.ListProductionVideos(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, videosResponse(list))
	}
}

// GetVideo returns one video with its annotations and counts a view
// @Summary      Get video
// @Description  Get a video with its active annotations. Each call counts as a view.
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200 {object} models.Video
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id} [get]
func GetVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, err := deps.VideoService.GetVideo(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, video)
	}
}

// CreateVideo registers a stored video file
// @Summary      Create video
// @Description  Register metadata for a video file that already exists in storage
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        video body types.CreateVideoRequest true "Video metadata"
// @Success      201 {object} models.Video
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/videos [post]
func CreateVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateVideoRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		video, err := deps.VideoService.CreateVideo(c.Request.Context(), videoService.CreateInput{
			Title:        req.Title,
			Description:  req.Description,
			Filename:     req.Filename,
			OriginalName: req.OriginalName,
			MimeType:     req.MimeType,
			Size:         req.Size,
			Duration:     req.Duration,
			IsProduction: req.IsProduction,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, video)
	}
}

// DeleteVideo soft-deletes a video
// @Summary      Delete video
// @Description  Deactivate a video. Stored rows are kept.
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200 {object} types.BaseResponse
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id} [delete]
func DeleteVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.VideoService.RemoveVideo(c.Request.Context(), c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Video deleted"})
	}
}

func videosResponse(list []models.Video) types.VideosResponse {
	if list == nil {
		list = []models.Video{}
	}
	return types.VideosResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Videos:       list,
		Count:        len(list),
	}
}
