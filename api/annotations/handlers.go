package annotations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/models"
	annotationService "github.com/killallgit/annotator-api/internal/services/annotations"
)

// CreateAnnotation creates a new annotation for a video
// @Summary      Create annotation for video
// @Description  Create a labeled time range on a video. Without end_time the annotation spans the default length from start_time.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        annotation body types.CreateAnnotationRequest true "Annotation data"
// @Success      201 {object} models.Annotation "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/{id}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		end := req.StartTime + deps.AnnotationService.Defaults().Span
		if req.EndTime != nil {
			end = *req.EndTime
		}

		annotation := models.Annotation{
			VideoID:     c.Param("id"),
			Title:       req.Title,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     end,
			Type:        req.Type,
			Color:       req.Color,
		}
		if err := deps.AnnotationService.CreateAnnotation(c.Request.Context(), &annotation); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, annotation)
	}
}

// GetAnnotations retrieves all annotations for a video
// @Summary      Get annotations for video
// @Description  Retrieve the active annotations of a video, ordered by start time
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200 {object} types.AnnotationsResponse "List of annotations"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/{id}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.AnnotationService.GetAnnotationsByVideoID(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, annotationsResponse(list))
	}
}

// ListAnnotations retrieves every active annotation
// @Summary      List annotations
// @Description  Retrieve every active annotation across all videos
// @Tags         annotations
// @Produce      json
// @Success      200 {object} types.AnnotationsResponse "List of annotations"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations [get]
func ListAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.AnnotationService.ListAnnotations(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, annotationsResponse(list))
	}
}

// GetAnnotation retrieves one annotation
// @Summary      Get annotation
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Success      200 {object} models.Annotation
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Router       /api/v1/annotations/{id} [get]
func GetAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotation, err := deps.AnnotationService.GetAnnotationByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, annotation)
	}
}

// UpdateAnnotation updates an existing annotation
// @Summary      Update annotation
// @Description  Partially update an annotation. Omitted fields keep their values.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Param        annotation body types.UpdateAnnotationRequest true "Fields to change"
// @Success      200 {object} models.Annotation "Updated annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations/{id} [put]
func UpdateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		annotation, err := deps.AnnotationService.UpdateAnnotation(c.Request.Context(), c.Param("id"), annotationService.UpdateInput{
			Title:       req.Title,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Type:        req.Type,
			Color:       req.Color,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, annotation)
	}
}

// DeleteAnnotation removes an annotation
// @Summary      Delete annotation
// @Description  Deactivate an annotation. It disappears from every read but the row is kept.
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Success      200 {object} types.BaseResponse "Annotation deleted successfully"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations/{id} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.AnnotationService.RemoveAnnotation(c.Request.Context(), c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Annotation deleted successfully"})
	}
}

func annotationsResponse(list []models.Annotation) types.AnnotationsResponse {
	if list == nil {
		list = []models.Annotation{}
	}
	return types.AnnotationsResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Annotations:  list,
		Count:        len(list),
	}
}
