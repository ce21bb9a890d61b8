package playback

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/playback"
)

// Locate resolves a global time to a segment and local offset
// @Summary      Locate time
// @Description  Find the segment covering global time t and the offset inside it. Out of range times clamp; times in a coverage gap resolve to the nearest segment.
// @Tags         playback
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        t query number true "Global time in seconds"
// @Success      200 {object} types.LocateResponse
// @Failure      400 {object} types.ErrorResponse "Missing or invalid t"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/locate [get]
func Locate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := types.ParseFloatQuery(c, "t")
		if !ok {
			return
		}

		timeline, err := deps.TimelineService.Build(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		loc, err := playback.Resolve(t, timeline.Segments, deps.Log())
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.LocateResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Time:         t,
			Location:     types.FromLocation(loc),
		})
	}
}

// ActiveAnnotations lists the annotations covering a time
// @Summary      Active annotations
// @Description  Every annotation whose range contains t, bounds inclusive, in start time order
// @Tags         playback
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        t query number true "Global time in seconds"
// @Success      200 {object} types.ActiveAnnotationsResponse
// @Failure      400 {object} types.ErrorResponse "Missing or invalid t"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/active [get]
func ActiveAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := types.ParseFloatQuery(c, "t")
		if !ok {
			return
		}

		timeline, err := deps.TimelineService.Build(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ActiveAnnotationsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Time:         t,
			Annotations:  types.FromPlaybackAnnotations(playback.ActiveAnnotations(t, timeline.Annotations)),
		})
	}
}

// Click maps a timeline click to a seek time and an annotation
// @Summary      Timeline click
// @Description  The seek time is fraction of the total duration. The annotation is picked by ordinal slot: the bar is split into one equal slot per annotation.
// @Tags         playback
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        fraction query number true "Click position between 0 and 1"
// @Success      200 {object} types.ClickResponse
// @Failure      400 {object} types.ErrorResponse "Missing or invalid fraction"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/click [get]
func Click(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fraction, ok := types.ParseFloatQuery(c, "fraction")
		if !ok {
			return
		}

		timeline, err := deps.TimelineService.Build(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		response := types.ClickResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Fraction:     fraction,
			SeekTime:     playback.SeekTimeForFraction(fraction, timeline.TotalDuration()),
		}
		if annotation, _, found := playback.AnnotationForClickFraction(fraction, timeline.Annotations); found {
			a := types.FromPlaybackAnnotation(annotation)
			response.Annotation = &a
		}
		c.JSON(http.StatusOK, response)
	}
}
