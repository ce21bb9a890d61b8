package segments

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	segmentService "github.com/killallgit/annotator-api/internal/services/segments"
)

// HLSContentType is the media type of m3u8 playlists
const HLSContentType = "application/vnd.apple.mpegurl"

// ListSegments lists the segments of a video
// @Summary      List segments
// @Description  List the physical segments of a video ordered by index, with playback URLs
// @Tags         segments
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200 {object} types.SegmentsResponse
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/segments [get]
func ListSegments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.SegmentService.ListByVideo(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		total := 0.0
		for _, seg := range list {
			if seg.EndTime > total {
				total = seg.EndTime
			}
		}
		c.JSON(http.StatusOK, types.SegmentsResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			Segments:      types.FromModelSegments(list, deps.SegmentService.SourceRef),
			Count:         len(list),
			TotalDuration: total,
		})
	}
}

// AddSegments appends segments to a video
// @Summary      Add segments
// @Description  Append segments after the existing ones. Gaps and overlaps are reported, not rejected.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        segments body types.AddSegmentsRequest true "Segments to add"
// @Success      201 {object} types.SegmentWriteResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/segments [post]
func AddSegments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AddSegmentsRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		inputs := make([]segmentService.Input, 0, len(req.Segments))
		for _, s := range req.Segments {
			inputs = append(inputs, segmentService.Input{
				Filename:  s.Filename,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Duration:  s.Duration,
				Size:      s.Size,
				FPS:       s.FPS,
				Width:     s.Width,
				Height:    s.Height,
			})
		}

		result, err := deps.SegmentService.Add(c.Request.Context(), c.Param("id"), inputs)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, writeResponse(deps, result))
	}
}

// ImportPlaylist replaces a video's segments from an HLS media playlist
// @Summary      Import HLS playlist
// @Description  Replace the segments of a video with the entries of an m3u8 media playlist sent as the request body
// @Tags         segments
// @Accept       plain
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        playlist body string true "m3u8 media playlist"
// @Success      201 {object} types.SegmentWriteResponse
// @Failure      400 {object} types.ErrorResponse "Invalid playlist"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Router       /api/v1/videos/{id}/segments/import [post]
func ImportPlaylist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := deps.SegmentService.ImportPlaylist(c.Request.Context(), c.Param("id"), c.Request.Body)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, writeResponse(deps, result))
	}
}

// GetPlaylist renders the segments as an HLS VOD playlist
// @Summary      HLS playlist
// @Description  The video's segments as an m3u8 VOD media playlist with a discontinuity before every segment after the first
// @Tags         segments
// @Produce      plain
// @Param        id path string true "Video ID"
// @Success      200 {string} string "m3u8 playlist"
// @Failure      404 {object} types.ErrorResponse "Video or segments not found"
// @Router       /api/v1/videos/{id}/playlist.m3u8 [get]
func GetPlaylist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := deps.SegmentService.Playlist(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, HLSContentType, []byte(playlist))
	}
}

func writeResponse(deps *types.Dependencies, result *segmentService.Result) types.SegmentWriteResponse {
	return types.SegmentWriteResponse{
		BaseResponse:    types.BaseResponse{Status: types.StatusOK},
		Segments:        types.FromModelSegments(result.Segments, deps.SegmentService.SourceRef),
		Discontinuities: result.Discontinuities,
		TotalDuration:   result.TotalDuration,
	}
}
