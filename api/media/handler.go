package media

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// ServeFile serves a media file from the directory returned by dir with
// HTTP range support
// @Summary      Serve media file
// @Description  Serve a raw video or segment file. Range requests are answered with 206 so players can seek without downloading the whole file.
// @Tags         media
// @Produce      octet-stream
// @Param        filename path string true "File name" example("chunk_000.webm")
// @Param        Range header string false "HTTP Range header for partial content requests" example("bytes=0-1023")
// @Success      200 "Full content"
// @Success      206 "Partial content (range request)"
// @Failure      400 {object} types.ErrorResponse "Invalid file name or extension"
// @Failure      404 {object} types.ErrorResponse "File not found"
// @Router       /api/v1/media/videos/{filename} [get]
// @Router       /api/v1/media/segments/{filename} [get]
func ServeFile(deps *types.Dependencies, dir func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := deps.Log().Named("media")
		filename := c.Param("filename")

		if !validFilename(filename) {
			types.SendBadRequest(c, "Invalid file name")
			return
		}
		if !allowedExtension(filename, deps.Config.Media.AllowedExtensions) {
			types.SendBadRequest(c, "File type not allowed")
			return
		}

		root := dir()
		if root == "" {
			types.SendNotFound(c, "Media storage not configured")
			return
		}

		path := filepath.Join(root, filename)
		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				types.SendNotFound(c, "File not found")
				return
			}
			logger.Error("failed to open media file", "path", path, "error", err)
			types.SendInternalError(c, "Failed to open file")
			return
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil || info.IsDir() {
			types.SendNotFound(c, "File not found")
			return
		}

		c.Header("Content-Type", deps.VideoService.MimeTypeForFile(c.Request.Context(), filename))
		c.Header("Accept-Ranges", "bytes")
		c.Header("Cache-Control", "public, max-age=3600")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Range, Accept-Ranges")

		if rangeHeader := c.GetHeader("Range"); rangeHeader != "" {
			logger.Trace("range request", "file", filename, "range", rangeHeader)
		}
		http.ServeContent(c.Writer, c.Request, filename, info.ModTime(), file)
	}
}

// validFilename rejects anything that could escape the media directory
func validFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}

func allowedExtension(name string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range allowed {
		if strings.ToLower(a) == ext {
			return true
		}
	}
	return false
}
