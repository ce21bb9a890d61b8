package types

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/internal/playback"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseFloatQuery extracts and parses a query parameter as float64
// Returns the parsed value and sends error response if parsing fails
func ParseFloatQuery(c *gin.Context, name string) (float64, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		SendBadRequest(c, "Missing query parameter "+name)
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		SendBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError maps an error onto a response. AppErrors keep their status code
// and details; anything else is a 500 with a generic message.
func SendError(c *gin.Context, err error) {
	err = classifyPlaybackError(err)
	code := apperrors.GetCode(err)
	status := apperrors.GetHTTPCode(err)

	response := ErrorResponse{
		Status: StatusError,
		Error:  string(code),
	}

	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		response.Message = appErr.Message
		if len(appErr.Details) > 0 {
			response.Details = appErr.Details
		}
	} else {
		response.Message = "Internal server error"
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response)
}

// classifyPlaybackError turns player sentinel errors into AppErrors
func classifyPlaybackError(err error) error {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	switch {
	case stderrors.Is(err, playback.ErrNoSegmentFound):
		return apperrors.Wrap(err, apperrors.ErrCodeNoSegment, err.Error())
	case stderrors.Is(err, playback.ErrUnknownAnnotation):
		return apperrors.Wrap(err, apperrors.ErrCodeNotFound, err.Error())
	case stderrors.Is(err, playback.ErrInvalidRate):
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	case stderrors.Is(err, playback.ErrNotLoaded),
		stderrors.Is(err, playback.ErrNoPendingSeek),
		stderrors.Is(err, playback.ErrRetryLimit):
		return apperrors.Wrap(err, apperrors.ErrCodeInvalidState, err.Error())
	}
	return err
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeInvalidInput),
	})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeNotFound),
	})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeInternal),
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
