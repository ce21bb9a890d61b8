package types

import "github.com/killallgit/annotator-api/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// VideosResponse for video lists
type VideosResponse struct {
	BaseResponse
	Videos []models.Video `json:"videos"`
	Count  int            `json:"count"`
}

// AnnotationsResponse for annotation lists
type AnnotationsResponse struct {
	BaseResponse
	Annotations []models.Annotation `json:"annotations"`
	Count       int                 `json:"count"`
}

// SegmentsResponse for segment lists
type SegmentsResponse struct {
	BaseResponse
	Segments      []Segment `json:"segments"`
	Count         int       `json:"count"`
	TotalDuration float64   `json:"total_duration"`
}

// SegmentWriteResponse reports the outcome of adding or importing segments
type SegmentWriteResponse struct {
	BaseResponse
	Segments        []Segment       `json:"segments"`
	Discontinuities []Discontinuity `json:"discontinuities"`
	TotalDuration   float64         `json:"total_duration"`
}

// LocateResponse answers where a global time lives physically
type LocateResponse struct {
	BaseResponse
	Time     float64  `json:"time"`
	Location Location `json:"location"`
}

// ActiveAnnotationsResponse lists annotations covering a time
type ActiveAnnotationsResponse struct {
	BaseResponse
	Time        float64      `json:"time"`
	Annotations []Annotation `json:"annotations"`
}

// ClickResponse is the outcome of a timeline click
type ClickResponse struct {
	BaseResponse
	Fraction   float64     `json:"fraction"`
	SeekTime   float64     `json:"seek_time"`
	Annotation *Annotation `json:"annotation"`
}

// SessionResponse describes a playback session and the player state
type SessionResponse struct {
	BaseResponse
	Session Session   `json:"session"`
	Plan    *SeekPlan `json:"plan,omitempty"` // Set when the call issued a seek
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
