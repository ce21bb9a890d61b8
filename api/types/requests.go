package types

// CreateVideoRequest registers an already stored video file
type CreateVideoRequest struct {
	Title        string  `json:"title" binding:"required" example:"Intro to Go"`
	Description  string  `json:"description,omitempty"`
	Filename     string  `json:"filename" binding:"required" example:"intro.mp4"`
	OriginalName string  `json:"original_name" binding:"required" example:"Intro to Go.mp4"`
	MimeType     string  `json:"mime_type" binding:"required" example:"video/mp4"`
	Size         int64   `json:"size" example:"1048576"`
	Duration     float64 `json:"duration" example:"900"` // Seconds
	IsProduction bool    `json:"is_production,omitempty"`
}

// CreateAnnotationRequest adds an annotation to a video. Without end_time the
// annotation spans the configured default length from start_time.
type CreateAnnotationRequest struct {
	Title       string   `json:"title" binding:"required" example:"Introduction"`
	Description string   `json:"description,omitempty"`
	StartTime   float64  `json:"start_time" example:"0"`
	EndTime     *float64 `json:"end_time,omitempty" example:"30"`
	Type        string   `json:"type,omitempty" example:"chapter"`
	Color       string   `json:"color,omitempty" example:"#3b82f6"`
}

// UpdateAnnotationRequest is a partial update; omitted fields are unchanged
type UpdateAnnotationRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	StartTime   *float64 `json:"start_time,omitempty"`
	EndTime     *float64 `json:"end_time,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// SegmentRequest describes one physical chunk
type SegmentRequest struct {
	Filename  string  `json:"filename" binding:"required" example:"chunk_000.webm"`
	StartTime float64 `json:"start_time" example:"0"`
	EndTime   float64 `json:"end_time,omitempty" example:"300"`
	Duration  float64 `json:"duration,omitempty" example:"300"`
	Size      int64   `json:"size,omitempty"`
	FPS       float64 `json:"fps,omitempty"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
}

// AddSegmentsRequest appends segments to a video
type AddSegmentsRequest struct {
	Segments []SegmentRequest `json:"segments" binding:"required,min=1,dive"`
}

// CreateSessionRequest starts a playback session
type CreateSessionRequest struct {
	VideoID string `json:"video_id" binding:"required"`
}

// SeekRequest moves playback to a global time
type SeekRequest struct {
	Time *float64 `json:"time" binding:"required" example:"450"`
}

// ClickRequest is a click on the timeline bar
type ClickRequest struct {
	Fraction *float64 `json:"fraction" binding:"required" example:"0.6"`
}

// RateRequest changes the playback rate
type RateRequest struct {
	Rate float64 `json:"rate" binding:"required" example:"1.5"`
}

// SelectRequest selects an annotation from the list
type SelectRequest struct {
	AnnotationID string `json:"annotation_id" binding:"required"`
}

// SignalRequest reports a media element event
type SignalRequest struct {
	Kind      string  `json:"kind" binding:"required" example:"ready"` // ready|tick|ended|error
	Seq       uint64  `json:"seq,omitempty"`
	LocalTime float64 `json:"local_time,omitempty"`
	Error     string  `json:"error,omitempty"`
}
