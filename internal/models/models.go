package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video represents an uploaded video. Production videos are split into
// segments; simple videos play from a single file.
type Video struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Filename      string    `json:"filename" gorm:"not null"`
	OriginalName  string    `json:"original_name" gorm:"not null"`
	MimeType      string    `json:"mime_type" gorm:"not null"`
	Size          int64     `json:"size"`
	Duration      float64   `json:"duration"` // Seconds
	Views         int       `json:"views" gorm:"default:0"`
	IsProduction  bool      `json:"is_production" gorm:"default:false;index"`
	TotalDuration *float64  `json:"total_duration,omitempty"` // Sum of segment durations, production only
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Annotations []Annotation `json:"annotations,omitempty" gorm:"foreignKey:VideoID"`
	Segments    []Segment    `json:"segments,omitempty" gorm:"foreignKey:VideoID"`
}

// BeforeCreate generates the primary key
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Video model
func (Video) TableName() string {
	return "videos"
}

// PlaybackDuration is the logical length of the video
func (v *Video) PlaybackDuration() float64 {
	if v.IsProduction && v.TotalDuration != nil {
		return *v.TotalDuration
	}
	return v.Duration
}

// Segment is one physical chunk of a production video
type Segment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	VideoID   string    `json:"video_id" gorm:"not null;index;size:36"`
	Index     int       `json:"index" gorm:"column:chunk_index;not null"`
	Filename  string    `json:"filename" gorm:"not null"`
	StartTime float64   `json:"start_time" gorm:"not null"` // Seconds, global timeline
	EndTime   float64   `json:"end_time" gorm:"not null"`
	Duration  float64   `json:"duration" gorm:"not null"`
	Size      int64     `json:"size"`
	FPS       float64   `json:"fps"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates the primary key
func (s *Segment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Segment model
func (Segment) TableName() string {
	return "video_segments"
}

// All returns every model in migration order
func All() []any {
	return []any{&Video{}, &Segment{}, &Annotation{}}
}
