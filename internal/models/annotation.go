package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Annotation defaults
const (
	DefaultAnnotationType  = "chapter"
	DefaultAnnotationColor = "#3b82f6"
)

// Annotation represents a labeled time range on a video's global timeline
type Annotation struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	VideoID     string    `json:"video_id" gorm:"not null;index;size:36"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartTime   float64   `json:"start_time" gorm:"not null"` // Time in seconds
	EndTime     float64   `json:"end_time" gorm:"not null"`   // Time in seconds
	Type        string    `json:"type" gorm:"default:chapter"`
	Color       string    `json:"color" gorm:"default:#3b82f6"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID and fills in defaults before insert
func (a *Annotation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Type == "" {
		a.Type = DefaultAnnotationType
	}
	if a.Color == "" {
		a.Color = DefaultAnnotationColor
	}
	return nil
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}

// Contains reports whether t falls inside the annotation, inclusive on both ends
func (a *Annotation) Contains(t float64) bool {
	return a.StartTime <= t && t <= a.EndTime
}
