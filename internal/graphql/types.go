package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
)

type VideoResolver struct {
	root  *Resolver
	video *models.Video
}

func (v *VideoResolver) ID() graphqlgo.ID        { return graphqlgo.ID(v.video.ID) }
func (v *VideoResolver) Title() string           { return v.video.Title }
func (v *VideoResolver) Description() *string    { return optional(v.video.Description) }
func (v *VideoResolver) Filename() string        { return v.video.Filename }
func (v *VideoResolver) OriginalName() string    { return v.video.OriginalName }
func (v *VideoResolver) MimeType() string        { return v.video.MimeType }
func (v *VideoResolver) Size() float64           { return float64(v.video.Size) }
func (v *VideoResolver) Duration() float64       { return v.video.Duration }
func (v *VideoResolver) Views() float64          { return float64(v.video.Views) }
func (v *VideoResolver) IsProduction() bool      { return v.video.IsProduction }
func (v *VideoResolver) TotalDuration() *float64 { return v.video.TotalDuration }
func (v *VideoResolver) IsActive() bool          { return v.video.IsActive }
func (v *VideoResolver) CreatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: v.video.CreatedAt}
}
func (v *VideoResolver) UpdatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: v.video.UpdatedAt}
}

// Annotations are loaded on demand unless the video came with them
func (v *VideoResolver) Annotations(ctx context.Context) (*[]*AnnotationResolver, error) {
	list := v.video.Annotations
	if list == nil {
		var err error
		list, err = v.root.services.Annotations.GetAnnotationsByVideoID(ctx, v.video.ID)
		if err != nil {
			return nil, err
		}
	}
	out := annotationResolvers(list)
	return &out, nil
}

func (v *VideoResolver) Segments(ctx context.Context) (*[]*SegmentResolver, error) {
	list, err := v.root.services.Segments.ListByVideo(ctx, v.video.ID)
	if err != nil {
		return nil, err
	}
	out := v.root.segmentResolvers(list)
	return &out, nil
}

type AnnotationResolver struct {
	annotation *models.Annotation
}

func (a *AnnotationResolver) ID() graphqlgo.ID      { return graphqlgo.ID(a.annotation.ID) }
func (a *AnnotationResolver) VideoID() graphqlgo.ID { return graphqlgo.ID(a.annotation.VideoID) }
func (a *AnnotationResolver) Title() string         { return a.annotation.Title }
func (a *AnnotationResolver) Description() *string  { return optional(a.annotation.Description) }
func (a *AnnotationResolver) StartTime() float64    { return a.annotation.StartTime }
func (a *AnnotationResolver) EndTime() float64      { return a.annotation.EndTime }
func (a *AnnotationResolver) Type() string          { return a.annotation.Type }
func (a *AnnotationResolver) Color() string         { return a.annotation.Color }
func (a *AnnotationResolver) IsActive() bool        { return a.annotation.IsActive }
func (a *AnnotationResolver) CreatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: a.annotation.CreatedAt}
}
func (a *AnnotationResolver) UpdatedAt() graphqlgo.Time {
	return graphqlgo.Time{Time: a.annotation.UpdatedAt}
}

type SegmentResolver struct {
	segment *models.Segment
	url     string
}

func (s *SegmentResolver) ID() graphqlgo.ID      { return graphqlgo.ID(s.segment.ID) }
func (s *SegmentResolver) VideoID() graphqlgo.ID { return graphqlgo.ID(s.segment.VideoID) }
func (s *SegmentResolver) Index() int32          { return int32(s.segment.Index) }
func (s *SegmentResolver) Filename() string      { return s.segment.Filename }
func (s *SegmentResolver) StartTime() float64    { return s.segment.StartTime }
func (s *SegmentResolver) EndTime() float64      { return s.segment.EndTime }
func (s *SegmentResolver) Duration() float64     { return s.segment.Duration }
func (s *SegmentResolver) Size() float64         { return float64(s.segment.Size) }
func (s *SegmentResolver) Fps() float64          { return s.segment.FPS }
func (s *SegmentResolver) Width() int32          { return int32(s.segment.Width) }
func (s *SegmentResolver) Height() int32         { return int32(s.segment.Height) }
func (s *SegmentResolver) URL() string           { return s.url }

type LocationResolver struct {
	loc playback.Location
}

func (l *LocationResolver) SegmentID() graphqlgo.ID { return graphqlgo.ID(l.loc.Segment.ID) }
func (l *LocationResolver) Position() int32         { return int32(l.loc.Position) }
func (l *LocationResolver) LocalTime() float64      { return l.loc.LocalTime }
func (l *LocationResolver) GlobalTime() float64     { return l.loc.GlobalTime() }
func (l *LocationResolver) Clamped() bool           { return l.loc.Clamped }
func (l *LocationResolver) URL() string             { return l.loc.Segment.SourceRef }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
