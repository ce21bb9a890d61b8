package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/videos"
)

// Resolver is the root query and mutation resolver
type Resolver struct {
	services Services
	logger   hclog.Logger
}

// Queries

func (r *Resolver) Videos(ctx context.Context) ([]*VideoResolver, error) {
	list, err := r.services.Videos.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	return r.videoResolvers(list), nil
}

func (r *Resolver) ProductionVideos(ctx context.Context) ([]*VideoResolver, error) {
	list, err := r.services.Videos.ListProductionVideos(ctx)
	if err != nil {
		return nil, err
	}
	return r.videoResolvers(list), nil
}

func (r *Resolver) Video(ctx context.Context, args struct{ ID graphqlgo.ID }) (*VideoResolver, error) {
	video, err := r.services.Videos.GetVideo(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &VideoResolver{root: r, video: video}, nil
}

func (r *Resolver) Annotations(ctx context.Context) ([]*AnnotationResolver, error) {
	list, err := r.services.Annotations.ListAnnotations(ctx)
	if err != nil {
		return nil, err
	}
	return annotationResolvers(list), nil
}

func (r *Resolver) Annotation(ctx context.Context, args struct{ ID graphqlgo.ID }) (*AnnotationResolver, error) {
	annotation, err := r.services.Annotations.GetAnnotationByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &AnnotationResolver{annotation: annotation}, nil
}

func (r *Resolver) AnnotationsByVideo(ctx context.Context, args struct{ VideoID graphqlgo.ID }) ([]*AnnotationResolver, error) {
	list, err := r.services.Annotations.GetAnnotationsByVideoID(ctx, string(args.VideoID))
	if err != nil {
		return nil, err
	}
	return annotationResolvers(list), nil
}

func (r *Resolver) SegmentsByVideo(ctx context.Context, args struct{ VideoID graphqlgo.ID }) ([]*SegmentResolver, error) {
	list, err := r.services.Segments.ListByVideo(ctx, string(args.VideoID))
	if err != nil {
		return nil, err
	}
	return r.segmentResolvers(list), nil
}

type timeArgs struct {
	VideoID graphqlgo.ID
	Time    float64
}

func (r *Resolver) LocateSegment(ctx context.Context, args timeArgs) (*LocationResolver, error) {
	tl, err := r.services.Timeline.Build(ctx, string(args.VideoID))
	if err != nil {
		return nil, err
	}
	loc, err := playback.Resolve(args.Time, tl.Segments, r.logger)
	if err != nil {
		return nil, err
	}
	return &LocationResolver{loc: loc}, nil
}

func (r *Resolver) ActiveAnnotations(ctx context.Context, args timeArgs) ([]*AnnotationResolver, error) {
	list, err := r.services.Annotations.GetAnnotationsByVideoID(ctx, string(args.VideoID))
	if err != nil {
		return nil, err
	}

	var active []*AnnotationResolver
	for i := range list {
		if list[i].Contains(args.Time) {
			active = append(active, &AnnotationResolver{annotation: &list[i]})
		}
	}
	if active == nil {
		active = []*AnnotationResolver{}
	}
	return active, nil
}

func (r *Resolver) AnnotationAtFraction(ctx context.Context, args struct {
	VideoID  graphqlgo.ID
	Fraction float64
}) (*AnnotationResolver, error) {
	list, err := r.services.Annotations.GetAnnotationsByVideoID(ctx, string(args.VideoID))
	if err != nil {
		return nil, err
	}

	slots := make([]playback.Annotation, len(list))
	for i, a := range list {
		slots[i] = playback.Annotation{ID: a.ID, StartTime: a.StartTime, EndTime: a.EndTime}
	}
	_, idx, ok := playback.AnnotationForClickFraction(args.Fraction, slots)
	if !ok {
		return nil, nil
	}
	return &AnnotationResolver{annotation: &list[idx]}, nil
}

// Mutations

type createVideoInput struct {
	Title        string
	Description  *string
	Filename     string
	OriginalName string
	MimeType     string
	Size         float64
	Duration     float64
	IsProduction *bool
}

func (r *Resolver) CreateVideo(ctx context.Context, args struct{ CreateVideoInput createVideoInput }) (*VideoResolver, error) {
	in := args.CreateVideoInput
	video, err := r.services.Videos.CreateVideo(ctx, videos.CreateInput{
		Title:        in.Title,
		Description:  deref(in.Description),
		Filename:     in.Filename,
		OriginalName: in.OriginalName,
		MimeType:     in.MimeType,
		Size:         int64(in.Size),
		Duration:     in.Duration,
		IsProduction: in.IsProduction != nil && *in.IsProduction,
	})
	if err != nil {
		return nil, err
	}
	return &VideoResolver{root: r, video: video}, nil
}

func (r *Resolver) RemoveVideo(ctx context.Context, args struct{ ID graphqlgo.ID }) (bool, error) {
	if err := r.services.Videos.RemoveVideo(ctx, string(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

type createAnnotationInput struct {
	VideoID     graphqlgo.ID
	Title       string
	Description *string
	StartTime   float64
	EndTime     *float64
	Type        *string
	Color       *string
}

func (r *Resolver) CreateAnnotation(ctx context.Context, args struct{ CreateAnnotationInput createAnnotationInput }) (*AnnotationResolver, error) {
	in := args.CreateAnnotationInput

	end := in.StartTime + r.services.Annotations.Defaults().Span
	if in.EndTime != nil {
		end = *in.EndTime
	}

	annotation := &models.Annotation{
		VideoID:     string(in.VideoID),
		Title:       in.Title,
		Description: deref(in.Description),
		StartTime:   in.StartTime,
		EndTime:     end,
		Type:        deref(in.Type),
		Color:       deref(in.Color),
	}
	if err := r.services.Annotations.CreateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return &AnnotationResolver{annotation: annotation}, nil
}

type updateAnnotationInput struct {
	Title       *string
	Description *string
	StartTime   *float64
	EndTime     *float64
	Type        *string
	Color       *string
}

func (r *Resolver) UpdateAnnotation(ctx context.Context, args struct {
	ID                    graphqlgo.ID
	UpdateAnnotationInput updateAnnotationInput
}) (*AnnotationResolver, error) {
	in := args.UpdateAnnotationInput
	annotation, err := r.services.Annotations.UpdateAnnotation(ctx, string(args.ID), annotations.UpdateInput{
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Type:        in.Type,
		Color:       in.Color,
	})
	if err != nil {
		return nil, err
	}
	return &AnnotationResolver{annotation: annotation}, nil
}

func (r *Resolver) RemoveAnnotation(ctx context.Context, args struct{ ID graphqlgo.ID }) (bool, error) {
	if err := r.services.Annotations.RemoveAnnotation(ctx, string(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) videoResolvers(list []models.Video) []*VideoResolver {
	out := make([]*VideoResolver, len(list))
	for i := range list {
		out[i] = &VideoResolver{root: r, video: &list[i]}
	}
	return out
}

func (r *Resolver) segmentResolvers(list []models.Segment) []*SegmentResolver {
	out := make([]*SegmentResolver, len(list))
	for i := range list {
		out[i] = &SegmentResolver{segment: &list[i], url: r.services.Segments.SourceRef(list[i])}
	}
	return out
}

func annotationResolvers(list []models.Annotation) []*AnnotationResolver {
	out := make([]*AnnotationResolver, len(list))
	for i := range list {
		out[i] = &AnnotationResolver{annotation: &list[i]}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
