package types

import (
	"fmt"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/graphql"
	"github.com/killallgit/annotator-api/internal/playback"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/segments"
	"github.com/killallgit/annotator-api/internal/services/sessions"
	"github.com/killallgit/annotator-api/internal/services/timeline"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/killallgit/annotator-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	Config            *config.Config
	Logger            hclog.Logger
	VideoService      videos.Service
	AnnotationService annotations.Service
	SegmentService    segments.Service
	TimelineService   timeline.Service
	Sessions          *sessions.Manager
	GraphQLSchema     *graphqlgo.Schema
}

// Log returns the configured logger or a null logger
func (d *Dependencies) Log() hclog.Logger {
	if d == nil || d.Logger == nil {
		return hclog.NewNullLogger()
	}
	return d.Logger
}

// DefaultMediaPrefix is where media files are served when not configured
const DefaultMediaPrefix = "/api/v1/media"

// NewDependencies wires every service on top of db. Zero config values fall
// back to service defaults.
func NewDependencies(db *database.DB, cfg *config.Config, logger hclog.Logger) (*Dependencies, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	mediaPrefix := cfg.Media.URLPrefix
	if mediaPrefix == "" {
		mediaPrefix = DefaultMediaPrefix
	}

	deps := &Dependencies{
		DB:     db,
		Config: cfg,
		Logger: logger,
	}

	videoService := videos.NewService(videos.NewRepository(db.DB), cfg.Media.AllowedTypes, logger)
	annotationService := annotations.NewService(annotations.NewRepository(db.DB), annotations.Defaults{
		Span:  cfg.Annotations.DefaultSpan,
		Type:  cfg.Annotations.DefaultType,
		Color: cfg.Annotations.DefaultColor,
	}, logger)
	segmentService := segments.NewService(segments.NewRepository(db.DB), videoService, mediaPrefix, logger)
	timelineService := timeline.NewService(videoService, segmentService, annotationService, mediaPrefix)

	deps.VideoService = videoService
	deps.AnnotationService = annotationService
	deps.SegmentService = segmentService
	deps.TimelineService = timelineService
	deps.Sessions = sessions.NewManager(timelineService, sessions.Config{
		TTL:             cfg.Playback.SessionTTL,
		CleanupInterval: cfg.Playback.SessionCleanupInterval,
		MaxSessions:     cfg.Playback.MaxSessions,
		Player: playback.PlayerConfig{
			AutoAdvanceThreshold: cfg.Playback.AutoAdvanceThreshold,
			MaxLoadAttempts:      cfg.Playback.MaxLoadAttempts,
		},
	}, logger)

	schema, err := graphql.NewSchema(graphql.Services{
		Videos:      videoService,
		Annotations: annotationService,
		Segments:    segmentService,
		Timeline:    timelineService,
	}, graphql.Options{
		MaxDepth:       cfg.GraphQL.MaxDepth,
		MaxParallelism: cfg.GraphQL.MaxParallelism,
		Logger:         logger,
	})
	if err != nil {
		deps.Sessions.Stop()
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	deps.GraphQLSchema = schema

	return deps, nil
}

// Close stops background work owned by the dependencies
func (d *Dependencies) Close() {
	if d.Sessions != nil {
		d.Sessions.Stop()
	}
}
