// Package graphql serves the video and annotation CRUD API over GraphQL.
package graphql

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/segments"
	"github.com/killallgit/annotator-api/internal/services/timeline"
	"github.com/killallgit/annotator-api/internal/services/videos"
)

//go:embed schema.graphql
var schemaSDL string

// Services the resolvers read and write through
type Services struct {
	Videos      videos.Service
	Annotations annotations.Service
	Segments    segments.Service
	Timeline    timeline.Service
}

// Options limit query cost
type Options struct {
	MaxDepth       int
	MaxParallelism int
	Logger         hclog.Logger
}

// NewSchema parses the schema and binds it to the resolvers
func NewSchema(services Services, opts Options) (*graphqlgo.Schema, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var schemaOpts []graphqlgo.SchemaOpt
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphqlgo.MaxDepth(opts.MaxDepth))
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphqlgo.MaxParallelism(opts.MaxParallelism))
	}

	return graphqlgo.ParseSchema(schemaSDL, &Resolver{
		services: services,
		logger:   logger.Named("graphql"),
	}, schemaOpts...)
}

// Handler adapts the relay HTTP handler to gin
func Handler(schema *graphqlgo.Schema) gin.HandlerFunc {
	h := &relay.Handler{Schema: schema}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "GraphQL queries must be sent with POST"})
			return
		}
		h.ServeHTTP(c.Writer, c.Request)
	}
}
