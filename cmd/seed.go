package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/jinzhu/copier"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/services/segments"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

//go:embed fixtures/demo.toml
var demoFixture []byte

// Fixture is the TOML layout accepted by the seed command
type Fixture struct {
	Videos []FixtureVideo `toml:"videos"`
}

// FixtureVideo is one video with its optional segments and annotations
type FixtureVideo struct {
	Title        string              `toml:"title"`
	Description  string              `toml:"description"`
	Filename     string              `toml:"filename"`
	OriginalName string              `toml:"original_name"`
	MimeType     string              `toml:"mime_type"`
	Size         int64               `toml:"size"`
	Duration     float64             `toml:"duration"`
	IsProduction bool                `toml:"production"`
	Segments     []FixtureSegment    `toml:"segments"`
	Annotations  []FixtureAnnotation `toml:"annotations"`
}

// FixtureSegment mirrors segments.Input
type FixtureSegment struct {
	Filename  string  `toml:"filename"`
	StartTime float64 `toml:"start_time"`
	EndTime   float64 `toml:"end_time"`
	Duration  float64 `toml:"duration"`
	Size      int64   `toml:"size"`
	FPS       float64 `toml:"fps"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
}

// FixtureAnnotation is an annotation without its video
type FixtureAnnotation struct {
	Title       string  `toml:"title"`
	Description string  `toml:"description"`
	StartTime   float64 `toml:"start_time"`
	EndTime     float64 `toml:"end_time"`
	Type        string  `toml:"type"`
	Color       string  `toml:"color"`
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo or fixture data into the database",
	Long: `Populate the database with videos, segments and annotations.

Without --file the built-in demo catalog is loaded: three tutorial videos,
chapter annotations on the first one and a segmented keynote recording.
A TOML fixture with the same layout can be given instead.

Seeding is skipped when the database already holds videos unless --force
is set.

Example:
  annotator-api seed
  annotator-api seed --file ./fixtures/course.toml --force`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringP("file", "f", "", "TOML fixture to load instead of the demo data")
	seedCmd.Flags().Bool("force", false, "seed even when videos already exist")
}

// ParseFixture decodes a TOML fixture
func ParseFixture(data []byte) (*Fixture, error) {
	var fixture Fixture
	if err := toml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	if len(fixture.Videos) == 0 {
		return nil, fmt.Errorf("invalid fixture: no videos")
	}
	return &fixture, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	force, _ := cmd.Flags().GetBool("force")

	data := demoFixture
	if file != "" {
		var err error
		if data, err = os.ReadFile(file); err != nil {
			return fmt.Errorf("failed to read fixture: %w", err)
		}
	}
	fixture, err := ParseFixture(data)
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	deps, err := types.NewDependencies(db, appConfig, appLogger)
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	existing, err := deps.VideoService.ListVideos(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 && !force {
		fmt.Fprintf(out, "Database already holds %d video(s), skipping seed (use --force to seed anyway)\n", len(existing))
		return nil
	}

	for _, fv := range fixture.Videos {
		if err := seedVideo(ctx, out, deps, fv); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Seeding completed")
	return nil
}

func seedVideo(ctx context.Context, out io.Writer, deps *types.Dependencies, fv FixtureVideo) error {
	var input videos.CreateInput
	if err := copier.Copy(&input, &fv); err != nil {
		return err
	}
	if input.OriginalName == "" {
		input.OriginalName = input.Filename
	}

	video, err := deps.VideoService.CreateVideo(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create video %q: %w", fv.Title, err)
	}
	fmt.Fprintf(out, "Created video %s: %s\n", video.ID, video.Title)

	if len(fv.Segments) > 0 {
		var inputs []segments.Input
		if err := copier.Copy(&inputs, &fv.Segments); err != nil {
			return err
		}
		result, err := deps.SegmentService.Add(ctx, video.ID, inputs)
		if err != nil {
			return fmt.Errorf("failed to add segments to %q: %w", fv.Title, err)
		}
		fmt.Fprintf(out, "  %d segment(s), %.1fs total\n", len(result.Segments), result.TotalDuration)
		for _, d := range result.Discontinuities {
			fmt.Fprintf(out, "  warning: discontinuity between segments %d and %d (%.3fs)\n", d.After, d.Before, d.Gap)
		}
	}

	for _, fa := range fv.Annotations {
		annotation := &models.Annotation{VideoID: video.ID}
		if err := copier.Copy(annotation, &fa); err != nil {
			return err
		}
		if err := deps.AnnotationService.CreateAnnotation(ctx, annotation); err != nil {
			return fmt.Errorf("failed to create annotation %q: %w", fa.Title, err)
		}
		fmt.Fprintf(out, "  annotation %q [%.1f-%.1f]\n", annotation.Title, annotation.StartTime, annotation.EndTime)
	}
	return nil
}
