package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/playback"
	"github.com/spf13/cobra"
)

// locateResult is the --json output of locate
type locateResult struct {
	VideoID       string                `json:"video_id"`
	Time          float64               `json:"time"`
	TotalDuration float64               `json:"total_duration"`
	Location      playback.Location     `json:"location"`
	Active        []playback.Annotation `json:"active_annotations"`
}

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate <video-id> <seconds>",
	Short: "Resolve a timeline position to a segment",
	Long: `Resolve a point on a video's logical timeline without starting the server.

Prints the segment that holds the position, the offset inside that segment
and the annotations active at that time. Positions outside the timeline are
clamped to its nearest end.

Example:
  annotator-api locate 6f1c0f4e-0d9a-4a53-9c1e-2b7d1c3a5e10 450
  annotator-api locate 6f1c0f4e-0d9a-4a53-9c1e-2b7d1c3a5e10 450 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
	locateCmd.Flags().Bool("json", false, "print the result as JSON")
}

func runLocate(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	t, err := strconv.ParseFloat(args[1], 64)
	if err != nil || math.IsInf(t, 0) || math.IsNaN(t) {
		return fmt.Errorf("invalid time %q: must be a number of seconds", args[1])
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	deps, err := types.NewDependencies(db, appConfig, appLogger)
	if err != nil {
		return err
	}
	defer deps.Close()

	tl, err := deps.TimelineService.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	loc, err := playback.Resolve(t, tl.Segments, appLogger)
	if err != nil {
		return err
	}
	active := playback.ActiveAnnotations(loc.GlobalTime(), tl.Annotations)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(locateResult{
			VideoID:       tl.VideoID,
			Time:          t,
			TotalDuration: tl.TotalDuration(),
			Location:      loc,
			Active:        active,
		})
	}

	fmt.Fprintf(out, "Video:     %s (%.1fs, %d segment(s))\n", tl.VideoID, tl.TotalDuration(), len(tl.Segments))
	fmt.Fprintf(out, "Segment:   #%d %s\n", loc.Position, loc.Segment.SourceRef)
	fmt.Fprintf(out, "Range:     %.3f - %.3f\n", loc.Segment.StartTime, loc.Segment.EndTime)
	fmt.Fprintf(out, "Local:     %.3f\n", loc.LocalTime)
	if loc.Clamped {
		fmt.Fprintf(out, "Clamped:   %.3f -> %.3f\n", t, loc.GlobalTime())
	}
	if len(active) == 0 {
		fmt.Fprintln(out, "Active:    none")
		return nil
	}
	for i, a := range active {
		label := "Active:   "
		if i > 0 {
			label = "          "
		}
		fmt.Fprintf(out, "%s %s [%.1f-%.1f] %s\n", label, a.Title, a.StartTime, a.EndTime, a.Type)
	}
	return nil
}
