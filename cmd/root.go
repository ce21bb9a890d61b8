package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/pkg/config"
	"github.com/killallgit/annotator-api/pkg/logging"
	"github.com/spf13/cobra"
)

// skipConfigAnnotation marks commands that run without loading configuration
const skipConfigAnnotation = "skip-config"

var (
	configPath string
	appConfig  *config.Config
	appLogger  hclog.Logger = hclog.NewNullLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "annotator-api",
	Short: "Video Annotator API server",
	Long: `Video Annotator API - annotate videos and play them back across segments

The API keeps a catalog of videos, time-ranged annotations on them and the
physical segment files a long video is split into. It maps any point of the
logical timeline onto a segment and drives playback sessions that hop from
segment to segment.

Features:
  • Video and annotation catalog over REST and GraphQL
  • Segment catalog with HLS playlist import and export
  • Stateless timeline queries (locate, active annotations, timeline clicks)
  • Stateful playback sessions with auto-advance and load retries
  • Media file serving with range request support`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ./config/settings.yaml or $ANNOTATOR_CONFIG)")

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration and sets up logging for commands that
// need it. Flags win over the settings file.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Annotations[skipConfigAnnotation] == "true" {
		return nil
	}

	var err error
	if configPath != "" {
		err = config.Load(configPath)
	} else {
		err = config.Init()
	}
	if err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if flag := cmd.Flags().Lookup("log-level"); flag != nil && (flag.Changed || level == "") {
		level = flag.Value.String()
	}
	jsonLogs := strings.EqualFold(cfg.Logging.Format, "json")
	if flag := cmd.Flags().Lookup("json-logs"); flag != nil && flag.Changed {
		jsonLogs = flag.Value.String() == "true"
	}

	appConfig = cfg
	appLogger = logging.Setup(logging.Options{
		Level:  level,
		JSON:   jsonLogs,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}
