package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/killallgit/annotator-api/pkg/config"
	"github.com/spf13/cobra"
)

// setupTestEnv points configuration at an empty settings file and a fresh
// sqlite database, and resets flags left over from earlier executions.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "annotator.db")
	t.Setenv("ANNOTATOR_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("ANNOTATOR_DATABASE_PATH", dbPath)
	t.Setenv("ANNOTATOR_STORAGE_VIDEOS_DIR", dir)
	t.Setenv("ANNOTATOR_LOGGING_LEVEL", "error")

	config.Reset()
	t.Cleanup(config.Reset)

	configPath = ""
	serverHost, serverPort = "", 0
	_ = seedCmd.Flags().Set("force", "false")
	_ = seedCmd.Flags().Set("file", "")
	_ = locateCmd.Flags().Set("json", "false")
	_ = migrateDownCmd.Flags().Set("yes", "false")
	_ = migrateCmd.PersistentFlags().Set("dry-run", "false")

	resetContexts(rootCmd)

	return dbPath
}

// resetContexts drops contexts cobra cached on commands in earlier runs
func resetContexts(c *cobra.Command) {
	c.SetContext(context.Background())
	for _, child := range c.Commands() {
		resetContexts(child)
	}
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "root command without args shows help",
			args:           []string{},
			wantErr:        false,
			expectedOutput: "Video Annotator API",
		},
		{
			name:           "root command with --help",
			args:           []string{"--help"},
			wantErr:        false,
			expectedOutput: "Available Commands:",
		},
		{
			name:           "root command with invalid flag",
			args:           []string{"--invalid-flag"},
			wantErr:        true,
			expectedOutput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a new root command for testing
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

func TestLogFlags(t *testing.T) {
	cmd := NewRootCmd()

	// Test that log-level flag is registered
	logFlag := cmd.PersistentFlags().Lookup("log-level")
	if logFlag == nil {
		t.Error("Expected log-level flag to be registered")
		return
	}

	if logFlag.DefValue != "info" {
		t.Errorf("Expected default log-level to be 'info', got %s", logFlag.DefValue)
	}

	// Test that json-logs flag is registered
	jsonFlag := cmd.PersistentFlags().Lookup("json-logs")
	if jsonFlag == nil {
		t.Error("Expected json-logs flag to be registered")
		return
	}
}
