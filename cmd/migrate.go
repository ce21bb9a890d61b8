package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/killallgit/annotator-api/internal/database"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema of the Video Annotator API.

Tables are derived from the application models, so "up" brings every table
and index in line with the current models and "down" drops them.

Available subcommands:
  up      - Create or update all tables
  down    - Drop all application tables
  status  - Show which tables exist and their row counts`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update all tables",
	Long: `Create or update all application tables.

Missing tables, columns and indexes are added. Existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop all application tables",
	Long: `Drop all application tables in reverse dependency order.

All videos, segments and annotations are deleted. You are asked to confirm
unless --yes is given.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

Lists every application table, whether it exists and how many rows it holds.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func openDatabase() (*database.DB, error) {
	cfg := appConfig.Database
	cfg.AutoMigrate = false
	db, err := database.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		return printStatus(cmd, db)
	}

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	appLogger.Info("schema migrated", "dialect", db.Dialect)
	fmt.Fprintln(out, "Migrations applied")
	return printStatus(cmd, db)
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - these tables would be dropped")
		return printStatus(cmd, db)
	}

	// Confirmation prompt for destructive action
	if !yes {
		fmt.Fprint(out, "WARNING: This will drop all tables and their data. Continue? (y/N): ")
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	if err := db.Rollback(); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	fmt.Fprintln(out, "All tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()
	return printStatus(cmd, db)
}

func printStatus(cmd *cobra.Command, db *database.DB) error {
	statuses, err := db.Status()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database Migration Status (%s)\n", db.Dialect)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, s := range statuses {
		state := "missing"
		if s.Exists {
			state = fmt.Sprintf("applied, %d row(s)", s.Rows)
		}
		fmt.Fprintf(out, "  %-20s %s\n", s.Table, state)
	}
	return nil
}
