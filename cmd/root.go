// Package cmd provides the CLI commands for recenzijas.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

// NewRootCmd builds the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recenzijas",
		Short: "Normalize catalog review exports into analysis-ready tables",
		Long: `Recenzijas cleans bibliographic review records exported from the
library catalog's wide CSV format.

It expands $$-delimited MARC subfields into columns, filters records down
to genuine critical reviews, harmonizes the overlapping reviewed-work
fields into canonical columns, and writes two tables: kept records and
filtered-out records with a reason tag.

Examples:
  recenzijas clean -i records-wide.csv -o recenzijas_clean.csv --filtered-out recenzijas_filtered_out.csv
  recenzijas expand -i records-wide.csv -o records-expanded.csv
  recenzijas audit genres -i records-wide.csv`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env if present (ignore errors)
			_ = godotenv.Load()
			setupLogger()
		},
	}

	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newExpandCmd())
	cmd.AddCommand(newAuditCmd())

	return cmd
}
