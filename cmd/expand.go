package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lnb-datalab/recenzijas/marc"
	"github.com/lnb-datalab/recenzijas/pipeline"
	"github.com/lnb-datalab/recenzijas/table"
)

func newExpandCmd() *cobra.Command {
	var (
		inputFile      string
		outputFile     string
		inputDelimiter string
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand compound columns without filtering",
		Long: `Expand parses every $$-compound column of the export into subfield
columns and writes the full widened table, with no filtering or
harmonization. Useful for inspecting what the catalog actually exports.

Output defaults to stdout.

Examples:
  recenzijas expand -i records-wide.csv -o records-expanded.csv
  recenzijas expand -i records-wide.csv | head`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			delim, err := parseDelimiter(inputDelimiter)
			if err != nil {
				return err
			}

			raw, err := table.ReadCSVFile(inputFile, delim)
			if err != nil {
				return fmt.Errorf("loading input: %w", err)
			}

			wide, err := marc.ExpandColumns(raw, pipeline.CompoundColumns)
			if err != nil {
				return fmt.Errorf("expanding compound columns: %w", err)
			}
			slog.Info("expanded compound columns",
				"rows", wide.Len(),
				"columns_in", len(raw.Columns()),
				"columns_out", len(wide.Columns()))

			var w io.Writer = os.Stdout
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outputFile, err)
				}
				defer f.Close()
				w = f
			}
			return wide.WriteCSV(w, ',')
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input export file (;-delimited CSV)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&inputDelimiter, "input-delimiter", ";", "Input field delimiter")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
