package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lnb-datalab/recenzijas/pipeline"
	"github.com/lnb-datalab/recenzijas/table"
)

func newCleanCmd() *cobra.Command {
	var (
		inputFile        string
		outputFile       string
		filteredOutFile  string
		inputDelimiter   string
		keepOtherColumns bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Filter and harmonize a review export",
		Long: `Clean runs the full pipeline over a wide catalog export:
subfield expansion, review filtering and field harmonization.

Two tables are written: the kept review records with the canonical
harmonized columns, and the filtered-out records with a filter_reason
column for inspection. Nothing is written if any step fails.

The kept-records output is CSV unless the path ends in .parquet, in
which case the canonical columns are written as Parquet.

Examples:
  recenzijas clean -i records-wide.csv -o recenzijas_clean.csv --filtered-out recenzijas_filtered_out.csv
  recenzijas clean -i records-wide.csv -o recenzijas_clean.parquet --filtered-out rejected.csv
  recenzijas clean -i export.csv -o clean.csv --filtered-out rejected.csv --keep-other-columns=false`,
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

			result, err := pipeline.Clean(raw, pipeline.Options{
				KeepOtherColumns: keepOtherColumns,
			})
			if err != nil {
				return err
			}

			if pipeline.IsParquetPath(outputFile) {
				err = pipeline.WriteParquetFile(outputFile, result.Kept)
			} else {
				err = result.Kept.WriteCSVFile(outputFile)
			}
			if err != nil {
				return fmt.Errorf("writing kept records: %w", err)
			}
			if err := result.Rejected.WriteCSVFile(filteredOutFile); err != nil {
				// Outputs come as a pair; do not leave a lone kept file.
				os.Remove(outputFile)
				return fmt.Errorf("writing filtered-out records: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input export file (;-delimited CSV)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Kept-records output file (.csv or .parquet)")
	cmd.Flags().StringVar(&filteredOutFile, "filtered-out", "", "Filtered-out records output file (CSV)")
	cmd.Flags().StringVar(&inputDelimiter, "input-delimiter", ";", "Input field delimiter")
	cmd.Flags().BoolVar(&keepOtherColumns, "keep-other-columns", true, "Retain unprocessed export columns in the kept output")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("filtered-out")

	return cmd
}

func parseDelimiter(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
