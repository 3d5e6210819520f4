package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lnb-datalab/recenzijas/marc"
	"github.com/lnb-datalab/recenzijas/pipeline"
	"github.com/lnb-datalab/recenzijas/table"
)

// GenreAuditReport summarizes how the filter and the genre vocabulary
// would treat an export.
type GenreAuditReport struct {
	TotalRecords     int            `json:"total_records"`
	Kept             int            `json:"kept"`
	RejectedByReason map[string]int `json:"rejected_by_reason"`
	GenreFrequency   map[string]int `json:"genre_frequency"`
	MappedToLiterary int            `json:"mapped_to_literary"`
	PassThrough      []GenreCount   `json:"pass_through"`
}

// GenreCount is one genre value that the vocabulary passes through
// unchanged, with its record count. Frequent entries are candidates for
// the category list.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit an export for vocabulary and filter coverage",
	}
	cmd.AddCommand(newAuditGenresCmd())
	return cmd
}

func newAuditGenresCmd() *cobra.Command {
	var (
		inputFile      string
		inputDelimiter string
		outputFile     string
	)

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "Report genre values and filter outcomes",
		Long: `Audit genres runs the filter over an export and reports, as JSON, how
many records each reason would reject, the frequency of every genre
value, and the genre values the category vocabulary passes through
unchanged. Frequent pass-through values are candidates for the embedded
category list.

Example:
  recenzijas audit genres -i records-wide.csv`,
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

			kept, rejected, err := pipeline.Partition(wide)
			if err != nil {
				return fmt.Errorf("filtering records: %w", err)
			}

			report := GenreAuditReport{
				TotalRecords:     raw.Len(),
				Kept:             kept.Len(),
				RejectedByReason: map[string]int{},
				GenreFrequency:   map[string]int{},
			}
			for i := 0; i < rejected.Len(); i++ {
				report.RejectedByReason[rejected.Row(i)[pipeline.ColFilterReason]]++
			}

			passThrough := map[string]int{}
			for _, genre := range kept.Column(pipeline.ColZanrs + "_a") {
				// Same trailing-period trim the harmonizer applies, so
				// the audit sees the values the vocabulary is matched
				// against.
				genre = strings.TrimSpace(strings.TrimRight(genre, "."))
				if genre == "" {
					continue
				}
				report.GenreFrequency[genre]++
				if pipeline.IsLiteraryGenre(genre) {
					report.MappedToLiterary++
				} else {
					passThrough[genre]++
				}
			}
			for genre, count := range passThrough {
				report.PassThrough = append(report.PassThrough, GenreCount{Genre: genre, Count: count})
			}
			sort.Slice(report.PassThrough, func(i, j int) bool {
				if report.PassThrough[i].Count != report.PassThrough[j].Count {
					return report.PassThrough[i].Count > report.PassThrough[j].Count
				}
				return report.PassThrough[i].Genre < report.PassThrough[j].Genre
			})

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			out = append(out, '\n')
			if outputFile != "" {
				return os.WriteFile(outputFile, out, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input export file (;-delimited CSV)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&inputDelimiter, "input-delimiter", ";", "Input field delimiter")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
