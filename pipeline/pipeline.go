// Package pipeline turns the catalog's wide review export into two
// analysis-ready tables: kept review records with harmonized canonical
// columns, and rejected records tagged with the reason they were
// filtered out.
//
// The pipeline is a fixed sequence over an in-memory table: drop unused
// export columns, expand every $$-compound column into subfield columns,
// select the analysis columns, partition by the review filters, then run
// the ordered harmonization stages over the kept rows.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/lnb-datalab/recenzijas/marc"
	"github.com/lnb-datalab/recenzijas/table"
)

// Stage is one named, pure table transform. Stages declare nothing about
// each other; the caller owns the order.
type Stage struct {
	Name  string
	Apply func(*table.Table) (*table.Table, error)
}

// Run applies the stages in order.
func Run(t *table.Table, stages []Stage) (*table.Table, error) {
	var err error
	for _, stage := range stages {
		t, err = stage.Apply(t)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		slog.Debug("stage applied", "stage", stage.Name, "rows", t.Len(), "columns", len(t.Columns()))
	}
	return t, nil
}

// Options configures a cleaning run.
type Options struct {
	// KeepOtherColumns retains the export columns that are neither
	// compound nor explicitly processed, sorted, after the analysis
	// columns.
	KeepOtherColumns bool
}

// Result holds the two output tables and the run's counts.
type Result struct {
	Kept     *table.Table
	Rejected *table.Table

	RowsIn           int
	RejectedByAuthor int
	RejectedByGenre  int
}

// Clean runs the full pipeline over a raw export table. It fails without
// producing any output on shape errors (missing expected columns); cell
// level parse misses are not errors and surface as empty values.
func Clean(raw *table.Table, opts Options) (*Result, error) {
	slog.Info("cleaning export", "rows", raw.Len(), "columns", len(raw.Columns()))

	t, err := raw.Drop(DropColumns...)
	if err != nil {
		return nil, fmt.Errorf("dropping unused columns: %w", err)
	}

	t, err = marc.ExpandColumns(t, CompoundColumns)
	if err != nil {
		return nil, fmt.Errorf("expanding compound columns: %w", err)
	}

	selection := processedColumns()
	if opts.KeepOtherColumns {
		selection = append(selection, t.SortedExtraColumns(append(expandedColumns(t), CompoundColumns...))...)
	}
	working := t.Select(selection)

	// The author-role subfield drives the first filter stage and is
	// populated on every real export; its absence means the input is not
	// the expected export shape. The genre subfields may legitimately be
	// sparse, so their absence just fails the keyword tests.
	if !working.HasColumn(ColAutors + "_4") {
		return nil, fmt.Errorf("expected column %q missing after expansion", ColAutors+"_4")
	}

	kept, rejected, err := Partition(working)
	if err != nil {
		return nil, fmt.Errorf("filtering records: %w", err)
	}
	rejectedByGenre := 0
	for i := 0; i < rejected.Len(); i++ {
		if rejected.Row(i)[ColFilterReason] == ReasonNotReview {
			rejectedByGenre++
		}
	}
	slog.Info("filtered records",
		"kept", kept.Len(),
		"rejected_author_type", rejected.Len()-rejectedByGenre,
		"rejected_genre", rejectedByGenre)

	kept, err = Run(kept, HarmonizeStages())
	if err != nil {
		return nil, fmt.Errorf("harmonizing records: %w", err)
	}

	return &Result{
		Kept:             kept,
		Rejected:         rejected,
		RowsIn:           raw.Len(),
		RejectedByAuthor: rejected.Len() - rejectedByGenre,
		RejectedByGenre:  rejectedByGenre,
	}, nil
}

// expandedColumns lists every "<compound>_<code>" column the expansion
// produced, so the keep-other-columns selection can exclude them.
func expandedColumns(t *table.Table) []string {
	var cols []string
	for _, col := range t.Columns() {
		for _, compound := range CompoundColumns {
			if len(col) > len(compound)+1 && col[:len(compound)+1] == compound+"_" {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}
