package pipeline

import (
	"strings"

	"github.com/lnb-datalab/recenzijas/extract"
	"github.com/lnb-datalab/recenzijas/helpers"
	"github.com/lnb-datalab/recenzijas/table"
)

// HarmonizeStages returns the ordered derivation stages that resolve the
// canonical review columns. Order matters: later stages read columns
// earlier stages produced. Every stage tolerates empty cells; absence
// propagates through the fallbacks instead of erroring.
func HarmonizeStages() []Stage {
	return []Stage{
		{Name: "invert-names", Apply: invertNames},
		{Name: "collect-persons", Apply: collectPersons},
		{Name: "join-title", Apply: joinTitle},
		{Name: "trim-genre-periods", Apply: trimGenrePeriods},
		{Name: "trim-title-punct", Apply: trimTitlePunct},
		{Name: "institution-alias", Apply: institutionAlias},
		{Name: "extract-subtitle-credits", Apply: extractSubtitleCredits},
		{Name: "extract-legacy-note", Apply: extractLegacyNote},
		{Name: "resolve-reviewed-edition", Apply: resolveReviewedEdition},
		{Name: "resolve-canonical", Apply: resolveCanonical},
		{Name: "publisher-colon-fix", Apply: publisherColonFix},
		{Name: "work-title-fallback", Apply: workTitleFallback},
		{Name: "map-genre", Apply: mapGenreStage},
		{Name: "drop-helpers", Apply: dropHelpers},
	}
}

// mapColumn rewrites one column in place through fn. A column the
// expansion never produced (subfield code absent from the whole export)
// is skipped: there is nothing to rewrite.
func mapColumn(t *table.Table, col string, fn func(string) string) (*table.Table, error) {
	if !t.HasColumn(col) {
		return t, nil
	}
	values := t.Column(col)
	for i, v := range values {
		values[i] = fn(v)
	}
	return t.WithColumn(col, values)
}

// derive appends a column computed per-row from already-present columns.
func derive(t *table.Table, col string, fn func(table.Row) string) (*table.Table, error) {
	values := make([]string, t.Len())
	for i := range values {
		values[i] = fn(t.Row(i))
	}
	return t.WithColumn(col, values)
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// invertNames rewrites every name-bearing subfield from the catalog's
// "Last, First" order to direct order.
func invertNames(t *table.Table) (*table.Table, error) {
	var err error
	for _, col := range nameColumns() {
		t, err = mapColumn(t, col, helpers.InvertName)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// collectPersons gathers all non-empty person names into one |-separated
// column, in fixed column priority order. Duplicates are kept.
func collectPersons(t *table.Table) (*table.Table, error) {
	cols := nameColumns()
	return derive(t, ColVisasPersonas, func(row table.Row) string {
		var names []string
		for _, col := range cols {
			if v := row[col]; v != "" {
				names = append(names, v)
			}
		}
		return strings.Join(names, "|")
	})
}

// joinTitle concatenates title and subtitle with a single space.
func joinTitle(t *table.Table) (*table.Table, error) {
	return derive(t, ColRakstsAB, func(row table.Row) string {
		return strings.TrimSpace(row[ColRaksts+"_a"] + " " + row[ColRaksts+"_b"])
	})
}

func trimTrailingPeriods(v string) string {
	return strings.TrimSpace(strings.TrimRight(v, "."))
}

func trimGenrePeriods(t *table.Table) (*table.Table, error) {
	t, err := mapColumn(t, ColZanrs+"_a", trimTrailingPeriods)
	if err != nil {
		return nil, err
	}
	return mapColumn(t, ColInstitucija+"_a", trimTrailingPeriods)
}

// trimTitlePunct strips the trailing ISBD separators (colon, slash,
// whitespace) catalogers leave at the end of the title subfield.
func trimTitlePunct(t *table.Table) (*table.Table, error) {
	return mapColumn(t, ColRaksts+"_a", func(v string) string {
		return strings.TrimSpace(strings.TrimRight(v, ": /"))
	})
}

// institutionAlias merges the opera's pre-2019 heading into its current
// one. Exact match only.
func institutionAlias(t *table.Table) (*table.Table, error) {
	return mapColumn(t, ColInstitucija+"_a", func(v string) string {
		if v == "Latvijas Nacionālā opera" {
			return "Latvijas Nacionālā opera un balets"
		}
		return v
	})
}

// extractSubtitleCredits pulls the director credit and the quoted
// performance title out of the subtitle subfield.
func extractSubtitleCredits(t *table.Table) (*table.Table, error) {
	t, err := derive(t, "(245)_director", func(row table.Row) string {
		return extract.DirectorNames(row[ColRaksts+"_b"])
	})
	if err != nil {
		return nil, err
	}
	return derive(t, "(245)_title", func(row table.Row) string {
		return extract.QuotedTitle(row[ColRaksts+"_b"])
	})
}

// extractLegacyNote recovers author, title and publisher from the legacy
// free-text reviewed-edition note, "{Author.} Title / Place : Publisher,".
func extractLegacyNote(t *table.Table) (*table.Table, error) {
	t, err := derive(t, "(500)_author", func(row table.Row) string {
		return extract.BracedAuthor(row[ColRecenzets500+"_a"])
	})
	if err != nil {
		return nil, err
	}
	t, err = derive(t, "(500)_title", func(row table.Row) string {
		return extract.TitleAfterBrace(row[ColRecenzets500+"_a"])
	})
	if err != nil {
		return nil, err
	}
	return derive(t, "(500)_publisher", func(row table.Row) string {
		return extract.PublisherAfterSlashColon(row[ColRecenzets500+"_a"])
	})
}

// resolveReviewedEdition prefers the structured reviewed-edition
// subfields and falls back per attribute to the legacy-note extraction.
func resolveReviewedEdition(t *table.Table) (*table.Table, error) {
	t, err := derive(t, "(787)_author", func(row table.Row) string {
		return firstNonEmpty(helpers.InvertName(row[ColRecenzets787+"_a"]), row["(500)_author"])
	})
	if err != nil {
		return nil, err
	}
	t, err = derive(t, "(787)_title", func(row table.Row) string {
		return firstNonEmpty(row[ColRecenzets787+"_t"], row["(500)_title"])
	})
	if err != nil {
		return nil, err
	}
	return derive(t, "(787)_publisher", func(row table.Row) string {
		return firstNonEmpty(row[ColRecenzets787+"_d"], row["(500)_publisher"])
	})
}

// resolveCanonical resolves the three canonical reviewed-work fields,
// structured value first, extracted value second.
func resolveCanonical(t *table.Table) (*table.Table, error) {
	t, err := derive(t, ColDarbaAutors, func(row table.Row) string {
		return firstNonEmpty(row["(787)_author"], row["(245)_director"])
	})
	if err != nil {
		return nil, err
	}
	t, err = derive(t, ColDarbs, func(row table.Row) string {
		return firstNonEmpty(row["(787)_title"], row["(245)_title"])
	})
	if err != nil {
		return nil, err
	}
	return derive(t, ColPublicetajs, func(row table.Row) string {
		return firstNonEmpty(row["(787)_publisher"], row[ColInstitucija+"_a"])
	})
}

// publisherColonFix rewrites values that still carry an ISBD place
// statement ("Rīga : Liesma, 1985") down to the text between the first
// colon and the following comma.
func publisherColonFix(t *table.Table) (*table.Table, error) {
	return mapColumn(t, ColPublicetajs, func(v string) string {
		if !strings.Contains(v, ":") {
			return v
		}
		after := strings.SplitN(v, ":", 3)[1]
		return strings.TrimSpace(strings.SplitN(after, ",", 2)[0])
	})
}

// workTitleFallback fills still-empty reviewed-work titles from the
// film/performance subfield, then truncates every title at the first
// colon to cut subtitle statements.
func workTitleFallback(t *table.Table) (*table.Table, error) {
	t, err := derive(t, ColDarbs, func(row table.Row) string {
		return firstNonEmpty(row[ColDarbs], row[ColFilmaIzrade+"_a"])
	})
	if err != nil {
		return nil, err
	}
	return mapColumn(t, ColDarbs, func(v string) string {
		return strings.TrimSpace(strings.SplitN(v, ":", 2)[0])
	})
}

func mapGenreStage(t *table.Table) (*table.Table, error) {
	return derive(t, ColRecenzijasTips, func(row table.Row) string {
		return MapGenre(row[ColZanrs+"_a"])
	})
}

func dropHelpers(t *table.Table) (*table.Table, error) {
	return t.Drop(helperColumns...)
}
