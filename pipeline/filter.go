package pipeline

import (
	"strings"

	"github.com/lnb-datalab/recenzijas/table"
)

// Reason tags attached to rejected rows.
const (
	ReasonAuthorType = "Author type not 'aut' or 'rev'"
	ReasonNotReview  = "Not a review, book review, or history/criticism"
)

// Author roles whose records are analyzed; everything else (editors,
// translators, unset) is filtered out.
var allowedAuthorRoles = map[string]bool{
	"aut": true,
	"rev": true,
}

// Genre keyword tests, applied case-insensitively as substring matches.
const (
	kwRecenzija      = "recenzija"
	kwGramatuApskati = "grāmatu apskati"
	kwVestureKritika = "vēsture un kritika"
)

// Partition splits the working table into kept review records and
// rejected records, tagging each rejected row with the reason. The two
// predicates run in fixed order: author role first, then review genre on
// the survivors. Every input row lands in exactly one output, and both
// outputs keep the input's relative row order (stage-one rejects precede
// stage-two rejects in the rejected table).
func Partition(t *table.Table) (kept, rejected *table.Table, err error) {
	byAuthor, outAuthor := t.Filter(func(row table.Row) bool {
		return allowedAuthorRoles[row[ColAutors+"_4"]]
	})

	kept, outGenre := byAuthor.Filter(isReview)

	outAuthor, err = withReason(outAuthor, ReasonAuthorType)
	if err != nil {
		return nil, nil, err
	}
	outGenre, err = withReason(outGenre, ReasonNotReview)
	if err != nil {
		return nil, nil, err
	}
	return kept, outAuthor.Concat(outGenre), nil
}

func isReview(row table.Row) bool {
	genre := strings.ToLower(row[ColZanrs+"_a"])
	broader := strings.ToLower(row[ColZanrs+"_x"])
	return strings.Contains(genre, kwRecenzija) ||
		strings.Contains(genre, kwGramatuApskati) ||
		strings.Contains(broader, kwVestureKritika)
}

func withReason(t *table.Table, reason string) (*table.Table, error) {
	reasons := make([]string, t.Len())
	for i := range reasons {
		reasons[i] = reason
	}
	return t.WithColumn(ColFilterReason, reasons)
}
