package pipeline

import (
	"reflect"
	"testing"

	"github.com/lnb-datalab/recenzijas/table"
)

func workingTable(rows []table.Row) *table.Table {
	t := table.New([]string{
		"id",
		ColAutors + "_4",
		ColZanrs + "_a",
		ColZanrs + "_x",
	})
	for _, row := range rows {
		t.Append(row)
	}
	return t
}

func TestPartition(t *testing.T) {
	tbl := workingTable([]table.Row{
		{"id": "1", ColAutors + "_4": "aut", ColZanrs + "_a": "Recenzijas."},
		{"id": "2", ColAutors + "_4": "edt", ColZanrs + "_a": "Recenzijas."},
		{"id": "3", ColAutors + "_4": "aut", ColZanrs + "_a": "Romāni"},
		{"id": "4", ColAutors + "_4": "rev", ColZanrs + "_x": "Vēsture un kritika."},
		{"id": "5", ColAutors + "_4": "aut", ColZanrs + "_a": "Grāmatu apskati"},
		{"id": "6"},
	})

	kept, rejected, err := Partition(tbl)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	// Total and disjoint: every row in exactly one output.
	if kept.Len()+rejected.Len() != tbl.Len() {
		t.Errorf("kept %d + rejected %d != input %d", kept.Len(), rejected.Len(), tbl.Len())
	}

	if want := []string{"1", "4", "5"}; !reflect.DeepEqual(kept.Column("id"), want) {
		t.Errorf("kept ids = %v, want %v", kept.Column("id"), want)
	}

	// Author-stage rejects precede genre-stage rejects; each keeps its
	// original relative order.
	if want := []string{"2", "6", "3"}; !reflect.DeepEqual(rejected.Column("id"), want) {
		t.Errorf("rejected ids = %v, want %v", rejected.Column("id"), want)
	}
	wantReasons := []string{ReasonAuthorType, ReasonAuthorType, ReasonNotReview}
	if !reflect.DeepEqual(rejected.Column(ColFilterReason), wantReasons) {
		t.Errorf("reasons = %v, want %v", rejected.Column(ColFilterReason), wantReasons)
	}

	// Kept rows carry no reason column.
	if kept.HasColumn(ColFilterReason) {
		t.Error("kept table has a filter_reason column")
	}
}

func TestIsReviewMatchesAreCaseInsensitiveSubstrings(t *testing.T) {
	tests := []struct {
		name string
		row  table.Row
		want bool
	}{
		{
			name: "genre contains recenzija",
			row:  table.Row{ColZanrs + "_a": "Teātra recenzijas"},
			want: true,
		},
		{
			name: "book survey keyword",
			row:  table.Row{ColZanrs + "_a": "GRĀMATU APSKATI"},
			want: true,
		},
		{
			name: "broader genre history and criticism",
			row:  table.Row{ColZanrs + "_x": "Latviešu drāma - vēsture un kritika"},
			want: true,
		},
		{
			name: "unrelated genre",
			row:  table.Row{ColZanrs + "_a": "Romāni"},
			want: false,
		},
		{
			name: "empty row",
			row:  table.Row{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReview(tt.row); got != tt.want {
				t.Errorf("isReview(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}
