package marc

import (
	"reflect"
	"testing"

	"github.com/lnb-datalab/recenzijas/table"
)

func TestParseSubfields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "literal NA",
			input: "NA",
			want:  map[string]string{},
		},
		{
			name:  "no delimiter markers",
			input: "plain text without subfields",
			want:  map[string]string{},
		},
		{
			name:  "typical author field",
			input: "$$aBērziņš, Jānis,$$d1950-$$4aut",
			want:  map[string]string{"a": "Bērziņš, Jānis,", "d": "1950-", "4": "aut"},
		},
		{
			name:  "content is trimmed",
			input: "$$a  Recenzijas.  $$x vēsture un kritika ",
			want:  map[string]string{"a": "Recenzijas.", "x": "vēsture un kritika"},
		},
		{
			name:  "whitespace-only segment dropped",
			input: "$$a   $$bKept",
			want:  map[string]string{"b": "Kept"},
		},
		{
			name:  "repeated code keeps last occurrence",
			input: "$$aX$$aY",
			want:  map[string]string{"a": "Y"},
		},
		{
			name:  "numeric code",
			input: "$$4rev",
			want:  map[string]string{"4": "rev"},
		},
		{
			name:  "stray single dollar ends a segment",
			input: "$$aA$B",
			want:  map[string]string{"a": "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSubfields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSubfields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandColumn(t *testing.T) {
	tbl := table.New([]string{"F", "other"})
	tbl.Append(table.Row{"F": "$$aX$$bY", "other": "1"})
	tbl.Append(table.Row{"F": "$$bZ", "other": "2"})
	tbl.Append(table.Row{"F": "", "other": "3"})

	got, err := ExpandColumn(tbl, "F")
	if err != nil {
		t.Fatalf("ExpandColumn() error = %v", err)
	}

	wantCols := []string{"F", "other", "F_a", "F_b"}
	if !reflect.DeepEqual(got.Columns(), wantCols) {
		t.Errorf("columns = %v, want %v", got.Columns(), wantCols)
	}
	if want := []string{"X", "", ""}; !reflect.DeepEqual(got.Column("F_a"), want) {
		t.Errorf("F_a = %v, want %v", got.Column("F_a"), want)
	}
	if want := []string{"Y", "Z", ""}; !reflect.DeepEqual(got.Column("F_b"), want) {
		t.Errorf("F_b = %v, want %v", got.Column("F_b"), want)
	}

	// Source column is untouched.
	if want := []string{"$$aX$$bY", "$$bZ", ""}; !reflect.DeepEqual(got.Column("F"), want) {
		t.Errorf("F = %v, want %v", got.Column("F"), want)
	}
}

func TestExpandColumnMissing(t *testing.T) {
	tbl := table.New([]string{"F"})
	if _, err := ExpandColumn(tbl, "G"); err == nil {
		t.Error("ExpandColumn() on missing column: expected error, got nil")
	}
}

func TestExpandColumnsOrderDeterministic(t *testing.T) {
	tbl := table.New([]string{"F"})
	tbl.Append(table.Row{"F": "$$cC$$aA"})
	tbl.Append(table.Row{"F": "$$bB"})

	got, err := ExpandColumns(tbl, []string{"F"})
	if err != nil {
		t.Fatalf("ExpandColumns() error = %v", err)
	}
	wantCols := []string{"F", "F_a", "F_b", "F_c"}
	if !reflect.DeepEqual(got.Columns(), wantCols) {
		t.Errorf("columns = %v, want %v (codes must be sorted)", got.Columns(), wantCols)
	}
}
