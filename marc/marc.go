// Package marc parses the $$-delimited subfield convention used by the
// catalog's wide CSV exports.
//
// This is not a general MARC parser: exports flatten each datafield into
// one cell where every subfield is introduced by "$$" followed by its
// one-character code, e.g. "$$aBērziņš, Jānis,$$d1950-$$4aut".
package marc

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lnb-datalab/recenzijas/table"
)

var subfieldRegex = regexp.MustCompile(`\$\$([a-z0-9])([^$]*)`)

// ParseSubfields parses a compound cell into a code → content map.
// Content is trimmed; segments that trim to nothing are dropped; a
// repeated code keeps the last occurrence. Cells without any $$ marker
// (including "" and the export's literal "NA") yield an empty map.
func ParseSubfields(text string) map[string]string {
	result := map[string]string{}
	if text == "" || text == "NA" {
		return result
	}
	for _, m := range subfieldRegex.FindAllStringSubmatch(text, -1) {
		code, content := m[1], strings.TrimSpace(m[2])
		if content != "" {
			result[code] = content
		}
	}
	return result
}

// ExpandColumn widens a table with one column per subfield code observed
// anywhere in the named compound column. The new columns are named
// "<col>_<code>" and appended in sorted code order so output column order
// is deterministic. Rows whose cell lacks a code get "".
func ExpandColumn(t *table.Table, col string) (*table.Table, error) {
	if !t.HasColumn(col) {
		return nil, fmt.Errorf("compound column %q not present in table", col)
	}

	parsed := make([]map[string]string, t.Len())
	codes := map[string]bool{}
	for i, cell := range t.Column(col) {
		parsed[i] = ParseSubfields(cell)
		for code := range parsed[i] {
			codes[code] = true
		}
	}

	sortedCodes := make([]string, 0, len(codes))
	for code := range codes {
		sortedCodes = append(sortedCodes, code)
	}
	sort.Strings(sortedCodes)

	out := t
	var err error
	for _, code := range sortedCodes {
		values := make([]string, len(parsed))
		for i, subfields := range parsed {
			values[i] = subfields[code]
		}
		out, err = out.WithColumn(col+"_"+code, values)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ExpandColumns expands every named compound column in order.
func ExpandColumns(t *table.Table, cols []string) (*table.Table, error) {
	out := t
	var err error
	for _, col := range cols {
		out, err = ExpandColumn(out, col)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
