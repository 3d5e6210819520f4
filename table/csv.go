package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV parses a delimited export into a table. The first row is the
// header; duplicate column names are rejected since every transform is
// column-name driven. Short rows are padded with empty cells.
func ReadCSV(r io.Reader, delim rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.FieldsPerRecord = -1 // catalog exports have ragged rows
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input: no header row")
	}

	header := make([]string, len(rows[0]))
	seen := make(map[string]bool, len(rows[0]))
	for i, col := range rows[0] {
		col = strings.TrimSpace(col)
		if seen[col] {
			return nil, fmt.Errorf("duplicate column %q in header", col)
		}
		seen[col] = true
		header[i] = col
	}

	t := New(header)
	t.rows = make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// ReadCSVFile reads a delimited export from disk.
func ReadCSVFile(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f, delim)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// WriteCSV writes the table with its header, preserving column and row
// order.
func (t *Table) WriteCSV(w io.Writer, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	defer writer.Flush()

	if err := writer.Write(t.columns); err != nil {
		return err
	}
	cells := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, col := range t.columns {
			cells[i] = row[col]
		}
		if err := writer.Write(cells); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the table to disk as comma-delimited CSV.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := t.WriteCSV(f, ','); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
