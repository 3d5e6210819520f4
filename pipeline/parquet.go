package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/lnb-datalab/recenzijas/table"
)

// CanonicalRecord is the fixed-schema projection of a kept review record
// used for Parquet output. CSV output carries every retained column;
// Parquet carries the harmonized canonical fields.
type CanonicalRecord struct {
	Reviewer               string `parquet:"reviewer,optional"`
	Persons                string `parquet:"persons,optional"`
	Title                  string `parquet:"title,optional"`
	ReviewedAuthor         string `parquet:"reviewed_author,optional"`
	ReviewedWork           string `parquet:"reviewed_work,optional"`
	PublisherOrInstitution string `parquet:"publisher_or_institution,optional"`
	ReviewType             string `parquet:"review_type,optional"`
	Source                 string `parquet:"source,optional"`
	URL                    string `parquet:"url,optional"`
}

// IsParquetPath reports whether the output path selects Parquet output.
func IsParquetPath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".parquet"
}

// WriteParquetFile writes the kept table's canonical columns as Parquet.
func WriteParquetFile(path string, t *table.Table) error {
	records := make([]CanonicalRecord, t.Len())
	for i := range records {
		row := t.Row(i)
		records[i] = CanonicalRecord{
			Reviewer:               row[ColAutors+"_a"],
			Persons:                row[ColVisasPersonas],
			Title:                  row[ColRakstsAB],
			ReviewedAuthor:         row[ColDarbaAutors],
			ReviewedWork:           row[ColDarbs],
			PublisherOrInstitution: row[ColPublicetajs],
			ReviewType:             row[ColRecenzijasTips],
			Source:                 row[ColAvots+"_t"],
			URL:                    row[ColAdrese+"_u"],
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	writer := parquet.NewGenericWriter[CanonicalRecord](f)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return f.Close()
}
