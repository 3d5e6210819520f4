package pipeline

import "fmt"

// Column names of the catalog's wide CSV export. The export schema is
// fixed; a missing compound column is a shape error, not something to
// degrade around.
const (
	ColAutors        = "AUTORS (100)"
	ColRaksts        = "RAKSTA NOSAUKUMS (245)"
	ColTemats        = "PRIEKŠMETS - TEMATS (650)"
	ColZanrs         = "PRIEKŠMETS - ŽANRS (655)"
	ColRecenzets787  = "RECENZĒTAIS IZDEVUMS (787)"
	ColRecenzets500  = "RECENZĒTAIS IZDEVUMS (500)"
	ColFilmaIzrade   = "RECENZĒTĀ FILMA VAI IZRĀDE (630)"
	ColAvots         = "AVOTA NOSAUKUMS (773)"
	ColAdrese        = "ELEKTRONISKĀ ADRESE (856)"
	ColPapildraksts  = "PAPILDRAKSTS (700)"
	ColPapildraksts2 = "PAPILDRAKSTS - 2 (700)"
	ColInstitucija   = "PRIEKŠMETS - INSTITŪCIJA (610)"
)

// Harmonized output columns.
const (
	ColVisasPersonas  = "visas_personas"
	ColRakstsAB       = "RAKSTA NOSAUKUMS (245)_ab"
	ColDarbaAutors    = "recenzeta_darba_autors"
	ColDarbs          = "recenzetais_darbs"
	ColPublicetajs    = "publicetajs_vai_institucija"
	ColRecenzijasTips = "recenzijas_tips"
	ColFilterReason   = "filter_reason"
)

// Intermediate columns used only to resolve the canonical fields; dropped
// before output.
var helperColumns = []string{
	"(245)_director",
	"(245)_title",
	"(500)_author",
	"(500)_title",
	"(500)_publisher",
	"(787)_author",
	"(787)_title",
	"(787)_publisher",
}

// DropColumns are removed from the export before any processing.
var DropColumns = []string{
	"UDK (080)",
	"UDK - 2 (080)",
	"ILUSTRĀCIJAS (300)",
	"SATURA VEIDS (336)",
	"SATURA VEIDS 2 (336)",
	"BIBLIOGRĀFIJA (504)",
}

// CompoundColumns carry $$-delimited subfields and get expanded.
var CompoundColumns = []string{
	ColAutors,
	ColRaksts,
	ColTemats,
	ColZanrs,
	ColRecenzets787,
	ColRecenzets500,
	ColFilmaIzrade,
	ColAvots,
	ColAdrese,
	ColPapildraksts,
	ColPapildraksts2,
	UncontrolledNameColumn(1),
	UncontrolledNameColumn(2),
	UncontrolledNameColumn(3),
	UncontrolledNameColumn(4),
	UncontrolledNameColumn(5),
	ColInstitucija,
}

// UncontrolledNameColumn returns the i-th (1-based) uncontrolled personal
// name column of the export ("NEKONTROLĒTS PERSONAS VĀRDS (720)",
// "NEKONTROLĒTS PERSONAS VĀRDS - 2 (720)", ...).
func UncontrolledNameColumn(i int) string {
	if i == 1 {
		return "NEKONTROLĒTS PERSONAS VĀRDS (720)"
	}
	return fmt.Sprintf("NEKONTROLĒTS PERSONAS VĀRDS - %d (720)", i)
}

// uncontrolledNameSubfieldColumns lists the expanded subfield columns of
// all five uncontrolled name fields.
func uncontrolledNameSubfieldColumns() []string {
	var cols []string
	for i := 1; i <= 5; i++ {
		base := UncontrolledNameColumn(i)
		for _, sub := range []string{"_4", "_a", "_c", "_d"} {
			cols = append(cols, base+sub)
		}
	}
	return cols
}

// nameColumns are the expanded name subfields normalized to direct order
// and collected into visas_personas, in priority order.
func nameColumns() []string {
	cols := []string{
		ColAutors + "_a",
		ColPapildraksts + "_a",
		ColPapildraksts2 + "_a",
	}
	for i := 1; i <= 5; i++ {
		cols = append(cols, UncontrolledNameColumn(i)+"_a")
	}
	return cols
}

// processedColumns is the analysis-facing column selection applied before
// filtering. Columns the expansion did not produce (a subfield code never
// observed) are skipped at selection time.
func processedColumns() []string {
	cols := []string{
		// reviewer
		ColAutors + "_4",
		ColAutors + "_a",
		ColAutors + "_c",
		ColAutors + "_d",
		// additional entries
		ColPapildraksts + "_4",
		ColPapildraksts + "_a",
		ColPapildraksts + "_c",
		ColPapildraksts + "_d",
		ColPapildraksts2 + "_4",
		ColPapildraksts2 + "_a",
		ColPapildraksts2 + "_c",
		ColPapildraksts2 + "_d",
		// article title
		ColRaksts + "_a",
		ColRaksts + "_b",
		ColRaksts + "_c",
		// reviewed edition, structured and legacy note
		ColRecenzets787 + "_a",
		ColRecenzets787 + "_t",
		ColRecenzets787 + "_d",
		ColRecenzets500 + "_a",
		// reviewed film or performance
		ColFilmaIzrade + "_a",
		ColFilmaIzrade + "_g",
		ColFilmaIzrade + "_f",
		// source publication
		ColAvots + "_t",
		ColAvots + "_g",
		// url
		ColAdrese + "_u",
		// subject and genre
		ColTemats + "_a",
		ColZanrs + "_a",
		ColZanrs + "_x",
		// institution
		ColInstitucija + "_a",
		ColInstitucija + "_g",
	}
	return append(cols, uncontrolledNameSubfieldColumns()...)
}
