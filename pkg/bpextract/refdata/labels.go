package refdata

// CategoryKeywords mark a row as a drug-class header when its MIC column is
// blank. The list is known to be incomplete: class names without one of
// these words are parsed as data rows.
var CategoryKeywords = []string{
	"penicillin",
	"cephalosporin",
	"carbapenem",
	"aminoglycoside",
	"fluoroquinolone",
	"macrolide",
	"glycopeptide",
	"tetracycline",
	"various",
	"other",
	"anti-mrsa",
	"agent",
}

// MICHeaderLabels are second-column texts that still count as "blank" when
// deciding whether a row is a category header.
var MICHeaderLabels = []string{
	"MIC breakpoints \n(mg/L)",
	"MIC breakpoints",
}

// Header markers searched for when locating the column header row.
var (
	SusceptibleMarkers = []string{"S ≤", "S≤"}
	DiskMarkers        = []string{"S ≥", "Zone"}
)
