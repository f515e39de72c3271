package bpextract

import (
	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
)

// SheetPresence reports whether a worksheet appears in the mapping and in
// the workbook.
type SheetPresence struct {
	SheetName     string
	OrganismGroup string // empty for sheets outside the mapping
	InWorkbook    bool
	InMapping     bool
}

// InspectSheets compares the configured sheet mapping with the sheets of
// the workbook at path. Mapped sheets come first in mapping order, then
// unmapped workbook sheets in workbook order.
func InspectSheets(path string, mapping refdata.SheetMapping) ([]SheetPresence, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return compareSheets(f.GetSheetList(), mapping), nil
}

func compareSheets(workbook []string, mapping refdata.SheetMapping) []SheetPresence {
	present := make(map[string]bool, len(workbook))
	for _, name := range workbook {
		present[name] = true
	}

	var out []SheetPresence
	for _, sg := range mapping {
		out = append(out, SheetPresence{
			SheetName:     sg.Sheet,
			OrganismGroup: sg.Group,
			InWorkbook:    present[sg.Sheet],
			InMapping:     true,
		})
	}
	for _, name := range workbook {
		if _, ok := mapping.Lookup(name); ok {
			continue
		}
		out = append(out, SheetPresence{
			SheetName:  name,
			InWorkbook: true,
		})
	}
	return out
}
