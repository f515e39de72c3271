package bpextract

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a workbook with the given sheets and returns its path.
// Rows are written starting at A1.
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, name := range order {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%q) failed: %v", name, err)
		}
		for i, row := range sheets[name] {
			cellName, _ := excelize.CoordinatesToCellName(1, i+1)
			row := row
			if err := f.SetSheetRow(name, cellName, &row); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("DeleteSheet failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "breakpoints.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}
