package parser

import "testing"

func TestLocateHeader(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		scanRows int
		found    bool
		row      int
		hasDisk  bool
	}{
		{
			name:  "empty",
			rows:  nil,
			found: false,
		},
		{
			name: "mic only",
			rows: [][]string{
				{"Enterobacterales"},
				{},
				{"Penicillins", "MIC breakpoints\n(mg/L)"},
				{"", "S ≤", "R >"},
			},
			found: true,
			row:   3,
		},
		{
			name: "with disk columns",
			rows: [][]string{
				{"Title"},
				{"Antimicrobial agent", "S≤", "R >", "ATU", "Disk content (µg)", "Zone diameter breakpoints (mm)"},
			},
			found:   true,
			row:     1,
			hasDisk: true,
		},
		{
			name:    "disk marker",
			rows:    [][]string{{"", "S ≤", "R >", "", "", "S ≥", "R <"}},
			found:   true,
			row:     0,
			hasDisk: true,
		},
		{
			name:  "no-break space",
			rows:  [][]string{{"", "S\u00a0≤"}},
			found: true,
			row:   0,
		},
		{
			name: "outside scan window",
			rows: [][]string{
				{"a"}, {"b"}, {"c"}, {"", "S ≤"},
			},
			scanRows: 3,
			found:    false,
		},
	}

	for _, tt := range tests {
		h, ok := LocateHeader(tt.rows, tt.scanRows)
		if ok != tt.found {
			t.Errorf("%s: found = %v, expected %v", tt.name, ok, tt.found)
			continue
		}
		if !ok {
			continue
		}
		if h.Row != tt.row {
			t.Errorf("%s: row = %d, expected %d", tt.name, h.Row, tt.row)
		}
		if h.HasDisk != tt.hasDisk {
			t.Errorf("%s: hasDisk = %v, expected %v", tt.name, h.HasDisk, tt.hasDisk)
		}
	}
}

func TestLocateHeaderDefaultWindow(t *testing.T) {
	rows := make([][]string, 20)
	rows[15] = []string{"", "S ≤"}
	if _, ok := LocateHeader(rows, 0); ok {
		t.Errorf("header at row 15 should be outside the default window")
	}

	rows[14] = []string{"", "S ≤"}
	h, ok := LocateHeader(rows, 0)
	if !ok || h.Row != 14 {
		t.Errorf("expected header at row 14, got %v (found=%v)", h.Row, ok)
	}
}
