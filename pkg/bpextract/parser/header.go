package parser

import (
	"errors"
	"strings"

	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
	"golang.org/x/text/unicode/norm"
)

// DefaultHeaderScanRows is how many leading rows are searched for the header.
const DefaultHeaderScanRows = 15

// ErrHeaderNotFound indicates no header row was found in the scan window.
var ErrHeaderNotFound = errors.New("header row not found")

// Header describes the column header row of a breakpoint table.
type Header struct {
	// Row is the 0-based index of the header row. Data starts below it.
	Row int
	// HasDisk is true when the table carries disk diffusion columns.
	HasDisk bool
}

// LocateHeader finds the first row within the first scanRows rows whose text
// contains a susceptible-threshold marker ("S ≤"). The same row decides
// whether the sheet has disk diffusion columns.
//
// This is a format heuristic tied to the EUCAST layout; keep changes to it
// here.
func LocateHeader(rows [][]string, scanRows int) (Header, bool) {
	if scanRows <= 0 {
		scanRows = DefaultHeaderScanRows
	}
	for i := 0; i < scanRows && i < len(rows); i++ {
		text := rowText(rows[i])
		if !containsAny(text, refdata.SusceptibleMarkers) {
			continue
		}
		return Header{
			Row:     i,
			HasDisk: containsAny(text, refdata.DiskMarkers),
		}, true
	}
	return Header{}, false
}

// rowText joins the cells of a row with spaces. NFKC folds no-break spaces
// into plain ones so "S ≤" still matches.
func rowText(row []string) string {
	return norm.NFKC.String(strings.Join(row, " "))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
