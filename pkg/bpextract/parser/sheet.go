package parser

import (
	"strings"

	"github.com/bacteria-search/bpextract/pkg/bpextract/models"
	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
)

// Fixed column positions of the breakpoint table.
const (
	colName   = 0
	colMICS   = 1
	colMICR   = 2
	colDisk   = 4
	colZoneS  = 5
	colZoneR  = 6
	diskWidth = 7
)

// Default record labels.
const (
	DefaultGuideline = "EUCAST 2026"
	DefaultSource    = "clinical"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SheetParams holds parameters for parsing one breakpoint sheet.
type SheetParams struct {
	Guideline      string
	Source         string
	HeaderScanRows int
	Resolver       *Resolver
}

// DefaultSheetParams returns default sheet parsing parameters.
func DefaultSheetParams() SheetParams {
	return SheetParams{
		Guideline:      DefaultGuideline,
		Source:         DefaultSource,
		HeaderScanRows: DefaultHeaderScanRows,
		Resolver:       NewResolver(refdata.DefaultCodes()),
	}
}

// sheetState is the parser state scoped to one worksheet.
type sheetState struct {
	header   Header
	width    int
	group    string
	category *string
}

// ParseRows parses the rows of one worksheet into breakpoint records.
// It returns ErrHeaderNotFound when no header row is found.
func ParseRows(rows [][]string, organismGroup string, params SheetParams) ([]models.BreakpointRecord, error) {
	if params.Resolver == nil {
		params.Resolver = NewResolver(refdata.DefaultCodes())
	}

	header, ok := LocateHeader(rows, params.HeaderScanRows)
	if !ok {
		return nil, ErrHeaderNotFound
	}

	st := &sheetState{
		header: header,
		width:  dataWidth(rows),
		group:  organismGroup,
	}

	var records []models.BreakpointRecord
	for _, row := range rows[header.Row+1:] {
		records = append(records, st.parseRow(row, params)...)
	}
	return records, nil
}

// parseRow returns the zero, one or two records produced by row and
// advances the category context on header rows.
func (st *sheetState) parseRow(row []string, params SheetParams) []models.BreakpointRecord {
	switch ClassifyRow(row) {
	case RowSkip:
		return nil
	case RowCategory:
		category := CleanCategory(cell(row, colName))
		st.category = &category
		return nil
	}

	micS := NormalizeValue(cell(row, colMICS))
	micR := NormalizeValue(cell(row, colMICR))

	var diskDose *string
	var zoneS, zoneR *float64
	if st.header.HasDisk && st.width >= diskWidth {
		diskDose = diskLabel(cell(row, colDisk))
		zoneS = NormalizeValue(cell(row, colZoneS))
		zoneR = NormalizeValue(cell(row, colZoneR))
	}

	if micS == nil && micR == nil && zoneS == nil && zoneR == nil {
		return nil
	}

	ab := params.Resolver.Resolve(strings.TrimSpace(cell(row, colName)))
	base := models.BreakpointRecord{
		Guideline:     params.Guideline,
		OrganismGroup: st.group,
		Antimicrobial: ab.Name,
		AB:            ab.Code,
		Category:      st.category,
		Indication:    ab.Indication,
		Source:        params.Source,
	}

	var out []models.BreakpointRecord
	if micS != nil || micR != nil {
		rec := base
		rec.Method = models.MethodMIC
		rec.Unit = models.MethodMIC.Unit()
		rec.BreakpointS = micS
		rec.BreakpointR = micR
		out = append(out, rec)
	}
	if zoneS != nil || zoneR != nil {
		rec := base
		rec.Method = models.MethodDisk
		rec.Unit = models.MethodDisk.Unit()
		rec.DiskDose = diskDose
		rec.BreakpointS = zoneS
		rec.BreakpointR = zoneR
		out = append(out, rec)
	}
	return out
}

// CleanCategory flattens line breaks and strips trailing footnote digits
// from a drug class header.
func CleanCategory(name string) string {
	name = strings.TrimSpace(lineBreaks.Replace(name))
	return strings.TrimSpace(trailingDigits.ReplaceAllString(name, ""))
}

// diskLabel returns the disk potency text, or nil when blank.
func diskLabel(v string) *string {
	v = strings.TrimSpace(v)
	if isMissing(v) || v == "-" {
		return nil
	}
	return &v
}

// cell returns row[i], or "" for columns past the end of a ragged row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
