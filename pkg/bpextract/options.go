// Package bpextract extracts clinical breakpoint records from EUCAST
// breakpoint table workbooks.
package bpextract

import (
	"github.com/bacteria-search/bpextract/pkg/bpextract/parser"
	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
	"go.uber.org/zap"
)

// Default file locations, relative to the working directory.
const (
	DefaultInputPath  = "v_16.0__BreakpointTables.xlsx"
	DefaultOutputPath = "clinical_breakpoints_eucast2026.json"
)

// Options configures extraction behavior.
type Options struct {
	// Guideline is the edition label written on every record.
	Guideline string
	// Source is the classification tag written on every record.
	Source string
	// HeaderScanRows limits how many leading rows are searched for the header.
	HeaderScanRows int
	// Sheets lists the worksheets to process, in order.
	Sheets refdata.SheetMapping
	// Codes is the ordered antimicrobial name to code table.
	Codes refdata.CodeTable
	// Logger receives per-sheet progress and warnings. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Guideline:      parser.DefaultGuideline,
		Source:         parser.DefaultSource,
		HeaderScanRows: parser.DefaultHeaderScanRows,
		Sheets:         refdata.DefaultSheets(),
		Codes:          refdata.DefaultCodes(),
	}
}

// SheetParams returns the parser parameters for these options. Empty fields
// fall back to defaults.
func (o Options) SheetParams() parser.SheetParams {
	params := parser.DefaultSheetParams()
	if o.Guideline != "" {
		params.Guideline = o.Guideline
	}
	if o.Source != "" {
		params.Source = o.Source
	}
	if o.HeaderScanRows > 0 {
		params.HeaderScanRows = o.HeaderScanRows
	}
	if len(o.Codes) > 0 {
		params.Resolver = parser.NewResolver(o.Codes)
	}
	return params
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) sheets() refdata.SheetMapping {
	if len(o.Sheets) > 0 {
		return o.Sheets
	}
	return refdata.DefaultSheets()
}
