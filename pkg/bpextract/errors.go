package bpextract

import (
	"errors"
	"fmt"

	"github.com/bacteria-search/bpextract/pkg/bpextract/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a configured sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrHeaderNotFound indicates no header row was found on a sheet.
var ErrHeaderNotFound = parser.ErrHeaderNotFound

// Sheet processing stages reported in SheetError.
const (
	StageLookup = "lookup"
	StageRead   = "read"
	StageHeader = "header"
)

// SheetError represents a failure confined to one worksheet.
type SheetError struct {
	SheetName string
	Stage     string // "lookup", "read", "header"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
