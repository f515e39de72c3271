package bpextract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bacteria-search/bpextract/pkg/bpextract/models"
	"github.com/bacteria-search/bpextract/pkg/bpextract/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Extract extracts breakpoint records from an Excel file.
// Sheet-level failures are logged and reported in the result; only a
// workbook that cannot be opened, or a cancelled ctx, returns an error.
func Extract(ctx context.Context, path string, opts Options) (*models.Result, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := ExtractFile(ctx, f, opts)
	if result != nil {
		result.BookName = filepath.Base(path)
	}
	return result, err
}

// ExtractFile extracts breakpoint records from an open workbook. Sheets are
// processed in the order of opts.Sheets; workbook sheets not in the mapping
// are ignored.
func ExtractFile(ctx context.Context, f *excelize.File, opts Options) (*models.Result, error) {
	log := opts.logger()
	params := opts.SheetParams()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}

	result := &models.Result{
		Records: []models.BreakpointRecord{},
	}

	for _, sg := range opts.sheets() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report := models.SheetReport{
			SheetName:     sg.Sheet,
			OrganismGroup: sg.Group,
		}
		sheetLog := log.With(zap.String("sheet", sg.Sheet))

		if !present[sg.Sheet] {
			report.Status = models.SheetNotFound
			report.Err = NewSheetError(sg.Sheet, StageLookup, ErrSheetNotFound)
			sheetLog.Warn("sheet not found")
			result.Sheets = append(result.Sheets, report)
			continue
		}

		records, err := parseSheet(f, sg.Sheet, sg.Group, params)
		if err != nil {
			var sheetErr *SheetError
			if errors.As(err, &sheetErr) && sheetErr.Stage == StageHeader {
				report.Status = models.SheetNoHeader
				sheetLog.Warn("could not find header row")
			} else {
				report.Status = models.SheetUnreadable
				sheetLog.Warn("error reading sheet", zap.Error(err))
			}
			report.Err = err
			result.Sheets = append(result.Sheets, report)
			continue
		}

		report.Status = models.SheetParsed
		report.Records = len(records)
		sheetLog.Info("parsed sheet", zap.Int("breakpoints", len(records)))
		result.Sheets = append(result.Sheets, report)
		result.Records = append(result.Records, records...)
	}

	log.Info("extraction complete", zap.Int("total_breakpoints", len(result.Records)))
	return result, nil
}

func parseSheet(f *excelize.File, sheetName, group string, params parser.SheetParams) ([]models.BreakpointRecord, error) {
	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return nil, NewSheetError(sheetName, StageRead, err)
	}
	records, err := parser.ParseRows(rows, group, params)
	if err != nil {
		return nil, NewSheetError(sheetName, StageHeader, err)
	}
	return records, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}
