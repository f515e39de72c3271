package models

// SheetStatus describes what happened to a configured worksheet.
type SheetStatus string

const (
	// SheetParsed means the header was found and rows were parsed.
	SheetParsed SheetStatus = "parsed"
	// SheetNotFound means the configured sheet is absent from the workbook.
	SheetNotFound SheetStatus = "not_found"
	// SheetUnreadable means reading the sheet failed.
	SheetUnreadable SheetStatus = "unreadable"
	// SheetNoHeader means no header row was found in the scan window.
	SheetNoHeader SheetStatus = "no_header"
)

// SheetReport summarizes one configured worksheet.
type SheetReport struct {
	// SheetName is the worksheet name as configured.
	SheetName string `json:"sheet_name"`
	// OrganismGroup is the group the sheet maps to.
	OrganismGroup string `json:"organism_group"`
	// Status is the outcome for the sheet.
	Status SheetStatus `json:"status"`
	// Records is the number of records emitted for the sheet.
	Records int `json:"records"`
	// Err is the failure cause for non-parsed sheets.
	Err error `json:"-"`
}

// Result is the output of a full extraction run.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Records holds all breakpoints in sheet mapping order.
	Records []BreakpointRecord `json:"records"`
	// Sheets holds one report per configured sheet, in mapping order.
	Sheets []SheetReport `json:"sheets"`
}

// GroupCount is the number of records for one organism group.
type GroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}
