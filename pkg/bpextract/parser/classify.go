package parser

import (
	"strings"

	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
)

// RowKind is the classification of a worksheet row.
type RowKind int

const (
	// RowSkip rows have no name and are ignored.
	RowSkip RowKind = iota
	// RowCategory rows open a new drug class section.
	RowCategory
	// RowData rows are candidate breakpoint rows.
	RowData
)

func (k RowKind) String() string {
	switch k {
	case RowCategory:
		return "category"
	case RowData:
		return "data"
	default:
		return "skip"
	}
}

// ClassifyRow decides whether row is a category header, a data row or noise.
// Whether a data row carries any breakpoint is decided by the caller.
func ClassifyRow(row []string) RowKind {
	name := strings.TrimSpace(cell(row, colName))
	if isMissing(name) {
		return RowSkip
	}
	if isBlankMIC(cell(row, colMICS)) && hasCategoryKeyword(name) {
		return RowCategory
	}
	return RowData
}

func isBlankMIC(v string) bool {
	v = strings.TrimSpace(v)
	if isMissing(v) {
		return true
	}
	for _, label := range refdata.MICHeaderLabels {
		if v == label {
			return true
		}
	}
	return false
}

func hasCategoryKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range refdata.CategoryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isMissing reports whether an already trimmed cell is empty.
func isMissing(v string) bool {
	return v == "" || v == "nan"
}
