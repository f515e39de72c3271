package parser

import (
	"testing"

	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
)

func TestResolverCode(t *testing.T) {
	r := NewResolver(refdata.DefaultCodes())

	tests := []struct {
		input    string
		expected string
	}{
		{"ampicillin", "AMP"},
		{"Ampicillin", "AMP"},
		{"Ampicillin1", "AMP"},
		{"Ampicillin-sulbactam", "SAM"},
		{"Benzylpenicillin (meningitis)", "PEN"},
		{"Cefotaxime (indications other than meningitis)2", "CTX"},
		{"Ceftolozane-tazobactam", "C/T"},
		{"Polymyxin B", "PLB"},
		// No exact match: the first table entry contained in the name wins.
		{"Ampicillin iv", "AMP"},
		{"Meropenem-vaborbactam iv", "MEM"},
		// Name contained in a table entry.
		{"Tazobactam", "TZP"},
		{"Sulbactam", "SAM"},
		// Fallback to a synthetic code.
		{"Sulopenem", "SUL"},
		{"Qz", "QZ"},
	}

	for _, tt := range tests {
		if got := r.Code(tt.input); got != tt.expected {
			t.Errorf("Code(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestResolverCodeTableOrder(t *testing.T) {
	first := NewResolver(refdata.CodeTable{{Name: "cef", Code: "AAA"}, {Name: "cefepime", Code: "FEP"}})
	if got := first.Code("cefepime extra"); got != "AAA" {
		t.Errorf("expected first substring match AAA, got %q", got)
	}

	second := NewResolver(refdata.CodeTable{{Name: "cefepime", Code: "FEP"}, {Name: "cef", Code: "AAA"}})
	if got := second.Code("cefepime extra"); got != "FEP" {
		t.Errorf("expected first substring match FEP, got %q", got)
	}
}

func TestResolverCodeEmptyBaseName(t *testing.T) {
	// Names that are only a qualifier or a footnote reduce to an empty base,
	// which matches the first table entry.
	r := NewResolver(refdata.DefaultCodes())
	for _, in := range []string{"(oral)", " (meningitis) 2", "12"} {
		if got := r.Code(in); got != "PEN" {
			t.Errorf("Code(%q) = %q, expected PEN", in, got)
		}
	}

	custom := NewResolver(refdata.CodeTable{{Name: "vancomycin", Code: "VAN"}, {Name: "ampicillin", Code: "AMP"}})
	if got := custom.Code("(iv)"); got != "VAN" {
		t.Errorf("Code(%q) = %q, expected VAN", "(iv)", got)
	}

	if got := NewResolver(nil).Code("(iv)"); got != "" {
		t.Errorf("Code with empty table = %q, expected empty", got)
	}
}

func TestParseIndication(t *testing.T) {
	tests := []struct {
		input    string
		expected string // "" means nil
	}{
		{"Ampicillin", ""},
		{"Cefotaxime (indications other than meningitis)", "non-meningitis"},
		{"Benzylpenicillin (other than meningitis)", "non-meningitis"},
		{"Amoxicillin (uncomplicated UTI only)", "UTI"},
		{"Nitrofurantoin (urinary tract infections)", "UTI"},
		{"Cefotaxime (meningitis)", "meningitis"},
		{"Cefuroxime (oral)", "oral"},
		{"Amoxicillin (IV)", "iv"},
		{"Fosfomycin (iv) (oral)", "iv"},
		{"Empty ()", ""},
	}

	for _, tt := range tests {
		got := ParseIndication(tt.input)
		switch {
		case tt.expected == "" && got != nil:
			t.Errorf("ParseIndication(%q) = %q, expected nil", tt.input, *got)
		case tt.expected != "" && got == nil:
			t.Errorf("ParseIndication(%q) = nil, expected %q", tt.input, tt.expected)
		case got != nil && *got != tt.expected:
			t.Errorf("ParseIndication(%q) = %q, expected %q", tt.input, *got, tt.expected)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ampicillin", "Ampicillin"},
		{"Ampicillin1", "Ampicillin"},
		{" Cefotaxime (meningitis) 12 ", "Cefotaxime (meningitis)"},
		{"Polymyxin B", "Polymyxin B"},
	}

	for _, tt := range tests {
		if got := CleanName(tt.input); got != tt.expected {
			t.Errorf("CleanName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver(refdata.DefaultCodes())
	ab := r.Resolve("Cefuroxime (oral)3")

	if ab.Code != "CXM" {
		t.Errorf("Code = %q, expected CXM", ab.Code)
	}
	if ab.Name != "Cefuroxime (oral)" {
		t.Errorf("Name = %q, expected %q", ab.Name, "Cefuroxime (oral)")
	}
	if ab.Indication == nil || *ab.Indication != IndicationOral {
		t.Errorf("Indication = %v, expected oral", ab.Indication)
	}
}
