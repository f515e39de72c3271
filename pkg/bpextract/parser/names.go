package parser

import (
	"regexp"
	"strings"

	"github.com/bacteria-search/bpextract/pkg/bpextract/refdata"
)

var (
	parenGroup      = regexp.MustCompile(`\(([^)]+)\)`)
	parenQualifiers = regexp.MustCompile(`\s*\([^)]*\)`)
)

// Canonical indication labels.
const (
	IndicationNonMeningitis = "non-meningitis"
	IndicationUTI           = "UTI"
	IndicationMeningitis    = "meningitis"
	IndicationOral          = "oral"
)

// Antimicrobial is the resolved form of a raw agent name.
type Antimicrobial struct {
	// Code is the short antimicrobial code.
	Code string
	// Indication is the clinical qualifier from the name, nil if none.
	Indication *string
	// Name is the display name with trailing footnote digits removed.
	Name string
}

// Resolver maps raw antimicrobial names to codes using an ordered table.
type Resolver struct {
	codes refdata.CodeTable
}

// NewResolver returns a Resolver over codes. Table order decides which
// entry wins a substring match.
func NewResolver(codes refdata.CodeTable) *Resolver {
	return &Resolver{codes: codes}
}

// Resolve derives the code, indication and display name for raw.
// It never fails; unknown names get a synthetic three-letter code.
func (r *Resolver) Resolve(raw string) Antimicrobial {
	return Antimicrobial{
		Code:       r.Code(raw),
		Indication: ParseIndication(raw),
		Name:       CleanName(raw),
	}
}

// Code returns the short code for raw.
func (r *Resolver) Code(raw string) string {
	base := strings.ToLower(strings.TrimSpace(raw))
	base = strings.TrimSpace(parenQualifiers.ReplaceAllString(base, ""))
	base = strings.TrimSpace(trailingDigits.ReplaceAllString(base, ""))

	if code, ok := r.codes.Exact(base); ok {
		return code
	}
	// An empty base is contained in every entry, so it takes the first code.
	for _, e := range r.codes {
		if strings.Contains(base, e.Name) || strings.Contains(e.Name, base) {
			return e.Code
		}
	}

	runes := []rune(base)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// ParseIndication extracts the clinical indication from the first
// parenthesised group of name.
func ParseIndication(name string) *string {
	m := parenGroup.FindStringSubmatch(name)
	if m == nil {
		return nil
	}
	text := strings.ToLower(m[1])

	var indication string
	switch {
	case strings.Contains(text, "other than meningitis"), strings.Contains(text, "indications other"):
		indication = IndicationNonMeningitis
	case strings.Contains(text, "uti"), strings.Contains(text, "urinary"):
		indication = IndicationUTI
	case strings.Contains(text, "meningitis"):
		indication = IndicationMeningitis
	case strings.Contains(text, "oral"):
		indication = IndicationOral
	default:
		indication = text
	}
	return &indication
}

// CleanName strips trailing footnote digits and surrounding whitespace.
func CleanName(name string) string {
	return strings.TrimSpace(trailingDigits.ReplaceAllString(strings.TrimSpace(name), ""))
}
