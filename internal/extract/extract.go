// Package extract normalizes entity spans from the token-classification
// model and pulls a best-effort monetary amount out of them.
package extract

// #region imports
import (
	"strings"

	"github.com/shopspring/decimal"
)

// #endregion

// #region from-spans

// FromSpans converts raw tagger spans into normalized entities.
// Duplicate kinds collapse to the first occurrence; emission order is kept.
func FromSpans(spans []Span) Entities {
	seen := make(map[Kind]bool, len(spans))
	var ents Entities
	for _, sp := range spans {
		kind := NormalizeKind(sp.Label)
		if seen[kind] {
			continue
		}
		seen[kind] = true
		ents = append(ents, Entity{Kind: kind, Text: sp.Text})
	}
	return ents
}

// #endregion from-spans

// #region amount

// Amount scans entities in emission order and returns the first text that
// parses to a strictly positive amount after stripping every character
// that is not a digit or a decimal point. Absence is a normal outcome,
// reported via the second return, never an error.
func Amount(ents Entities) (decimal.Decimal, bool) {
	for _, ent := range ents {
		cleaned := stripNonNumeric(ent.Text)
		if cleaned == "" {
			continue
		}
		amt, err := decimal.NewFromString(cleaned)
		if err != nil {
			continue
		}
		if amt.IsPositive() {
			return amt, true
		}
	}
	return decimal.Zero, false
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// #endregion amount
