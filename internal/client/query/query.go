// Package query turns structured search filters into the card database's
// full-text query syntax. Values are trimmed and passed through verbatim;
// the remote service is the judge of syntax errors.
package query

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

// MatchAll is returned when no filter applies.
const MatchAll = "*"

// Build renders f as a space-separated list of search terms.
//
// Colors are concatenated into a single "colors:" term without a quantifier,
// so exact vs. at-least matching is whatever the remote service decides.
// CMC is exact when f.CMC is set (bounds are then ignored); otherwise each
// set bound yields one inequality term.
func Build(f models.SearchFilters) string {
	var terms []string

	if name := strings.TrimSpace(f.Name); name != "" {
		terms = append(terms, phrase("name", name))
	}

	if len(f.Colors) > 0 {
		terms = append(terms, "colors:"+strings.Join(f.Colors, ""))
	}

	if typ := strings.TrimSpace(f.Type); constrained(typ) {
		terms = append(terms, phrase("type", typ))
	}

	if rarity := strings.TrimSpace(f.Rarity); constrained(rarity) {
		terms = append(terms, "rarity:"+rarity)
	}

	if set := strings.TrimSpace(f.Set); set != "" {
		terms = append(terms, phrase("set", set))
	}

	terms = append(terms, cmcTerms(f)...)

	if len(terms) == 0 {
		return MatchAll
	}
	return strings.Join(terms, " ")
}

func cmcTerms(f models.SearchFilters) []string {
	if f.CMC != nil {
		return []string{"cmc:" + number(*f.CMC)}
	}

	var terms []string
	if f.MinCMC != nil {
		terms = append(terms, "cmc>="+number(*f.MinCMC))
	}
	if f.MaxCMC != nil {
		terms = append(terms, "cmc<="+number(*f.MaxCMC))
	}
	return terms
}

func constrained(v string) bool {
	return v != "" && v != models.AnyValue
}

func phrase(key, value string) string {
	return key + `:"` + value + `"`
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
