package query

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		filters models.SearchFilters
		want    string
	}{
		{name: "empty filters match everything", filters: models.SearchFilters{}, want: "*"},
		{name: "whitespace only is empty", filters: models.SearchFilters{Name: "   ", Type: " ", Set: "\t"}, want: "*"},
		{name: "name is trimmed and quoted", filters: models.SearchFilters{Name: "  Lightning Bolt "}, want: `name:"Lightning Bolt"`},
		{name: "colors concatenated", filters: models.SearchFilters{Colors: []string{"W", "U"}}, want: "colors:WU"},
		{name: "type quoted", filters: models.SearchFilters{Type: "Creature"}, want: `type:"Creature"`},
		{name: "type any ignored", filters: models.SearchFilters{Type: "any"}, want: "*"},
		{name: "rarity unquoted", filters: models.SearchFilters{Rarity: "mythic"}, want: "rarity:mythic"},
		{name: "rarity any ignored", filters: models.SearchFilters{Rarity: "any"}, want: "*"},
		{name: "set quoted verbatim", filters: models.SearchFilters{Set: " not a set! "}, want: `set:"not a set!"`},
		{name: "exact cmc", filters: models.SearchFilters{CMC: f64(3)}, want: "cmc:3"},
		{name: "fractional cmc", filters: models.SearchFilters{CMC: f64(0.5)}, want: "cmc:0.5"},
		{name: "min only", filters: models.SearchFilters{MinCMC: f64(2)}, want: "cmc>=2"},
		{name: "max only", filters: models.SearchFilters{MaxCMC: f64(5)}, want: "cmc<=5"},
		{name: "both bounds", filters: models.SearchFilters{MinCMC: f64(2), MaxCMC: f64(5)}, want: "cmc>=2 cmc<=5"},
		{name: "zero is a real bound", filters: models.SearchFilters{MaxCMC: f64(0)}, want: "cmc<=0"},
		{
			name: "all fields in order",
			filters: models.SearchFilters{
				Name: "bolt", Colors: []string{"R"}, Type: "Instant", Rarity: "common",
				Set: "lea", MinCMC: f64(1), MaxCMC: f64(1),
			},
			want: `name:"bolt" colors:R type:"Instant" rarity:common set:"lea" cmc>=1 cmc<=1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.filters))
		})
	}
}

func countInequalities(q string) (ge, le int) {
	for _, term := range strings.Fields(q) {
		switch {
		case strings.HasPrefix(term, "cmc>="):
			ge++
		case strings.HasPrefix(term, "cmc<="):
			le++
		}
	}
	return ge, le
}

func TestBuild_CMCModesAreExclusive(t *testing.T) {
	bounds := []*float64{nil, f64(0), f64(2), f64(7.5)}

	for _, exact := range bounds {
		for _, lo := range bounds {
			for _, hi := range bounds {
				q := Build(models.SearchFilters{Name: "x", CMC: exact, MinCMC: lo, MaxCMC: hi})
				ge, le := countInequalities(q)

				switch {
				case exact != nil:
					assert.Zero(t, ge+le, q)
					assert.Contains(t, q, "cmc:"+number(*exact))
				case lo != nil && hi != nil:
					assert.Equal(t, 1, ge, q)
					assert.Equal(t, 1, le, q)
					assert.Contains(t, q, "cmc>="+number(*lo))
					assert.Contains(t, q, "cmc<="+number(*hi))
				case lo != nil || hi != nil:
					assert.Equal(t, 1, ge+le, q)
				default:
					assert.Zero(t, ge+le, q)
				}
			}
		}
	}
}
