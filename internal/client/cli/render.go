package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

func cardLine(c models.Card) string {
	parts := []string{c.ID, c.Name}
	if c.ManaCost != "" {
		parts = append(parts, c.ManaCost)
	}
	if c.TypeLine != "" {
		parts = append(parts, c.TypeLine)
	}
	if c.Set != "" || c.Rarity != "" {
		parts = append(parts, fmt.Sprintf("[%s %s]", strings.ToUpper(c.Set), c.Rarity))
	}
	return strings.Join(parts, "  ")
}

func printCardDetails(w io.Writer, c models.Card) {
	fmt.Fprintf(w, "%s %s\n", c.Name, c.ManaCost)
	fmt.Fprintln(w, c.TypeLine)
	if c.OracleText != "" {
		fmt.Fprintln(w, c.OracleText)
	}
	if c.Power != "" || c.Toughness != "" {
		fmt.Fprintf(w, "%s/%s\n", c.Power, c.Toughness)
	}
	fmt.Fprintf(w, "%s (%s) #%s %s\n", c.SetName, strings.ToUpper(c.Set), c.CollectorNumber, c.Rarity)
	if c.Prices.USD != "" {
		fmt.Fprintf(w, "$%s\n", c.Prices.USD)
	}
	fmt.Fprintf(w, "id: %s\n", c.ID)
}

func printDeck(w io.Writer, d models.Deck, st models.DeckStats) {
	fmt.Fprintf(w, "%s (%s)\n", d.Name, d.ID)
	if d.Description != "" {
		fmt.Fprintln(w, d.Description)
	}
	fmt.Fprintf(w, "%d cards, %d unique\n", st.TotalCards, st.UniqueCards)

	for _, dc := range d.Cards {
		fmt.Fprintf(w, "%3dx %s\n", dc.Quantity, cardLine(dc.Card))
	}

	if len(st.ManaCurve) > 0 {
		costs := make([]int, 0, len(st.ManaCurve))
		for cmc := range st.ManaCurve {
			costs = append(costs, cmc)
		}
		slices.Sort(costs)

		curve := make([]string, 0, len(costs))
		for _, cmc := range costs {
			curve = append(curve, strconv.Itoa(cmc)+":"+strconv.Itoa(st.ManaCurve[cmc]))
		}
		fmt.Fprintf(w, "curve %s\n", strings.Join(curve, " "))
	}
}
