package models

import "time"

// DeckCard is one (card, quantity) entry of a deck. Quantity is at least 1
// and a deck holds at most one entry per card ID.
type DeckCard struct {
	Card     Card `json:"card"`
	Quantity int  `json:"quantity"`
}

// Deck is a named, user-owned collection of cards.
type Deck struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Cards       []DeckCard `json:"cards"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Clone returns a copy whose Cards slice can be mutated independently.
func (d Deck) Clone() Deck {
	cards := make([]DeckCard, len(d.Cards))
	copy(cards, d.Cards)
	d.Cards = cards
	return d
}

// DeckStats summarises a deck for display.
type DeckStats struct {
	TotalCards  int
	UniqueCards int
	// ManaCurve maps a whole-number mana value to the number of copies at it.
	ManaCurve map[int]int
}
