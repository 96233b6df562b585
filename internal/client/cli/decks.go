package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

func (a *App) Decks(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	decks := a.deckService.List(ctx, a.userID())
	if len(decks) == 0 {
		fmt.Fprintln(a.out, "No decks yet. Create one with 'newdeck <name>'.")
		return nil
	}

	var currentID string
	if cur := a.deckService.Current(ctx, a.userID()); cur != nil {
		currentID = cur.ID
	}

	for _, d := range decks {
		marker := " "
		if d.ID == currentID {
			marker = "*"
		}
		st := a.deckService.Stats(d)
		fmt.Fprintf(a.out, "%s %s  %s  (%d cards)\n", marker, d.ID, d.Name, st.TotalCards)
	}
	return nil
}

// NewDeck creates a deck named by args, prompting for the name when args
// is empty and always prompting for an optional description.
func (a *App) NewDeck(ctx context.Context, args []string) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = getSimpleText(a.reader, "Enter deck name", a.out); err != nil {
			return err
		}
	}
	description, err := getMultiline(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	d, err := a.deckService.Create(ctx, a.userID(), name, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deck %q created (%s).\n", d.Name, d.ID)
	return nil
}

func (a *App) DeleteDeck(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "deldeck <deck-id>"}
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	if err := a.deckService.Delete(ctx, a.userID(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deck %s deleted.\n", args[0])
	return nil
}

// Use makes a deck the target of add and remove.
func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "use <deck-id>"}
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	if err := a.deckService.SetCurrent(ctx, a.userID(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Now editing %s.\n", args[0])
	return nil
}

func (a *App) ShowDeck(ctx context.Context) error {
	d, err := a.currentDeck(ctx)
	if err != nil {
		return err
	}
	printDeck(a.out, *d, a.deckService.Stats(*d))
	return nil
}

// AddCard adds a card to the active deck. The card is taken from the last
// search results when present there, otherwise fetched by id.
func (a *App) AddCard(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError{usage: "add <card-id> [qty]"}
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return usageError{usage: "add <card-id> [qty]"}
		}
		qty = n
	}

	d, err := a.currentDeck(ctx)
	if err != nil {
		return err
	}

	c, err := a.lookupCard(ctx, args[0])
	if err != nil {
		return err
	}

	updated, err := a.deckService.AddCard(ctx, a.userID(), d.ID, *c, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%dx %s added to %s.\n", qty, c.Name, updated.Name)
	return nil
}

func (a *App) RemoveCard(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "remove <card-id>"}
	}

	d, err := a.currentDeck(ctx)
	if err != nil {
		return err
	}

	name := args[0]
	for _, dc := range d.Cards {
		if dc.Card.ID == args[0] {
			name = dc.Card.Name
			break
		}
	}

	updated, err := a.deckService.RemoveCard(ctx, a.userID(), d.ID, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s removed from %s.\n", name, updated.Name)
	return nil
}

func (a *App) currentDeck(ctx context.Context) (*models.Deck, error) {
	if err := a.requireSession(ctx); err != nil {
		return nil, err
	}
	d := a.deckService.Current(ctx, a.userID())
	if d == nil {
		return nil, usageError{usage: "use <deck-id> to pick a deck first (see 'decks')"}
	}
	return d, nil
}

func (a *App) lookupCard(ctx context.Context, cardID string) (*models.Card, error) {
	if a.lastResult != nil {
		for i := range a.lastResult.Items {
			if a.lastResult.Items[i].ID == cardID {
				c := a.lastResult.Items[i]
				return &c, nil
			}
		}
	}
	return a.searchService.GetCard(ctx, cardID)
}
