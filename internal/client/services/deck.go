package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/client/storage"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/id"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
)

// DeckService manages the decks of one user at a time.
//
// Every method takes the owner's userID. With an empty userID all methods
// are silent no-ops except Create, which fails with common.ErrorAuthRequired.
//
// Decks of all users share one stored collection. Writes rewrite the whole
// collection, replacing only the caller's decks. Calls are serialized within
// a service instance; separate processes sharing a store are not coordinated.
type DeckService interface {
	List(ctx context.Context, userID string) []models.Deck
	Create(ctx context.Context, userID, name, description string) (*models.Deck, error)
	Update(ctx context.Context, userID string, deck models.Deck) (*models.Deck, error)
	Delete(ctx context.Context, userID, deckID string) error
	AddCard(ctx context.Context, userID, deckID string, card models.Card, quantity int) (*models.Deck, error)
	RemoveCard(ctx context.Context, userID, deckID, cardID string) (*models.Deck, error)
	SetCurrent(ctx context.Context, userID, deckID string) error
	Current(ctx context.Context, userID string) *models.Deck
	Stats(deck models.Deck) models.DeckStats
}

type deckService struct {
	store  storage.Storage
	logger logging.Logger
	now    func() time.Time

	mu sync.Mutex
	// active deck id per user
	current map[string]string
}

// NewDeckService returns a DeckService over store. A nil now uses time.Now.
func NewDeckService(store storage.Storage, logger logging.Logger, now func() time.Time) DeckService {
	if now == nil {
		now = time.Now
	}
	return &deckService{
		store:   store,
		logger:  logger,
		now:     now,
		current: make(map[string]string),
	}
}

// List returns the user's decks in stored order. Read failures are logged
// and yield an empty list.
func (s *deckService) List(ctx context.Context, userID string) []models.Deck {
	if userID == "" {
		return []models.Deck{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	decks, err := s.userDecks(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "error loading decks", "user_id", userID, "err", err)
		return []models.Deck{}
	}
	return decks
}

func (s *deckService) Create(ctx context.Context, userID, name, description string) (*models.Deck, error) {
	if userID == "" {
		return nil, common.ErrorAuthRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: deck name is required", common.ErrorValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	decks, err := s.userDecks(ctx, userID)
	if err != nil {
		return nil, err
	}

	deckID, err := id.Generate("deck")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	deck := models.Deck{
		ID:          deckID,
		Name:        name,
		Description: description,
		Cards:       []models.DeckCard{},
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.save(ctx, userID, append(decks, deck)); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "deck created", "deck_id", deckID, "user_id", userID)
	return &deck, nil
}

// Update replaces the stored deck with the same ID and refreshes UpdatedAt.
func (s *deckService) Update(ctx context.Context, userID string, deck models.Deck) (*models.Deck, error) {
	if userID == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(ctx, userID, deck)
}

func (s *deckService) Delete(ctx context.Context, userID, deckID string) error {
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	decks, err := s.userDecks(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]models.Deck, 0, len(decks))
	for _, d := range decks {
		if d.ID != deckID {
			kept = append(kept, d)
		}
	}

	if err := s.save(ctx, userID, kept); err != nil {
		return err
	}

	if s.current[userID] == deckID {
		delete(s.current, userID)
	}

	s.logger.Info(ctx, "deck deleted", "deck_id", deckID, "user_id", userID)
	return nil
}

// AddCard adds quantity copies of card, merging with an existing entry.
func (s *deckService) AddCard(ctx context.Context, userID, deckID string, card models.Card, quantity int) (*models.Deck, error) {
	if userID == "" {
		return nil, nil
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", common.ErrorValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.find(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range deck.Cards {
		if deck.Cards[i].Card.ID == card.ID {
			deck.Cards[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		deck.Cards = append(deck.Cards, models.DeckCard{Card: card, Quantity: quantity})
	}

	return s.update(ctx, userID, deck)
}

// RemoveCard drops the entry for cardID regardless of its quantity.
// Removing an absent card still rewrites the deck.
func (s *deckService) RemoveCard(ctx context.Context, userID, deckID, cardID string) (*models.Deck, error) {
	if userID == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.find(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.DeckCard, 0, len(deck.Cards))
	for _, dc := range deck.Cards {
		if dc.Card.ID != cardID {
			kept = append(kept, dc)
		}
	}
	deck.Cards = kept

	return s.update(ctx, userID, deck)
}

// SetCurrent marks deckID as the user's active deck. An empty deckID clears it.
func (s *deckService) SetCurrent(ctx context.Context, userID, deckID string) error {
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if deckID == "" {
		delete(s.current, userID)
		return nil
	}

	if _, err := s.find(ctx, userID, deckID); err != nil {
		return err
	}
	s.current[userID] = deckID
	return nil
}

// Current returns the latest stored state of the active deck, or nil.
func (s *deckService) Current(ctx context.Context, userID string) *models.Deck {
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deckID, ok := s.current[userID]
	if !ok {
		return nil
	}

	deck, err := s.find(ctx, userID, deckID)
	if err != nil {
		s.logger.Warn(ctx, "active deck unavailable", "deck_id", deckID, "err", err)
		delete(s.current, userID)
		return nil
	}
	return &deck
}

// Stats counts copies and builds the mana curve, bucketing each card by the
// floor of its mana value.
func (s *deckService) Stats(deck models.Deck) models.DeckStats {
	st := models.DeckStats{
		UniqueCards: len(deck.Cards),
		ManaCurve:   make(map[int]int),
	}
	for _, dc := range deck.Cards {
		st.TotalCards += dc.Quantity
		st.ManaCurve[int(math.Floor(dc.Card.CMC))] += dc.Quantity
	}
	return st
}

func (s *deckService) update(ctx context.Context, userID string, deck models.Deck) (*models.Deck, error) {
	decks, err := s.userDecks(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOfDeck(decks, deck.ID)
	if idx < 0 {
		return nil, fmt.Errorf("deck %q: %w", deck.ID, common.ErrorNotFound)
	}

	deck = deck.Clone()
	deck.UserID = userID
	deck.UpdatedAt = s.now().UTC()
	decks[idx] = deck

	if err := s.save(ctx, userID, decks); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "deck updated", "deck_id", deck.ID, "cards", len(deck.Cards))
	return &deck, nil
}

func (s *deckService) find(ctx context.Context, userID, deckID string) (models.Deck, error) {
	decks, err := s.userDecks(ctx, userID)
	if err != nil {
		return models.Deck{}, err
	}
	idx := indexOfDeck(decks, deckID)
	if idx < 0 {
		return models.Deck{}, fmt.Errorf("deck %q: %w", deckID, common.ErrorNotFound)
	}
	return decks[idx].Clone(), nil
}

func (s *deckService) loadAll(ctx context.Context) ([]models.Deck, error) {
	all, _, err := storage.GetJSON[[]models.Deck](ctx, s.store, KeyDecks)
	if err != nil {
		return nil, fmt.Errorf("load decks: %w", err)
	}
	return all, nil
}

func (s *deckService) userDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	decks := make([]models.Deck, 0, len(all))
	for _, d := range all {
		if d.UserID == userID {
			decks = append(decks, d)
		}
	}
	return decks, nil
}

// save rewrites the stored collection: other users' decks first, in their
// stored order, then the given decks.
func (s *deckService) save(ctx context.Context, userID string, decks []models.Deck) error {
	all, err := s.loadAll(ctx)
	if err != nil {
		return err
	}

	out := make([]models.Deck, 0, len(all)+len(decks))
	for _, d := range all {
		if d.UserID != userID {
			out = append(out, d)
		}
	}
	out = append(out, decks...)

	if err := storage.SetJSON(ctx, s.store, KeyDecks, out); err != nil {
		return fmt.Errorf("save decks: %w", err)
	}
	return nil
}

func indexOfDeck(decks []models.Deck, deckID string) int {
	for i := range decks {
		if decks[i].ID == deckID {
			return i
		}
	}
	return -1
}
