package client

import (
	"context"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
)

type Client interface {
	Search(ctx context.Context, query string, page int) (*models.SearchResult, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	Random(ctx context.Context) (*models.Card, error)
	Named(ctx context.Context, exact string) (*models.Card, error)
	Autocomplete(ctx context.Context, q string) ([]string, error)
	Sets(ctx context.Context) ([]models.CardSet, error)
}
