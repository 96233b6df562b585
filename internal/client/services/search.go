package services

import (
	"context"

	"github.com/dmitrijs2005/deckkeeper/internal/client/client"
	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/client/query"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
)

// SearchService turns structured filters into card database queries.
type SearchService interface {
	Search(ctx context.Context, filters models.SearchFilters, page int) (*models.SearchResult, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	Random(ctx context.Context) (*models.Card, error)
	Named(ctx context.Context, name string) (*models.Card, error)
	Autocomplete(ctx context.Context, prefix string) ([]string, error)
	Sets(ctx context.Context) ([]models.CardSet, error)
}

type searchService struct {
	client client.Client
	logger logging.Logger
}

func NewSearchService(c client.Client, logger logging.Logger) SearchService {
	return &searchService{client: c, logger: logger}
}

// Search runs one page of the query built from filters. Pages start at 1.
func (s *searchService) Search(ctx context.Context, filters models.SearchFilters, page int) (*models.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	q := query.Build(filters)
	s.logger.Debug(ctx, "search", "q", q, "page", page)
	return s.client.Search(ctx, q, page)
}

func (s *searchService) GetCard(ctx context.Context, id string) (*models.Card, error) {
	s.logger.Debug(ctx, "get card", "id", id)
	return s.client.GetCard(ctx, id)
}

func (s *searchService) Random(ctx context.Context) (*models.Card, error) {
	s.logger.Debug(ctx, "random card")
	return s.client.Random(ctx)
}

func (s *searchService) Named(ctx context.Context, name string) (*models.Card, error) {
	s.logger.Debug(ctx, "named card", "name", name)
	return s.client.Named(ctx, name)
}

func (s *searchService) Autocomplete(ctx context.Context, prefix string) ([]string, error) {
	s.logger.Debug(ctx, "autocomplete", "prefix", prefix)
	return s.client.Autocomplete(ctx, prefix)
}

func (s *searchService) Sets(ctx context.Context) ([]models.CardSet, error) {
	s.logger.Debug(ctx, "sets")
	return s.client.Sets(ctx)
}
