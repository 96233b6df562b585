package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records calls and returns canned values.
type fakeClient struct {
	SearchRet *models.SearchResult
	SearchErr error
	CardRet   *models.Card
	CardErr   error
	NamesRet  []string
	SetsRet   []models.CardSet

	LastQuery string
	LastPage  int
	LastID    string
	LastName  string
	LastQ     string
}

func (f *fakeClient) Search(ctx context.Context, q string, page int) (*models.SearchResult, error) {
	f.LastQuery, f.LastPage = q, page
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) GetCard(ctx context.Context, id string) (*models.Card, error) {
	f.LastID = id
	return f.CardRet, f.CardErr
}

func (f *fakeClient) Random(ctx context.Context) (*models.Card, error) {
	return f.CardRet, f.CardErr
}

func (f *fakeClient) Named(ctx context.Context, exact string) (*models.Card, error) {
	f.LastName = exact
	return f.CardRet, f.CardErr
}

func (f *fakeClient) Autocomplete(ctx context.Context, q string) ([]string, error) {
	f.LastQ = q
	return f.NamesRet, nil
}

func (f *fakeClient) Sets(ctx context.Context) ([]models.CardSet, error) {
	return f.SetsRet, nil
}

func ptr(v float64) *float64 { return &v }

func TestSearch_BuildsQuery(t *testing.T) {
	fc := &fakeClient{SearchRet: &models.SearchResult{Items: []models.Card{{ID: "c1"}}, TotalCount: 1}}
	svc := NewSearchService(fc, logging.Nop())

	res, err := svc.Search(context.Background(), models.SearchFilters{
		Name:   " bolt ",
		Colors: []string{"R"},
		MinCMC: ptr(1),
		MaxCMC: ptr(3),
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalCount)
	assert.Equal(t, `name:"bolt" colors:R cmc>=1 cmc<=3`, fc.LastQuery)
	assert.Equal(t, 2, fc.LastPage)
}

func TestSearch_EmptyFiltersAndPage(t *testing.T) {
	fc := &fakeClient{SearchRet: &models.SearchResult{}}
	svc := NewSearchService(fc, logging.Nop())

	_, err := svc.Search(context.Background(), models.SearchFilters{Rarity: models.AnyValue}, -3)
	require.NoError(t, err)
	assert.Equal(t, "*", fc.LastQuery)
	assert.Equal(t, 1, fc.LastPage)
}

func TestSearch_PassThroughs(t *testing.T) {
	fc := &fakeClient{
		CardRet:  &models.Card{ID: "c1", Name: "Lightning Bolt"},
		NamesRet: []string{"Lightning Bolt"},
		SetsRet:  []models.CardSet{{Code: "lea"}},
	}
	svc := NewSearchService(fc, logging.Nop())
	ctx := context.Background()

	c, err := svc.GetCard(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", fc.LastID)
	assert.Equal(t, "Lightning Bolt", c.Name)

	_, err = svc.Named(ctx, "Lightning Bolt")
	require.NoError(t, err)
	assert.Equal(t, "Lightning Bolt", fc.LastName)

	_, err = svc.Random(ctx)
	require.NoError(t, err)

	names, err := svc.Autocomplete(ctx, "li")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lightning Bolt"}, names)
	assert.Equal(t, "li", fc.LastQ)

	sets, err := svc.Sets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lea", sets[0].Code)

	fc.CardErr = common.ErrorNotFound
	_, err = svc.GetCard(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
