package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL         = "https://api.scryfall.com"
	DefaultTimeout         = 10 * time.Second
	DefaultRequestInterval = 100 * time.Millisecond
	DefaultUserAgent       = "deckkeeper/1.0"

	minAutocompleteLen = 2
	maxErrorBody       = 64 << 10
)

// HTTPClient implements Client over the card database REST API.
type HTTPClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	logger    logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithRequestInterval paces requests at most one per d. Zero disables pacing.
func WithRequestInterval(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) { c.userAgent = ua }
}

// WithHTTPClient replaces the transport, keeping the configured timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		timeout := c.http.Timeout
		c.http = h
		if c.http.Timeout == 0 {
			c.http.Timeout = timeout
		}
	}
}

func NewHTTPClient(baseURL string, logger logging.Logger, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
		limiter:   rate.NewLimiter(rate.Every(DefaultRequestInterval), 1),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listResponse is the upstream envelope for paged collections.
type listResponse[T any] struct {
	Data       []T  `json:"data"`
	HasMore    bool `json:"has_more"`
	TotalCards int  `json:"total_cards"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

func (c *HTTPClient) Search(ctx context.Context, query string, page int) (*models.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("format", "json")
	params.Set("order", "name")

	var resp listResponse[models.Card]
	err := c.get(ctx, "search", "/cards/search", params, &resp)
	if errors.Is(err, common.ErrorNotFound) {
		// no matches
		return &models.SearchResult{Items: []models.Card{}}, nil
	}
	if err != nil {
		return nil, err
	}

	items := resp.Data
	if items == nil {
		items = []models.Card{}
	}
	return &models.SearchResult{
		Items:      items,
		HasMore:    resp.HasMore,
		TotalCount: resp.TotalCards,
	}, nil
}

func (c *HTTPClient) GetCard(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	if err := c.get(ctx, "get card", "/cards/"+url.PathEscape(id), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *HTTPClient) Random(ctx context.Context) (*models.Card, error) {
	var card models.Card
	if err := c.get(ctx, "random card", "/cards/random", nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *HTTPClient) Named(ctx context.Context, exact string) (*models.Card, error) {
	params := url.Values{}
	params.Set("exact", exact)

	var card models.Card
	if err := c.get(ctx, "named card", "/cards/named", params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Autocomplete returns name suggestions for q. It never fails: short
// prefixes skip the request and upstream errors yield an empty list.
func (c *HTTPClient) Autocomplete(ctx context.Context, q string) ([]string, error) {
	if utf8.RuneCountInString(q) < minAutocompleteLen {
		return []string{}, nil
	}
	params := url.Values{}
	params.Set("q", q)

	var resp listResponse[string]
	if err := c.get(ctx, "autocomplete", "/cards/autocomplete", params, &resp); err != nil {
		c.logger.Warn(ctx, "autocomplete failed", "q", q, "err", err)
		return []string{}, nil
	}
	if resp.Data == nil {
		return []string{}, nil
	}
	return resp.Data, nil
}

func (c *HTTPClient) Sets(ctx context.Context) ([]models.CardSet, error) {
	var resp listResponse[models.CardSet]
	if err := c.get(ctx, "sets", "/sets", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []models.CardSet{}, nil
	}
	return resp.Data, nil
}

func (c *HTTPClient) get(ctx context.Context, op, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("rate limit: %w", err)}
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	c.logger.Debug(ctx, "card service request", "op", op, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, common.ErrorNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Op: op, Status: resp.StatusCode}
		var body errorResponse
		if json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body) == nil {
			e.Details = body.Details
		}
		return e
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
