package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wax/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "wax/1.0"
)

// Client implements domain.CatalogClient against the catalog proxy
// service. It is a stateless request/response wrapper: retries, caching,
// and rate limiting are deliberately left to callers or the transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// DefaultFilters returns the filters every search carries unless the
// user narrows further: vinyl releases only.
func DefaultFilters() domain.SearchFilters {
	return domain.SearchFilters{
		Type:   "release",
		Format: "vinyl",
	}
}

// NewClient creates a new catalog API client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an HTTP request against the catalog service.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, domain.ErrCatalogOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "url", reqURL)
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode}
	}

	return body, nil
}

// Search returns one page of search results.
func (c *Client) Search(ctx context.Context, query string, filters domain.SearchFilters, page, perPage int) (domain.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	setIfPresent(params, "type", filters.Type)
	setIfPresent(params, "title", filters.Title)
	setIfPresent(params, "releaseTitle", filters.ReleaseTitle)
	setIfPresent(params, "credit", filters.Credit)
	setIfPresent(params, "artist", filters.Artist)
	setIfPresent(params, "genre", filters.Genre)
	setIfPresent(params, "style", filters.Style)
	setIfPresent(params, "country", filters.Country)
	setIfPresent(params, "format", filters.Format)
	setIfPresent(params, "track", filters.Track)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("perPage", strconv.Itoa(perPage))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/search", params)
	if err != nil {
		return domain.SearchResult{}, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("search response parse error", "error", err, "bodyLen", len(body))
		return domain.SearchResult{}, fmt.Errorf("failed to parse search response: %w", err)
	}

	result := mapSearchResult(resp)
	c.logger.Debug("search complete",
		"query", query,
		"page", result.Pagination.Page,
		"pages", result.Pagination.Pages,
		"results", len(result.Results))

	return result, nil
}

// GetRelease returns the full record for a single release.
func (c *Client) GetRelease(ctx context.Context, id int) (*domain.Release, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidReleaseID, id)
	}

	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/releases/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var resp releaseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("release response parse error", "error", err, "id", id)
		return nil, fmt.Errorf("failed to parse release response: %w", err)
	}

	rel := mapRelease(resp)
	return &rel, nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
