package draftkings

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/config"
)

// HTTPClient fetches raw subcategory market payloads from the DraftKings
// sportsbook content API.
type HTTPClient struct {
	client  *http.Client
	cfg     *config.Config
	baseURL string
}

func NewHTTPClient(cfg *config.Config) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: cfg.Parser.Timeout,
		},
		cfg:     cfg,
		baseURL: cfg.Parser.DraftKings.BaseURL,
	}
}

// FetchSubcategory returns the raw JSON body for one league subcategory
// (e.g. significant strikes or going the distance).
func (c *HTTPClient) FetchSubcategory(ctx context.Context, subcategoryID string) ([]byte, error) {
	league := c.cfg.Parser.DraftKings.LeagueID

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/leagueSubcategory/v1/markets", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("isBatchable", "false")
	q.Set("templateVars", league+","+subcategoryID)
	q.Set("eventsQuery", fmt.Sprintf(
		"$filter=leagueId eq '%s' AND clientMetadata/Subcategories/any(s: s/Id eq '%s')",
		league, subcategoryID))
	q.Set("marketsQuery", fmt.Sprintf(
		"$filter=clientMetadata/subCategoryId eq '%s' AND tags/all(t: t ne 'SportcastBetBuilder')",
		subcategoryID))
	q.Set("include", "Events")
	q.Set("entity", "events")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", c.cfg.Parser.UserAgent)
	for key, value := range c.cfg.Parser.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body []byte
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()

		body, err = io.ReadAll(gzReader)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzipped body: %w", err)
		}
	} else {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
	}

	return body, nil
}
