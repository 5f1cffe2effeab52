package prizepicks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/config"
)

// HTTPClient fetches raw projection payloads from the PrizePicks API.
// The endpoint sits behind Cloudflare; when the direct request is blocked
// and the browser fallback is enabled, the payload is fetched through a
// headless browser instead.
type HTTPClient struct {
	client *http.Client
	cfg    *config.Config
}

func NewHTTPClient(cfg *config.Config) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: cfg.Parser.Timeout,
		},
		cfg: cfg,
	}
}

// FetchProjections returns the raw projections JSON body.
func (c *HTTPClient) FetchProjections(ctx context.Context) ([]byte, error) {
	pp := c.cfg.Parser.PrizePicks

	req, err := http.NewRequestWithContext(ctx, "GET", pp.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("league_id", pp.LeagueID)
	q.Set("per_page", strconv.Itoa(pp.PerPage))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", c.cfg.Parser.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://app.prizepicks.com/")
	req.Header.Set("Origin", "https://app.prizepicks.com")
	for key, value := range c.cfg.Parser.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if pp.UseBrowser {
			slog.Warn("PrizePicks direct request failed, trying headless browser", "error", err)
			return fetchWithBrowser(ctx, req.URL.String())
		}
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if blocked(resp.StatusCode, body) {
		if pp.UseBrowser {
			slog.Warn("PrizePicks request blocked, trying headless browser", "status", resp.StatusCode)
			return fetchWithBrowser(ctx, req.URL.String())
		}
		return nil, fmt.Errorf("request blocked with status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// blocked reports whether the response looks like a Cloudflare challenge
// rather than an API payload.
func blocked(status int, body []byte) bool {
	if status == http.StatusForbidden || status == http.StatusServiceUnavailable {
		return true
	}
	trimmed := strings.TrimSpace(string(body))
	return trimmed != "" && !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[")
}
