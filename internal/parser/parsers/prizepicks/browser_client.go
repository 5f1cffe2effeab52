package prizepicks

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const browserFetchTimeout = 60 * time.Second

// fetchWithBrowser loads the API URL in a headless browser and reads the
// rendered body text. The browser session passes the Cloudflare challenge
// that blocks plain HTTP clients.
func fetchWithBrowser(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, browserFetchTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		if os.Getenv("PRIZEPICKS_DEBUG") == "1" {
			fmt.Printf("chromedp: "+format, v...)
		}
	}))
	defer cancel()

	var bodyText string
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		// Give the Cloudflare challenge time to clear.
		chromedp.Sleep(3*time.Second),
		chromedp.Evaluate(`document.body.innerText`, &bodyText),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp navigation: %w", err)
	}

	trimmed := strings.TrimSpace(bodyText)
	if trimmed == "" {
		return nil, fmt.Errorf("browser fetch returned empty body for %s", url)
	}
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		// Challenge may still be settling; wait once more and retry the read.
		err = chromedp.Run(ctx,
			chromedp.Sleep(5*time.Second),
			chromedp.Evaluate(`document.body.innerText`, &bodyText),
		)
		if err != nil {
			return nil, fmt.Errorf("chromedp wait: %w", err)
		}
		trimmed = strings.TrimSpace(bodyText)
		if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
			return nil, fmt.Errorf("browser fetch did not produce JSON for %s", url)
		}
	}

	return []byte(trimmed), nil
}
