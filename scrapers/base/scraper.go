package base

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent = "Mozilla/5.0 (compatible; ToniesCollectionBot/1.0)"

	// maxPageSize caps how much of a response body is read.
	maxPageSize = 10 << 20
)

// BaseScraper handles common fetching logic
type BaseScraper struct {
	Client          *http.Client
	Timeout         time.Duration
	BrowserFallback bool

	// Overridable for tests.
	fetchChromeDP func(ctx context.Context, url string) (string, error)
	fetchSelenium func(ctx context.Context, url string) (string, error)
}

// NewBaseScraper creates a new BaseScraper instance
func NewBaseScraper(timeout time.Duration, browserFallback bool) *BaseScraper {
	b := &BaseScraper{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		Timeout:         timeout,
		BrowserFallback: browserFallback,
	}
	b.fetchChromeDP = b.FetchHTMLChromeDP
	b.fetchSelenium = b.FetchHTMLSelenium
	return b
}

// FetchDocument fetches the page HTML, trying plain HTTP first and headless
// browsers after it when the validator rejects what came back.
func (b *BaseScraper) FetchDocument(ctx context.Context, url string, validator func(html string) bool) (string, error) {
	// Strategy 1: HTTP Client (Fastest)
	html, err := b.FetchHTML(ctx, url)
	if err == nil {
		if !IsBlockedPage(html) && validator(html) {
			fmt.Printf("[BaseScraper] HTTP Success: %s\n", url)
			return html, nil
		}
		fmt.Printf("[BaseScraper] HTTP yielded invalid content (validator failed), trying fallbacks...\n")
	} else {
		fmt.Printf("[BaseScraper] HTTP Failed: %v\n", err)
	}

	if !b.BrowserFallback {
		if err != nil {
			return "", err
		}
		// The page was fetched fine; let the caller decide what an empty parse means.
		return html, nil
	}

	// Strategy 2: ChromeDP (Headless)
	fmt.Printf("[BaseScraper] Trying ChromeDP: %s\n", url)
	rendered, cdpErr := b.fetchChromeDP(ctx, url)
	if cdpErr == nil && validator(rendered) {
		fmt.Printf("[BaseScraper] ChromeDP Success\n")
		return rendered, nil
	}
	if cdpErr != nil {
		fmt.Printf("[BaseScraper] ChromeDP Failed: %v\n", cdpErr)
	}

	// Strategy 3: Selenium (Full Browser)
	fmt.Printf("[BaseScraper] Trying Selenium: %s\n", url)
	rendered, selErr := b.fetchSelenium(ctx, url)
	if selErr == nil && validator(rendered) {
		fmt.Printf("[BaseScraper] Selenium Success\n")
		return rendered, nil
	}
	if selErr != nil {
		fmt.Printf("[BaseScraper] Selenium Failed: %v\n", selErr)
	}

	if err == nil {
		return html, nil
	}
	return "", fmt.Errorf("all strategies failed for %s: %w", url, err)
}

// IsBlockedPage reports whether html looks like a bot-check or access-denied page.
func IsBlockedPage(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	title := strings.ToLower(strings.TrimSpace(doc.Find("title").Text()))
	return strings.Contains(title, "robot check") ||
		strings.Contains(title, "captcha") ||
		strings.Contains(title, "access denied")
}

// FetchHTML fetches the URL via standard HTTP and returns the body as text
func (b *BaseScraper) FetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := b.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page (HTTP %d)", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPageSize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
