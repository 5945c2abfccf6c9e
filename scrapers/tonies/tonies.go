package tonies

import (
	"context"
	"fmt"
	"time"

	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/raushankrgupta/tonies-catalog/parser"
	"github.com/raushankrgupta/tonies-catalog/scrapers/base"
)

// ToniesScraper imports figures from tonies.com product pages
type ToniesScraper struct {
	*base.BaseScraper
	host string
}

func NewToniesScraper(host string, timeout time.Duration, browserFallback bool) *ToniesScraper {
	return &ToniesScraper{
		BaseScraper: base.NewBaseScraper(timeout, browserFallback),
		host:        host,
	}
}

func (s *ToniesScraper) CanScrape(url string) bool {
	_, err := models.ValidateImportURL(url, s.host)
	return err == nil
}

// Extract fetches the page and runs every parser source against it.
func (s *ToniesScraper) Extract(ctx context.Context, url string) (parser.Extraction, error) {
	html, err := s.FetchDocument(ctx, url, func(html string) bool {
		return parser.ParseProductPage(html) != nil
	})
	if err != nil {
		return parser.Extraction{}, fmt.Errorf("failed to fetch the page: %w", err)
	}
	return parser.Extract(html), nil
}

func (s *ToniesScraper) ScrapeProduct(ctx context.Context, url string) (*models.ParsedProduct, error) {
	extraction, err := s.Extract(ctx, url)
	if err != nil {
		return nil, err
	}

	product := extraction.Merge()
	if product == nil {
		return nil, models.ErrNoProductData
	}

	fmt.Printf("[ToniesScraper] %s parsed from %v\n", *product.Name, extraction.Sources())
	return product, nil
}
