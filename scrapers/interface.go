package scrapers

import (
	"context"

	"github.com/raushankrgupta/tonies-catalog/models"
)

// Scraper defines the interface for product page importers
type Scraper interface {
	// CanScrape checks if the scraper can handle the given URL
	CanScrape(url string) bool
	// ScrapeProduct fetches the page and returns the parsed product, or
	// models.ErrNoProductData when the page carries none.
	ScrapeProduct(ctx context.Context, url string) (*models.ParsedProduct, error)
}
