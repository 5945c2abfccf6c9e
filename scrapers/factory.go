package scrapers

import (
	"fmt"

	"github.com/raushankrgupta/tonies-catalog/config"
	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/raushankrgupta/tonies-catalog/scrapers/tonies"
)

// GetScraper validates the import URL and returns the scraper that handles it
func GetScraper(url string) (Scraper, error) {
	if _, err := models.ValidateImportURL(url, config.ImportAllowedHost); err != nil {
		return nil, err
	}

	// Register scrapers here
	scrapers := []Scraper{
		tonies.NewToniesScraper(config.ImportAllowedHost, config.FetchTimeout, config.BrowserFallback),
	}

	for _, s := range scrapers {
		if s.CanScrape(url) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: no scraper found for url: %s", models.ErrInvalidImportURL, url)
}
