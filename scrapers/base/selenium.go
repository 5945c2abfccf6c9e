package base

import (
	"context"
	"fmt"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// ChromeDriverPath is where the selenium strategy looks for chromedriver.
var ChromeDriverPath = "/usr/local/bin/chromedriver"

// FetchHTMLSelenium loads the URL in a full Chrome session driven by chromedriver
// and returns the page source.
func (b *BaseScraper) FetchHTMLSelenium(ctx context.Context, url string) (string, error) {
	ports := driverPortPool()
	port, err := ports.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("port error: %w", err)
	}
	defer ports.Release(port)

	service, err := selenium.NewChromeDriverService(ChromeDriverPath, port)
	if err != nil {
		return "", fmt.Errorf("error starting Chrome driver service: %w", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-extensions",
			"--disable-gpu",
			"--window-size=1920,1080",
			fmt.Sprintf("--user-agent=%s", userAgent),
		},
		ExcludeSwitches: []string{"enable-automation"},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return "", fmt.Errorf("error creating WebDriver: %w", err)
	}
	defer driver.Quit()

	if err := driver.SetPageLoadTimeout(6 * b.Timeout); err != nil {
		return "", fmt.Errorf("page load timeout error: %w", err)
	}

	if err := driver.Get(url); err != nil {
		return "", fmt.Errorf("navigation error: %w", err)
	}

	// Give client-side rendering a moment to inject its state.
	time.Sleep(2 * time.Second)

	html, err := driver.PageSource()
	if err != nil {
		return "", fmt.Errorf("page source error: %w", err)
	}
	return html, nil
}
