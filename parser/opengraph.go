package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/tonies-catalog/models"
)

var (
	// "tonies® | Gruffalo", "tonies | Gruffalo", "Brand® | Gruffalo"
	brandPrefix = regexp.MustCompile(`(?i)^\s*(?:tonies®?|[^|®]{1,60}®)\s*\|\s*`)
	// "Gruffalo | tonies® | ...", "tonies® I Gruffalo"
	toniesBrand = regexp.MustCompile(`(?i:tonies)®?\s*(?:\||I\b)\s*`)
	// "Gruffalo | Buy now at tonies.com"
	buySuffix = regexp.MustCompile(`(?i)\s*\|\s*buy.*$`)
)

// ParseOGTags builds a minimal product from Open Graph meta tags. Last resort.
func ParseOGTags(html string) *models.ParsedProduct {
	doc, err := newDocument(html)
	if err != nil {
		return nil
	}
	return parseOGTags(doc)
}

func parseOGTags(doc *goquery.Document) *models.ParsedProduct {
	title := metaContent(doc, "og:title")
	if title == nil {
		return nil
	}

	name := CleanTitle(*title)
	return &models.ParsedProduct{
		Name:        &name,
		ImageURL:    metaContent(doc, "og:image"),
		Description: metaContent(doc, "og:description"),
	}
}

// CleanTitle strips the shop's brand prefix, any "tonies® |" segment and the "| Buy ..."
// suffix from a page title.
// If nothing is left, the raw title is returned.
func CleanTitle(title string) string {
	clean := brandPrefix.ReplaceAllString(title, "")
	clean = toniesBrand.ReplaceAllString(clean, "")
	clean = buySuffix.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return title
	}
	return clean
}

// metaContent reads the content of the first <meta> whose property or name is prop.
func metaContent(doc *goquery.Document, prop string) *string {
	sel := doc.Find(fmt.Sprintf(`meta[property=%q], meta[name=%q]`, prop, prop)).First()
	content, ok := sel.Attr("content")
	if !ok || content == "" {
		return nil
	}
	return &content
}
