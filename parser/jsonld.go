package parser

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/tonies-catalog/models"
)

const jsonLDSelector = `script[type="application/ld+json"]`

// leadingNumber matches the numeric prefix of a price string such as "16.99" or "16.99 EUR".
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseJSONLD extracts the first schema.org Product from the page's ld+json blocks.
//
// Blocks are decoded in document order. A block that fails to decode ends the
// search with no result, even if a later block would have matched.
func ParseJSONLD(html string) *models.ParsedProduct {
	doc, err := newDocument(html)
	if err != nil {
		return nil
	}
	return parseJSONLD(doc)
}

func parseJSONLD(doc *goquery.Document) *models.ParsedProduct {
	var result *models.ParsedProduct
	doc.Find(jsonLDSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var data interface{}
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return false
		}

		items, ok := data.([]interface{})
		if !ok {
			items = []interface{}{data}
		}

		for _, item := range items {
			if t, _ := asString(field(item, "@type")); t == "Product" {
				result = jsonLDProduct(item)
				return false
			}
		}
		return true
	})
	return result
}

func jsonLDProduct(item interface{}) *models.ParsedProduct {
	name := stringPtr(field(item, "name"))
	if name == nil {
		return nil
	}

	var image interface{}
	switch img := field(item, "image").(type) {
	case []interface{}:
		if len(img) > 0 {
			image = img[0]
		}
	default:
		image = img
	}

	return &models.ParsedProduct{
		Name:        name,
		Series:      stringPtr(path(item, "brand", "name")),
		ImageURL:    stringPtr(image),
		Price:       jsonLDPrice(field(item, "offers")),
		Description: stringPtr(field(item, "description")),
	}
}

func jsonLDPrice(offers interface{}) *float64 {
	// Offers may also be a list of Offer objects; the first one is used.
	if list, ok := offers.([]interface{}); ok {
		if len(list) == 0 {
			return nil
		}
		offers = list[0]
	}

	switch p := field(offers, "price").(type) {
	case float64:
		return &p
	case string:
		return parseLeadingFloat(p)
	}
	return nil
}

// parseLeadingFloat parses the numeric prefix of s, ignoring any trailing text.
func parseLeadingFloat(s string) *float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}
