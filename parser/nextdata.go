package parser

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/tonies-catalog/models"
)

const nextDataSelector = `script#__NEXT_DATA__[type="application/json"]`

// Locations of the product object inside the Next.js state dump, tried in order.
var productPaths = [][]string{
	{"props", "pageProps", "product"},
	{"props", "pageProps", "data", "product"},
	{"props", "pageProps", "initialData", "product"},
}

// ParseNextData extracts the product from the __NEXT_DATA__ application state.
// It is the richest source and the only one carrying tracks.
func ParseNextData(html string) *models.ParsedProduct {
	doc, err := newDocument(html)
	if err != nil {
		return nil
	}
	return parseNextData(doc)
}

func parseNextData(doc *goquery.Document) *models.ParsedProduct {
	script := doc.Find(nextDataSelector).First()
	if script.Length() == 0 {
		return nil
	}

	var state interface{}
	if err := json.Unmarshal([]byte(script.Text()), &state); err != nil {
		return nil
	}

	var product interface{}
	for _, p := range productPaths {
		if product = path(state, p...); product != nil {
			break
		}
	}
	if product == nil {
		return nil
	}

	name := firstString(field(product, "name"), field(product, "title"))
	if name == nil {
		return nil
	}

	series := nextDataSeries(product)
	return &models.ParsedProduct{
		Name:            name,
		Series:          series,
		ImageURL:        nextDataImage(product),
		TrackList:       nextDataTracks(product),
		Price:           nextDataPrice(product),
		Description:     stringPtr(field(product, "description")),
		IsCreativeTonie: nextDataCreative(product, series),
	}
}

func nextDataSeries(product interface{}) *string {
	categories := firstNonNil(field(product, "categories"), field(product, "category"))
	switch c := categories.(type) {
	case []interface{}:
		if len(c) == 0 {
			return nil
		}
		return firstString(field(c[0], "name"), c[0])
	case string:
		return stringPtr(c)
	}
	return nil
}

func nextDataTracks(product interface{}) []string {
	tracks, ok := firstNonNil(
		field(product, "tracks"),
		field(product, "chapters"),
		field(product, "trackList"),
	).([]interface{})
	if !ok {
		return nil
	}

	list := make([]string, 0, len(tracks))
	for _, t := range tracks {
		list = append(list, stringify(firstNonNil(field(t, "title"), field(t, "name"), t)))
	}
	return list
}

func nextDataCreative(product interface{}, series *string) bool {
	if explicit, ok := field(product, "isCreativeTonie").(bool); ok {
		return explicit
	}
	return series != nil && strings.Contains(strings.ToLower(*series), "creative")
}

func nextDataImage(product interface{}) *string {
	var candidate interface{}
	switch images := firstNonNil(field(product, "images"), field(product, "media")).(type) {
	case []interface{}:
		if len(images) > 0 {
			first := images[0]
			candidate = firstNonNil(field(first, "url"), field(first, "src"), first)
		}
	case string:
		candidate = images
	default:
		candidate = field(product, "image")
	}
	return stringPtr(candidate)
}

func nextDataPrice(product interface{}) *float64 {
	price := firstNonNil(field(product, "price"), field(product, "pricing"))
	for _, v := range []interface{}{price, field(price, "amount"), field(price, "value")} {
		if n, ok := asNumber(v); ok {
			return &n
		}
	}
	return nil
}

// firstString returns the first candidate that is a non-empty string.
func firstString(vals ...interface{}) *string {
	for _, v := range vals {
		if s := stringPtr(v); s != nil {
			return s
		}
	}
	return nil
}
