// Package parser extracts a normalized product record from a product page's HTML.
//
// Three sources are read from the same document, richest first:
//  1. the __NEXT_DATA__ application state
//  2. schema.org Product JSON-LD
//  3. Open Graph meta tags
//
// The package does no I/O and keeps no state; malformed input yields nil, never an error.
package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/tonies-catalog/models"
)

// Source names, as reported by Extraction.Sources.
const (
	SourceNextData  = "next-data"
	SourceJSONLD    = "json-ld"
	SourceOpenGraph = "open-graph"
)

// Extraction holds each source's result for a single page. A nil entry means no data.
type Extraction struct {
	NextData  *models.ParsedProduct
	JSONLD    *models.ParsedProduct
	OpenGraph *models.ParsedProduct
}

// ParseProductPage runs every source and merges them field by field.
// It returns nil when no source yields a name.
func ParseProductPage(html string) *models.ParsedProduct {
	return Extract(html).Merge()
}

// Extract runs all three sources against html. The document is parsed once.
func Extract(html string) Extraction {
	doc, err := newDocument(html)
	if err != nil {
		return Extraction{}
	}
	return Extraction{
		NextData:  parseNextData(doc),
		JSONLD:    parseJSONLD(doc),
		OpenGraph: parseOGTags(doc),
	}
}

// Sources lists the sources that produced data, in priority order.
func (e Extraction) Sources() []string {
	var out []string
	if e.NextData != nil {
		out = append(out, SourceNextData)
	}
	if e.JSONLD != nil {
		out = append(out, SourceJSONLD)
	}
	if e.OpenGraph != nil {
		out = append(out, SourceOpenGraph)
	}
	return out
}

// Merge takes, for each field, the first value present in priority order.
// Tracks and the creative flag come from __NEXT_DATA__ only.
func (e Extraction) Merge() *models.ParsedProduct {
	ordered := []*models.ParsedProduct{e.NextData, e.JSONLD, e.OpenGraph}

	name := pick(ordered, func(p *models.ParsedProduct) *string { return p.Name })
	if name == nil {
		return nil
	}

	merged := &models.ParsedProduct{
		Name:        name,
		Series:      pick(ordered, func(p *models.ParsedProduct) *string { return p.Series }),
		ImageURL:    pick(ordered, func(p *models.ParsedProduct) *string { return p.ImageURL }),
		Price:       pick(ordered, func(p *models.ParsedProduct) *float64 { return p.Price }),
		Description: pick(ordered, func(p *models.ParsedProduct) *string { return p.Description }),
	}
	if e.NextData != nil {
		merged.TrackList = e.NextData.TrackList
		merged.IsCreativeTonie = e.NextData.IsCreativeTonie
	}
	return merged
}

func pick[T any](sources []*models.ParsedProduct, get func(*models.ParsedProduct) *T) *T {
	for _, p := range sources {
		if p == nil {
			continue
		}
		if v := get(p); v != nil {
			return v
		}
	}
	return nil
}

func newDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
