// Package catalog filters and orders the collection for the list view.
package catalog

import (
	"net/url"
	"sort"
	"strings"

	"github.com/raushankrgupta/tonies-catalog/models"
)

// Sort fields accepted by Sort.
const (
	SortName         = "name"
	SortPurchaseDate = "purchaseDate"
	SortPrice        = "price"
)

// Query narrows the list view.
type Query struct {
	Search        string
	Series        []string
	FavoritesOnly bool
	SortBy        string
	Descending    bool
}

// QueryFromValues reads q, series (repeatable), fav, sort and dir from a query string.
func QueryFromValues(v url.Values) Query {
	q := Query{
		Search:        strings.TrimSpace(v.Get("q")),
		FavoritesOnly: v.Get("fav") == "1",
		SortBy:        v.Get("sort"),
		Descending:    strings.EqualFold(v.Get("dir"), "desc"),
	}
	for _, s := range v["series"] {
		if s = strings.TrimSpace(s); s != "" {
			q.Series = append(q.Series, s)
		}
	}
	switch q.SortBy {
	case SortName, SortPurchaseDate, SortPrice:
	default:
		q.SortBy = SortName
	}
	return q
}

// Apply filters then sorts.
func Apply(tonies []models.Tonie, q Query) []models.Tonie {
	out := Filter(tonies, q)
	Sort(out, q.SortBy, q.Descending)
	return out
}

// Filter returns the tonies matching every criterion of q. The input is not modified.
func Filter(tonies []models.Tonie, q Query) []models.Tonie {
	needle := strings.ToLower(q.Search)
	series := make(map[string]bool, len(q.Series))
	for _, s := range q.Series {
		series[s] = true
	}

	out := make([]models.Tonie, 0, len(tonies))
	for _, t := range tonies {
		if q.FavoritesOnly && !t.Favorite {
			continue
		}
		if len(series) > 0 && !series[t.Series] {
			continue
		}
		if needle != "" && !matches(t, needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(t models.Tonie, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Series), needle) {
		return true
	}
	return t.Notes != nil && strings.Contains(strings.ToLower(*t.Notes), needle)
}

// Sort orders tonies in place. Missing purchase dates and prices always sort last,
// whichever the direction.
func Sort(tonies []models.Tonie, field string, desc bool) {
	sort.SliceStable(tonies, func(i, j int) bool {
		a, b := tonies[i], tonies[j]
		switch field {
		case SortPrice:
			return lessNullsLast(a.Price, b.Price, desc, func(x, y float64) int {
				switch {
				case x < y:
					return -1
				case x > y:
					return 1
				}
				return 0
			})
		case SortPurchaseDate:
			// YYYY-MM-DD compares correctly as a string
			return lessNullsLast(a.PurchaseDate, b.PurchaseDate, desc, strings.Compare)
		default:
			c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			if desc {
				return c > 0
			}
			return c < 0
		}
	})
}

func lessNullsLast[T any](a, b *T, desc bool, cmp func(T, T) int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	c := cmp(*a, *b)
	if desc {
		return c > 0
	}
	return c < 0
}

// DistinctSeries returns the sorted set of non-empty series names.
func DistinctSeries(tonies []models.Tonie) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, t := range tonies {
		if t.Series == "" || seen[t.Series] {
			continue
		}
		seen[t.Series] = true
		out = append(out, t.Series)
	}
	sort.Strings(out)
	return out
}
