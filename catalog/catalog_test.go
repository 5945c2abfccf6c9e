package catalog

import (
	"net/url"
	"testing"

	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

func names(ts []models.Tonie) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func fixture() []models.Tonie {
	return []models.Tonie{
		{Name: "Peppa Pig", Series: "Peppa Pig", Price: num(16.99), PurchaseDate: str("2024-05-01"), Favorite: true},
		{Name: "The Gruffalo", Series: "Julia Donaldson", Notes: str("bedtime favourite")},
		{Name: "simba", Series: "Disney", Price: num(19.99), PurchaseDate: str("2023-12-24")},
		{Name: "Creative Tonie", Series: "Creative-Tonies", Price: num(0), Favorite: true},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"no criteria", Query{}, []string{"Peppa Pig", "The Gruffalo", "simba", "Creative Tonie"}},
		{"search name", Query{Search: "pig"}, []string{"Peppa Pig"}},
		{"search series", Query{Search: "disney"}, []string{"simba"}},
		{"search notes", Query{Search: "bedtime"}, []string{"The Gruffalo"}},
		{"series", Query{Series: []string{"Disney", "Peppa Pig"}}, []string{"Peppa Pig", "simba"}},
		{"favorites", Query{FavoritesOnly: true}, []string{"Peppa Pig", "Creative Tonie"}},
		{"combined", Query{FavoritesOnly: true, Search: "creative"}, []string{"Creative Tonie"}},
		{"no match", Query{Search: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(fixture(), tt.query)))
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		field string
		desc  bool
		want  []string
	}{
		{"name asc is case-insensitive", SortName, false, []string{"Creative Tonie", "Peppa Pig", "simba", "The Gruffalo"}},
		{"name desc", SortName, true, []string{"The Gruffalo", "simba", "Peppa Pig", "Creative Tonie"}},
		{"price asc nulls last", SortPrice, false, []string{"Creative Tonie", "Peppa Pig", "simba", "The Gruffalo"}},
		{"price desc nulls last", SortPrice, true, []string{"simba", "Peppa Pig", "Creative Tonie", "The Gruffalo"}},
		{"date asc nulls last", SortPurchaseDate, false, []string{"simba", "Peppa Pig", "The Gruffalo", "Creative Tonie"}},
		{"date desc nulls last", SortPurchaseDate, true, []string{"Peppa Pig", "simba", "The Gruffalo", "Creative Tonie"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := fixture()
			Sort(ts, tt.field, tt.desc)
			assert.Equal(t, tt.want, names(ts))
		})
	}
}

func TestDistinctSeries(t *testing.T) {
	ts := append(fixture(), models.Tonie{Name: "George", Series: "Peppa Pig"}, models.Tonie{Name: "Blank"})
	assert.Equal(t, []string{"Creative-Tonies", "Disney", "Julia Donaldson", "Peppa Pig"}, DistinctSeries(ts))
	assert.Equal(t, []string{}, DistinctSeries(nil))
}

func TestQueryFromValues(t *testing.T) {
	v, _ := url.ParseQuery("q=+peppa+&series=Disney&series=&series=Peppa+Pig&fav=1&sort=price&dir=DESC")
	assert.Equal(t, Query{
		Search:        "peppa",
		Series:        []string{"Disney", "Peppa Pig"},
		FavoritesOnly: true,
		SortBy:        SortPrice,
		Descending:    true,
	}, QueryFromValues(v))

	v, _ = url.ParseQuery("sort=bogus&fav=true")
	q := QueryFromValues(v)
	assert.Equal(t, SortName, q.SortBy)
	assert.False(t, q.FavoritesOnly)
	assert.False(t, q.Descending)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	ts := fixture()
	out := Apply(ts, Query{SortBy: SortName})
	assert.Equal(t, "Peppa Pig", ts[0].Name)
	assert.Equal(t, "Creative Tonie", out[0].Name)
}
