package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOGTags(t *testing.T) {
	t.Run("extracts meta tags", func(t *testing.T) {
		got := ParseOGTags(ogTagsHTML)
		require.NotNil(t, got)
		assert.Equal(t, "Gruffalo", *got.Name)
		assert.Equal(t, "https://cdn.tonies.com/gruffalo.jpg", *got.ImageURL)
		assert.Equal(t, "A mouse walks through the woods.", *got.Description)
		assert.NotContains(t, *got.Name, "tonies®")
		assert.Nil(t, got.Series)
		assert.Nil(t, got.Price)
		assert.Nil(t, got.TrackList)
		assert.False(t, got.IsCreativeTonie)
	})

	t.Run("no title", func(t *testing.T) {
		assert.Nil(t, ParseOGTags(emptyHTML))
		assert.Nil(t, ParseOGTags(`<meta property="og:image" content="https://img/x.jpg">`))
		assert.Nil(t, ParseOGTags(`<meta property="og:title" content="">`))
	})

	t.Run("attribute order does not matter", func(t *testing.T) {
		got := ParseOGTags(`<meta content="Reversed" property="og:title"><meta content="https://img/r.jpg" name="og:image">`)
		require.NotNil(t, got)
		assert.Equal(t, "Reversed", *got.Name)
		assert.Equal(t, "https://img/r.jpg", *got.ImageURL)
		assert.Nil(t, got.Description)
	})

	t.Run("entities are decoded", func(t *testing.T) {
		got := ParseOGTags(`<meta property="og:title" content="tonies&reg; | Tom &amp; Jerry">`)
		require.NotNil(t, got)
		assert.Equal(t, "Tom & Jerry", *got.Name)
	})

	t.Run("brand in the middle of the title", func(t *testing.T) {
		got := ParseProductPage(`<meta property="og:title" content="Gruffalo | tonies® | Buy now">`)
		require.NotNil(t, got)
		assert.Equal(t, "Gruffalo", *got.Name)
	})
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "tonies® | Gruffalo", want: "Gruffalo"},
		{title: "Tonies | Gruffalo", want: "Gruffalo"},
		{title: "tonies®|Gruffalo", want: "Gruffalo"},
		{title: "Disney® | Frozen", want: "Frozen"},
		{title: "tonies® | Peppa Pig | Buy now at tonies.com", want: "Peppa Pig"},
		{title: "Peppa Pig | BUY online", want: "Peppa Pig"},
		{title: "Gruffalo", want: "Gruffalo"},
		{title: "  Padded  ", want: "Padded"},
		{title: "Fire | Water", want: "Fire | Water"},
		{title: "tonies® | ", want: "tonies® | "},
		{title: "| Buy now", want: "| Buy now"},
		{title: "Gruffalo | tonies® | Buy now at tonies.com", want: "Gruffalo"},
		{title: "tonies® I Gruffalo", want: "Gruffalo"},
		{title: "Peppa Pig | TONIES | Buy", want: "Peppa Pig"},
		{title: "Tonies Intro", want: "Tonies Intro"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.title))
		})
	}
}
