package models

// ParsedProduct is the normalized record extracted from a product page.
// Nil pointers (and a nil TrackList) mean the source had no value for the field.
type ParsedProduct struct {
	Name            *string  `json:"name"`
	Series          *string  `json:"series"`
	ImageURL        *string  `json:"imageUrl"`
	TrackList       []string `json:"trackList"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
	IsCreativeTonie bool     `json:"isCreativeTonie"`
}

// ImportResult is what the import endpoint hands back to pre-fill the create form.
type ImportResult struct {
	Name            string   `json:"name"`
	Series          *string  `json:"series"`
	ImageURL        *string  `json:"imageUrl"`
	TrackList       []string `json:"trackList"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
	IsCreativeTonie bool     `json:"isCreativeTonie"`
}

// StringOrEmpty dereferences s, returning "" for nil.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
