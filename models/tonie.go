package models

import (
	"time"
)

// Tonie represents a figure stored in the catalog
type Tonie struct {
	ID              string    `bson:"_id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Series          string    `bson:"series" json:"series"`
	ImageURL        *string   `bson:"image_url" json:"image_url"`
	PurchaseDate    *string   `bson:"purchase_date" json:"purchase_date"` // YYYY-MM-DD
	Price           *float64  `bson:"price" json:"price"`
	Notes           *string   `bson:"notes" json:"notes"`
	Favorite        bool      `bson:"favorite" json:"favorite"`
	TrackList       []string  `bson:"track_list" json:"track_list"`
	IsCreativeTonie bool      `bson:"is_creative_tonie" json:"is_creative_tonie"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateTonie is the payload for adding a figure. Server-generated fields are omitted.
type CreateTonie struct {
	Name            string   `json:"name"`
	Series          string   `json:"series"`
	ImageURL        *string  `json:"image_url"`
	PurchaseDate    *string  `json:"purchase_date"`
	Price           *float64 `json:"price"`
	Notes           *string  `json:"notes"`
	Favorite        bool     `json:"favorite"`
	TrackList       []string `json:"track_list"`
	IsCreativeTonie bool     `json:"is_creative_tonie"`
}

// UpdateTonie carries a partial update; nil fields are left untouched.
type UpdateTonie struct {
	ID              string    `json:"id"`
	Name            *string   `json:"name"`
	Series          *string   `json:"series"`
	ImageURL        *string   `json:"image_url"`
	PurchaseDate    *string   `json:"purchase_date"`
	Price           *float64  `json:"price"`
	Notes           *string   `json:"notes"`
	Favorite        *bool     `json:"favorite"`
	TrackList       *[]string `json:"track_list"`
	IsCreativeTonie *bool     `json:"is_creative_tonie"`
}

// NewTonie builds a catalog document from a validated create payload.
func NewTonie(id string, in CreateTonie, now time.Time) Tonie {
	return Tonie{
		ID:              id,
		Name:            in.Name,
		Series:          in.Series,
		ImageURL:        in.ImageURL,
		PurchaseDate:    in.PurchaseDate,
		Price:           in.Price,
		Notes:           in.Notes,
		Favorite:        in.Favorite,
		TrackList:       in.TrackList,
		IsCreativeTonie: in.IsCreativeTonie,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
