package models

import "errors"

var (
	// ErrNotFound is returned when a tonie does not exist in the catalog
	ErrNotFound = errors.New("tonie not found")

	// ErrInvalidImportURL is returned when an import URL is malformed or off the allowed host
	ErrInvalidImportURL = errors.New("invalid import url")

	// ErrNoProductData is returned when a fetched page yields no product name
	ErrNoProductData = errors.New("could not extract product data from this URL")
)
