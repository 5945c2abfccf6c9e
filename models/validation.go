package models

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength   = 200
	MaxSeriesLength = 100
	MaxNotesLength  = 1000
)

// ValidationErrors maps a field name to the problems found with it
type ValidationErrors map[string][]string

func (v ValidationErrors) add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the create payload, returning ValidationErrors or nil.
func (c *CreateTonie) Validate() error {
	errs := ValidationErrors{}
	c.Name = strings.TrimSpace(c.Name)
	c.Series = strings.TrimSpace(c.Series)
	c.ImageURL = nilIfEmpty(c.ImageURL)
	c.PurchaseDate = nilIfEmpty(c.PurchaseDate)
	c.Notes = nilIfEmpty(c.Notes)

	if c.Name == "" {
		errs.add("name", "Name is required")
	}
	if c.Series == "" {
		errs.add("series", "Series is required")
	}
	validateCommon(errs, &c.Name, &c.Series, c.Price, c.Notes, c.PurchaseDate)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks the partial update; only the fields that are set are checked.
func (u *UpdateTonie) Validate() error {
	errs := ValidationErrors{}
	if _, err := uuid.Parse(u.ID); err != nil {
		errs.add("id", "A valid id is required")
	}
	if u.Name != nil {
		*u.Name = strings.TrimSpace(*u.Name)
		if *u.Name == "" {
			errs.add("name", "Name is required")
		}
	}
	if u.Series != nil {
		*u.Series = strings.TrimSpace(*u.Series)
		if *u.Series == "" {
			errs.add("series", "Series is required")
		}
	}
	validateCommon(errs, u.Name, u.Series, u.Price, u.Notes, u.PurchaseDate)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// nilIfEmpty maps "" to nil so create and update store cleared fields the same way.
func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func validateCommon(errs ValidationErrors, name, series *string, price *float64, notes, purchaseDate *string) {
	if name != nil && utf8.RuneCountInString(*name) > MaxNameLength {
		errs.add("name", fmt.Sprintf("Name must be at most %d characters", MaxNameLength))
	}
	if series != nil && utf8.RuneCountInString(*series) > MaxSeriesLength {
		errs.add("series", fmt.Sprintf("Series must be at most %d characters", MaxSeriesLength))
	}
	if price != nil && *price < 0 {
		errs.add("price", "Price must not be negative")
	}
	if notes != nil && utf8.RuneCountInString(*notes) > MaxNotesLength {
		errs.add("notes", fmt.Sprintf("Notes must be at most %d characters", MaxNotesLength))
	}
	if purchaseDate != nil && *purchaseDate != "" {
		if _, err := time.Parse("2006-01-02", *purchaseDate); err != nil {
			errs.add("purchase_date", "Purchase date must be YYYY-MM-DD")
		}
	}
}

// ValidateImportURL accepts absolute http(s) URLs on allowedHost or one of its subdomains.
func ValidateImportURL(raw, allowedHost string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: Please enter a valid URL", ErrInvalidImportURL)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: Please enter a valid URL", ErrInvalidImportURL)
	}

	host := strings.ToLower(u.Hostname())
	allowedHost = strings.ToLower(allowedHost)
	if host != allowedHost && !strings.HasSuffix(host, "."+allowedHost) {
		return nil, fmt.Errorf("%w: URL must be from %s", ErrInvalidImportURL, allowedHost)
	}
	return u, nil
}
