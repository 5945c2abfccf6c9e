package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/raushankrgupta/tonies-catalog/utils"
)

// ImportRequest is the body of POST /admin/import
type ImportRequest struct {
	URL string `json:"url"`
}

// ImportResponse pre-fills the create form. DuplicateWarning is set when a
// tonie with the same name is already in the catalog.
type ImportResponse struct {
	Data             models.ImportResult `json:"data"`
	DuplicateWarning *string             `json:"duplicateWarning"`
}

// ImportHandler fetches a product page, parses it and stores its image
func (s *Server) ImportHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Import API]")
	logAdmin(r, &logMessageBuilder)

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	productURL := strings.TrimSpace(req.URL)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Importing URL: %s", productURL))

	scraper, err := s.GetScraper(productURL)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, importURLMessage(err), http.StatusBadRequest)
		return
	}

	product, err := scraper.ScrapeProduct(r.Context(), productURL)
	if errors.Is(err, models.ErrNoProductData) {
		utils.RespondError(w, &logMessageBuilder, models.ErrNoProductData.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Fetch failed: %v", err))
		utils.RespondError(w, nil, "Failed to fetch page", http.StatusBadGateway)
		return
	}

	result := models.ImportResult{
		Name:            models.StringOrEmpty(product.Name),
		Series:          product.Series,
		ImageURL:        product.ImageURL,
		TrackList:       product.TrackList,
		Price:           product.Price,
		Description:     product.Description,
		IsCreativeTonie: product.IsCreativeTonie,
	}

	if result.ImageURL != nil {
		stored, err := s.UploadImageFromURL(r.Context(), *result.ImageURL)
		if err != nil {
			// the form still works without an image
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Image upload failed: %v", err))
			result.ImageURL = nil
		} else {
			result.ImageURL = &stored
		}
	}

	resp := ImportResponse{Data: result}
	exists, err := s.Store.ExistsByName(r.Context(), result.Name)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Duplicate check failed: %v", err))
	} else if exists {
		warning := fmt.Sprintf("A figure with the name \"%s\" already exists.", result.Name)
		resp.DuplicateWarning = &warning
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Imported %q", result.Name))
	utils.RespondJSON(w, http.StatusOK, resp)
}

func importURLMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), models.ErrInvalidImportURL.Error()+": "); ok {
		return msg
	}
	return "Please enter a valid URL"
}
