package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/tonies-catalog/catalog"
	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/raushankrgupta/tonies-catalog/utils"
)

// ListResponse is the catalog view: the matching tonies plus every series for the filter menu
type ListResponse struct {
	Data   []models.Tonie `json:"data"`
	Series []string       `json:"series"`
}

// ListToniesHandler lists the catalog with optional filtering and sorting
func (s *Server) ListToniesHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[List Tonies API]")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	all, err := s.Store.List(ctx)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, err.Error())
		utils.RespondError(w, nil, "Failed to load tonies", http.StatusInternalServerError)
		return
	}

	q := catalog.QueryFromValues(r.URL.Query())
	utils.RespondJSON(w, http.StatusOK, ListResponse{
		Data:   catalog.Apply(all, q),
		Series: catalog.DistinctSeries(all),
	})
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Listed %d tonies", len(all)))
}

// GetTonieHandler returns a single tonie
func (s *Server) GetTonieHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Get Tonie API]")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	t, err := s.Store.Get(ctx, r.PathValue("id"))
	if err != nil {
		respondStoreError(w, &logMessageBuilder, err, "Failed to load tonie")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": t})
}

// CreateTonieHandler adds a tonie to the catalog
func (s *Server) CreateTonieHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Create Tonie API]")
	logAdmin(r, &logMessageBuilder)

	var in models.CreateTonie
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := in.Validate(); err != nil {
		respondValidation(w, &logMessageBuilder, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	t, err := s.Store.Create(ctx, in)
	if err != nil {
		respondStoreError(w, &logMessageBuilder, err, "Failed to create tonie")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Created %s", t.ID))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"data": t})
}

// UpdateTonieHandler applies a partial update
func (s *Server) UpdateTonieHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Tonie API]")
	logAdmin(r, &logMessageBuilder)

	var in models.UpdateTonie
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	in.ID = r.PathValue("id")
	if err := in.Validate(); err != nil {
		respondValidation(w, &logMessageBuilder, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	t, err := s.Store.Update(ctx, in)
	if err != nil {
		respondStoreError(w, &logMessageBuilder, err, "Failed to update tonie")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Updated %s", t.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"data": t})
}

// DeleteTonieHandler removes a tonie and its stored image
func (s *Server) DeleteTonieHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Delete Tonie API]")
	logAdmin(r, &logMessageBuilder)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	t, err := s.Store.Delete(ctx, r.PathValue("id"))
	if err != nil {
		respondStoreError(w, &logMessageBuilder, err, "Failed to delete tonie")
		return
	}

	// images linked from elsewhere are not ours to delete
	if t.ImageURL != nil && utils.IsBucketURL(*t.ImageURL) {
		if err := s.DeleteImageByURL(ctx, *t.ImageURL); err != nil {
			// the record is gone already, an orphaned object is acceptable
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Image cleanup failed: %v", err))
		}
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted %s", t.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Tonie deleted"})
}

// UploadImageHandler stores an image sent as the "image" multipart field
func (s *Server) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Upload Image API]")
	logAdmin(r, &logMessageBuilder)

	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxImageSize+(1<<20))
	if err := r.ParseMultipartForm(utils.MaxImageSize); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error parsing form data: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	publicURL, err := s.UploadImage(r.Context(), file, header.Filename, header.Header.Get("Content-Type"), header.Size)
	if errors.Is(err, utils.ErrImageTooLarge) || errors.Is(err, utils.ErrImageTypeDenied) {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, err.Error())
		utils.RespondError(w, nil, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Uploaded %s", publicURL))
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"url": publicURL})
}

func respondValidation(w http.ResponseWriter, logger *strings.Builder, err error) {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		utils.RespondFieldErrors(w, logger, verrs)
		return
	}
	utils.RespondError(w, logger, err.Error(), http.StatusBadRequest)
}

func respondStoreError(w http.ResponseWriter, logger *strings.Builder, err error, message string) {
	if errors.Is(err, models.ErrNotFound) {
		utils.RespondError(w, logger, "Tonie not found", http.StatusNotFound)
		return
	}
	utils.AddToLogMessage(logger, err.Error())
	utils.RespondError(w, nil, message, http.StatusInternalServerError)
}
