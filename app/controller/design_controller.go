package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"kala-gallery-me/models"
	"kala-gallery-me/repository"
	"kala-gallery-me/service"
)

// DesignController handles HTTP requests for the design catalog
type DesignController struct {
	catalog      *service.CatalogService
	driveService service.DriveServiceInterface
}

// NewDesignController creates a new DesignController
func NewDesignController(catalog *service.CatalogService, driveService service.DriveServiceInterface) *DesignController {
	return &DesignController{
		catalog:      catalog,
		driveService: driveService,
	}
}

// selectionFromQuery reads the per-category filter selections from the
// query string. Each category accepts repeated parameters.
func selectionFromQuery(r *http.Request) models.FilterSelection {
	values := r.URL.Query()
	return models.FilterSelection{
		DesignContext:  values["designContext"],
		SculpturalForm: values["sculpturalForm"],
		InteriorArea:   values["interiorArea"],
		PlacementType:  values["placementType"],
	}
}

// ListDesigns handles GET /api/designs
// Without parameters this is the full active collection; with ?q= and/or
// repeated category parameters it is a filtered search. Backend failures
// degrade to an empty list, never a 5xx for the listing page.
func (c *DesignController) ListDesigns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	selection := selectionFromQuery(r)

	items, err := c.catalog.SearchCollection(r.Context(), query, selection)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			// A newer search owns the visible state
			http.Error(w, "Search superseded", http.StatusConflict)
			return
		}
		// Degraded: the empty list is the response
		items = []models.DisplayItem{}
	}
	if items == nil {
		items = []models.DisplayItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetFilterVocabulary handles GET /api/designs/filters
func (c *DesignController) GetFilterVocabulary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vocabulary, err := c.catalog.GetFilterVocabulary(r.Context())
	if err != nil {
		// Degraded: empty vocabulary
		vocabulary = models.FilterVocabulary{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(vocabulary); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetDesignDetail handles GET /api/designs/{id}
// Responds 404 both for unknown ids and for an unconfigured backend; the
// frontend routes 404 back to the collection page.
func (c *DesignController) GetDesignDetail(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	detail, err := c.catalog.GetDesignDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrRepositoryUnavailable) {
			http.Error(w, "Design not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to get design: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(detail); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetDesignImage handles GET /api/designs/{id}/image?size=thumb|medium
// Downloads the design's Drive image, optimizes it, and serves it from a
// disk cache on subsequent requests.
func (c *DesignController) GetDesignImage(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.driveService == nil {
		http.Error(w, "Image service not configured", http.StatusServiceUnavailable)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	detail, err := c.catalog.GetDesignDetail(r.Context(), id)
	if err != nil {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}

	cachePath := service.GetCachePath(id, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			serveJPEG(w, data)
			return
		}
		log.Printf("⚠️  Cache read failed for %s: %v", cachePath, err)
	}

	// The image path holds the Drive file id for Drive-hosted designs
	fileID := extractFileID(detail.Item.ImageURL)
	if fileID == "" {
		http.Error(w, "Design image not hosted on Drive", http.StatusNotFound)
		return
	}

	raw, err := c.driveService.DownloadImage(fileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to download image: %v", err), http.StatusBadGateway)
		return
	}

	optimized, err := service.OptimizeImage(raw, size)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to optimize image: %v", err), http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Cache write failed for %s: %v", cachePath, err)
	}
	serveJPEG(w, optimized)
}

// extractFileID pulls the Drive file id back out of a resolved CDN URL
func extractFileID(imageURL string) string {
	const marker = "lh3.googleusercontent.com/d/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return ""
	}
	fileID := imageURL[idx+len(marker):]
	if cut := strings.IndexAny(fileID, "=?"); cut >= 0 {
		fileID = fileID[:cut]
	}
	return fileID
}

func serveJPEG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
