package controller

import (
	"net/http"

	"kala-gallery-me/service"
)

// ContentController serves the site content document to the frontend
type ContentController struct {
	contentService *service.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// GetContent handles GET /api/content
func (c *ContentController) GetContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(c.contentService.Raw())
}
