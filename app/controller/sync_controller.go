package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"kala-gallery-me/service"
)

// SyncController handles the admin Drive synchronization endpoint
type SyncController struct {
	syncService service.SyncServiceInterface
}

// NewSyncController creates a new SyncController
func NewSyncController(syncService service.SyncServiceInterface) *SyncController {
	return &SyncController{syncService: syncService}
}

// SyncGallery handles POST /admin/designs/sync
// Pulls the configured Drive folder into the catalog table. New images
// are inserted inactive, pending curation.
func (c *SyncController) SyncGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.syncService == nil {
		http.Error(w, "Drive sync not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		folderID = os.Getenv("DRIVE_FOLDER_ID")
	}
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	images, inserted, skipped, total, err := c.syncService.SyncGalleryImages(r.Context(), folderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync gallery: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total":    total,
		"inserted": inserted,
		"skipped":  skipped,
		"images":   images,
	})
}
