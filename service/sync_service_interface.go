package service

import (
	"context"

	"kala-gallery-me/models"
)

// SyncServiceInterface defines the contract for Drive synchronization
type SyncServiceInterface interface {
	// SyncGalleryImages syncs the Drive folder into the catalog table and
	// returns insertion stats: inserted = new rows created, skipped =
	// already referenced, total = files seen in Drive.
	SyncGalleryImages(ctx context.Context, folderID string) (images []models.DriveImage, inserted int, skipped int, total int, err error)
}
