package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"kala-gallery-me/models"
	"kala-gallery-me/repository"
)

// SyncService handles synchronization between the gallery's Google Drive
// folder and the design_assets table
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.DesignRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.DesignRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncGalleryImages pulls the Drive folder into the design_assets table.
// New files are inserted inactive so they never surface in the public
// catalog before curation. Returns the Drive listing plus insertion stats:
// inserted = new rows created, skipped = already referenced, total = files
// seen in Drive.
func (s *SyncService) SyncGalleryImages(ctx context.Context, folderID string) (images []models.DriveImage, inserted int, skipped int, total int, err error) {
	log.Printf("🔄 Starting gallery sync for folder: %s", folderID)

	driveImages, err := s.driveService.ListGalleryImages(folderID)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("failed to list gallery images from Drive: %w", err)
	}

	log.Printf("📦 Processing %d gallery images from Google Drive", len(driveImages))
	total = len(driveImages)

	for _, image := range driveImages {
		exists, err := s.repository.ExistsByImagePath(ctx, image.FileID)
		if err != nil {
			log.Printf("❌ Error checking existence for file: %s: %v", image.FileID, err)
			continue
		}

		if exists {
			skipped++
			continue
		}

		log.Printf("🆕 New image detected (file: %s, name: %s)", image.FileID, image.FileName)

		record := &models.DesignRecord{
			ImagePath: image.FileID,
			Title:     titleFromFileName(image.FileName),
			IsActive:  false,
		}

		if err := s.repository.Insert(ctx, record); err != nil {
			log.Printf("❌ Error inserting image %s: %v", image.FileID, err)
			continue
		}
		inserted++
	}

	log.Printf("🎉 Gallery sync completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return driveImages, inserted, skipped, total, nil
}

// titleFromFileName derives a provisional title from a Drive file name,
// to be replaced during curation
func titleFromFileName(fileName string) string {
	name := fileName
	for _, ext := range []string{".png", ".PNG", ".jpg", ".JPG", ".jpeg", ".JPEG", ".webp", ".WEBP"} {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}
