package service

import "kala-gallery-me/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListGalleryImages(folderID string) ([]models.DriveImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
