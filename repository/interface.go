package repository

import (
	"context"

	"kala-gallery-me/models"
)

// DesignRepositoryInterface defines the contract for design catalog reads.
// Only active records are ever visible through any of these operations.
type DesignRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]models.DisplayItem, error)
	FetchByID(ctx context.Context, id string) (*models.DisplayItem, error)
	FetchFilterVocabulary(ctx context.Context) (models.FilterVocabulary, error)
	Search(ctx context.Context, query string, selection models.FilterSelection) ([]models.DisplayItem, error)

	// Sync support
	ExistsByImagePath(ctx context.Context, imagePath string) (bool, error)
	Insert(ctx context.Context, record *models.DesignRecord) error
}
