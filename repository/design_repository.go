package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"kala-gallery-me/db"
	"kala-gallery-me/models"
	"kala-gallery-me/utils"
)

// DesignRepository handles database operations for the design catalog
// Implements DesignRepositoryInterface
type DesignRepository struct {
	storage utils.StorageConfig

	unavailableOnce sync.Once
}

// NewDesignRepository creates a new DesignRepository. The storage config is
// used to resolve stored image references to display URLs.
func NewDesignRepository(storage utils.StorageConfig) *DesignRepository {
	return &DesignRepository{storage: storage}
}

// Ensure DesignRepository implements DesignRepositoryInterface
var _ DesignRepositoryInterface = (*DesignRepository)(nil)

const designColumns = `
	id,
	COALESCE(image_path, '') as image_path,
	COALESCE(title, '') as title,
	COALESCE(description, '') as description,
	COALESCE(design_context, '') as design_context,
	COALESCE(sculptural_form, '') as sculptural_form,
	COALESCE(interior_area, '') as interior_area,
	COALESCE(placement_type, '') as placement_type,
	is_active,
	COALESCE(is_available, false) as is_available,
	created_at
`

// available checks the backend store, logging the degraded state only once
func (r *DesignRepository) available() bool {
	if db.Available() {
		return true
	}
	r.unavailableOnce.Do(func() {
		log.Printf("⚠️  Design repository unavailable: backend store not configured, serving empty catalog")
	})
	return false
}

// scanRecord scans one row into a raw design record
func scanRecord(rows interface{ Scan(...interface{}) error }) (models.DesignRecord, error) {
	var record models.DesignRecord
	var createdAt sql.NullTime
	err := rows.Scan(
		&record.ID,
		&record.ImagePath,
		&record.Title,
		&record.Description,
		&record.DesignContext,
		&record.SculpturalForm,
		&record.InteriorArea,
		&record.PlacementType,
		&record.IsActive,
		&record.IsAvailable,
		&createdAt,
	)
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	return record, err
}

// FetchAll retrieves every active design, newest first
func (r *DesignRepository) FetchAll(ctx context.Context) ([]models.DisplayItem, error) {
	if !r.available() {
		return []models.DisplayItem{}, ErrRepositoryUnavailable
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM design_assets
		WHERE is_active = true
		ORDER BY created_at DESC
	`, designColumns)

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching design assets: %v", err)
		return []models.DisplayItem{}, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer rows.Close()

	items, err := r.collectItems(rows)
	if err != nil {
		return []models.DisplayItem{}, err
	}

	log.Printf("✓ Successfully fetched %d design assets", len(items))
	return items, nil
}

// FetchByID retrieves a single active design by id.
// Returns ErrNotFound when no active record matches, which is distinct
// from a transport error.
func (r *DesignRepository) FetchByID(ctx context.Context, id string) (*models.DisplayItem, error) {
	if !r.available() {
		return nil, ErrRepositoryUnavailable
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM design_assets
		WHERE id = $1 AND is_active = true
	`, designColumns)

	record, err := scanRecord(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("🔍 Design asset not found: %s", id)
			return nil, ErrNotFound
		}
		log.Printf("❌ Error fetching design asset %s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	item := BuildDisplayItem(record, r.storage)
	return &item, nil
}

// FetchFilterVocabulary derives the selectable filter values per category
// from the active records: normalize, deduplicate (case-sensitive), sort.
func (r *DesignRepository) FetchFilterVocabulary(ctx context.Context) (models.FilterVocabulary, error) {
	if !r.available() {
		return models.FilterVocabulary{}, ErrRepositoryUnavailable
	}

	query := `
		SELECT
			COALESCE(design_context, '') as design_context,
			COALESCE(sculptural_form, '') as sculptural_form,
			COALESCE(interior_area, '') as interior_area,
			COALESCE(placement_type, '') as placement_type
		FROM design_assets
		WHERE is_active = true
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching filter vocabulary: %v", err)
		return models.FilterVocabulary{}, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer rows.Close()

	designContexts := newVocabularySet()
	sculpturalForms := newVocabularySet()
	interiorAreas := newVocabularySet()
	placementTypes := newVocabularySet()

	for rows.Next() {
		var designContext, sculpturalForm, interiorArea, placementType string
		if err := rows.Scan(&designContext, &sculpturalForm, &interiorArea, &placementType); err != nil {
			log.Printf("❌ Error scanning vocabulary row: %v", err)
			continue
		}
		designContexts.add(utils.NormalizeTags(designContext))
		sculpturalForms.add(utils.NormalizeTags(sculpturalForm))
		interiorAreas.add(utils.NormalizeTags(interiorArea))
		placementTypes.add(utils.NormalizeTags(placementType))
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating vocabulary rows: %v", err)
		return models.FilterVocabulary{}, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	vocabulary := models.FilterVocabulary{
		DesignContexts:  designContexts.sorted(),
		SculpturalForms: sculpturalForms.sorted(),
		InteriorAreas:   interiorAreas.sorted(),
		PlacementTypes:  placementTypes.sorted(),
	}

	log.Printf("✓ Filter vocabulary: %d contexts, %d forms, %d areas, %d placements",
		len(vocabulary.DesignContexts), len(vocabulary.SculpturalForms),
		len(vocabulary.InteriorAreas), len(vocabulary.PlacementTypes))
	return vocabulary, nil
}

// Search retrieves active designs matching the text query and the filter
// selection. The text match (title OR description, case-insensitive
// substring) is pushed to the backend; the category selections are applied
// here with AND across categories. Order stays created_at descending.
func (r *DesignRepository) Search(ctx context.Context, query string, selection models.FilterSelection) ([]models.DisplayItem, error) {
	if !r.available() {
		return []models.DisplayItem{}, ErrRepositoryUnavailable
	}

	baseQuery := fmt.Sprintf(`
		SELECT %s
		FROM design_assets
		WHERE is_active = true
	`, designColumns)

	var args []interface{}
	if query != "" {
		baseQuery += " AND (title ILIKE $1 OR description ILIKE $1)"
		args = append(args, "%"+query+"%")
	}
	baseQuery += " ORDER BY created_at DESC"

	rows, err := db.DB.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		log.Printf("❌ Error searching design assets: %v", err)
		return []models.DisplayItem{}, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer rows.Close()

	items, err := r.collectItems(rows)
	if err != nil {
		return []models.DisplayItem{}, err
	}

	items = ApplySelection(items, selection)
	log.Printf("✓ Search matched %d design assets (query=%q)", len(items), query)
	return items, nil
}

// ExistsByImagePath checks whether a design already references an image
func (r *DesignRepository) ExistsByImagePath(ctx context.Context, imagePath string) (bool, error) {
	if !r.available() {
		return false, ErrRepositoryUnavailable
	}

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM design_assets WHERE image_path = $1)`
	if err := db.DB.QueryRowContext(ctx, query, imagePath).Scan(&exists); err != nil {
		log.Printf("❌ Error checking existence for image_path %s: %v", imagePath, err)
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Insert inserts a new design record. Synced records start inactive so
// they never surface before curation.
func (r *DesignRepository) Insert(ctx context.Context, record *models.DesignRecord) error {
	if !r.available() {
		return ErrRepositoryUnavailable
	}

	query := `
		INSERT INTO design_assets (
			image_path, title, description, is_active, is_available, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (image_path) DO NOTHING
	`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := db.DB.ExecContext(ctx, query,
		record.ImagePath,
		record.Title,
		record.Description,
		record.IsActive,
		record.IsAvailable,
		createdAt,
	)
	if err != nil {
		log.Printf("❌ Error inserting design asset (image_path: %s): %v", record.ImagePath, err)
		return fmt.Errorf("failed to insert design asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected > 0 {
		log.Printf("💾 Inserted design asset (image_path: %s)", record.ImagePath)
	} else {
		log.Printf("⏭️  No rows inserted (likely ON CONFLICT) for image_path: %s", record.ImagePath)
	}
	return nil
}

// collectItems drains rows into display items, skipping unscannable rows
func (r *DesignRepository) collectItems(rows *sql.Rows) ([]models.DisplayItem, error) {
	var items []models.DisplayItem
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			log.Printf("❌ Error scanning design asset row: %v", err)
			continue
		}
		items = append(items, BuildDisplayItem(record, r.storage))
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating design asset rows: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	return items, nil
}
