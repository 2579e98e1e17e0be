package repository

import (
	"sort"

	"kala-gallery-me/models"
	"kala-gallery-me/utils"
)

// fallbackTitle is displayed when a record has no title
const fallbackTitle = "Untitled"

// BuildDisplayItem converts a raw design record to its canonical display
// form. The heterogeneous categorical encodings are normalized exactly
// once, here at the repository edge; nothing downstream touches the raw
// representation again.
func BuildDisplayItem(record models.DesignRecord, storage utils.StorageConfig) models.DisplayItem {
	designContext := utils.NormalizeTags(record.DesignContext)
	sculpturalForm := utils.NormalizeTags(record.SculpturalForm)
	interiorArea := utils.NormalizeTags(record.InteriorArea)
	placementType := utils.NormalizeTags(record.PlacementType)

	title := record.Title
	if title == "" {
		title = fallbackTitle
	}

	return models.DisplayItem{
		ID:          record.ID,
		ImageURL:    utils.ResolveImageURL(storage, record.ImagePath),
		Title:       title,
		Description: record.Description,

		DesignContext:  utils.JoinTags(designContext),
		SculpturalForm: utils.JoinTags(sculpturalForm),
		InteriorArea:   utils.JoinTags(interiorArea),
		PlacementType:  utils.JoinTags(placementType),

		DesignContextTags:  designContext,
		SculpturalFormTags: sculpturalForm,
		InteriorAreaTags:   interiorArea,
		PlacementTypeTags:  placementType,

		IsAvailable: record.IsAvailable,
		CreatedAt:   record.CreatedAt,
	}
}

// ApplySelection keeps the items matching every category that has an
// active selection. Within a category one matching tag is enough; across
// categories every selected category must match. Input order is preserved.
func ApplySelection(items []models.DisplayItem, selection models.FilterSelection) []models.DisplayItem {
	if selection.IsEmpty() {
		return items
	}

	var out []models.DisplayItem
	for _, item := range items {
		if !utils.MatchesTagSelection(item.DesignContextTags, selection.DesignContext) {
			continue
		}
		if !utils.MatchesTagSelection(item.SculpturalFormTags, selection.SculpturalForm) {
			continue
		}
		if !utils.MatchesTagSelection(item.InteriorAreaTags, selection.InteriorArea) {
			continue
		}
		if !utils.MatchesTagSelection(item.PlacementTypeTags, selection.PlacementType) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// vocabularySet accumulates distinct tag values for one filter category
type vocabularySet struct {
	seen map[string]bool
}

func newVocabularySet() *vocabularySet {
	return &vocabularySet{seen: make(map[string]bool)}
}

func (v *vocabularySet) add(tags []string) {
	for _, tag := range tags {
		v.seen[tag] = true
	}
}

func (v *vocabularySet) sorted() []string {
	values := make([]string, 0, len(v.seen))
	for value := range v.seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
