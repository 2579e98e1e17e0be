package repository

import (
	"reflect"
	"testing"

	"kala-gallery-me/models"
	"kala-gallery-me/utils"
)

func TestBuildDisplayItemNormalizesCategories(t *testing.T) {
	record := models.DesignRecord{
		ID:             "d1",
		Title:          "Bronze Heron",
		Description:    "Cast bronze",
		DesignContext:  `["Modern", "Organic"]`,
		SculpturalForm: "['Figurative']",
		InteriorArea:   "Foyer",
		PlacementType:  "",
		IsAvailable:    true,
	}

	item := BuildDisplayItem(record, utils.StorageConfig{})

	if !reflect.DeepEqual(item.DesignContextTags, []string{"Modern", "Organic"}) {
		t.Errorf("DesignContextTags = %v", item.DesignContextTags)
	}
	if item.DesignContext != "Modern, Organic" {
		t.Errorf("DesignContext display = %q", item.DesignContext)
	}
	if !reflect.DeepEqual(item.SculpturalFormTags, []string{"Figurative"}) {
		t.Errorf("SculpturalFormTags = %v", item.SculpturalFormTags)
	}
	if !reflect.DeepEqual(item.InteriorAreaTags, []string{"Foyer"}) {
		t.Errorf("InteriorAreaTags = %v", item.InteriorAreaTags)
	}
	if len(item.PlacementTypeTags) != 0 {
		t.Errorf("PlacementTypeTags should be empty, got %v", item.PlacementTypeTags)
	}
	if item.PlacementType != "" {
		t.Errorf("PlacementType display = %q", item.PlacementType)
	}
	if !item.IsAvailable {
		t.Error("IsAvailable not carried over")
	}
}

func TestBuildDisplayItemTitleFallback(t *testing.T) {
	item := BuildDisplayItem(models.DesignRecord{ID: "d1"}, utils.StorageConfig{})
	if item.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", item.Title)
	}
}

func TestBuildDisplayItemImageURL(t *testing.T) {
	item := BuildDisplayItem(models.DesignRecord{ID: "d1", ImagePath: ""}, utils.StorageConfig{})
	if item.ImageURL != utils.PlaceholderImageURL {
		t.Errorf("empty image path should resolve to placeholder, got %q", item.ImageURL)
	}

	item = BuildDisplayItem(models.DesignRecord{ID: "d2", ImagePath: "1AbC-drive_id"}, utils.StorageConfig{})
	if item.ImageURL != "https://lh3.googleusercontent.com/d/1AbC-drive_id" {
		t.Errorf("drive id resolution = %q", item.ImageURL)
	}
}

func selectionItem(id string, designContext, sculpturalForm []string) models.DisplayItem {
	return models.DisplayItem{
		ID:                 id,
		DesignContextTags:  designContext,
		SculpturalFormTags: sculpturalForm,
	}
}

func TestApplySelectionEmptyKeepsAll(t *testing.T) {
	items := []models.DisplayItem{
		selectionItem("a", []string{"Modern"}, nil),
		selectionItem("b", nil, nil),
	}

	out := ApplySelection(items, models.FilterSelection{})
	if len(out) != 2 {
		t.Fatalf("empty selection dropped items: %d", len(out))
	}
}

func TestApplySelectionAndAcrossCategories(t *testing.T) {
	items := []models.DisplayItem{
		selectionItem("both", []string{"Modern"}, []string{"Abstract"}),
		selectionItem("context-only", []string{"Modern"}, []string{"Figurative"}),
		selectionItem("form-only", []string{"Rustic"}, []string{"Abstract"}),
	}
	selection := models.FilterSelection{
		DesignContext:  []string{"Modern"},
		SculpturalForm: []string{"Abstract"},
	}

	out := ApplySelection(items, selection)
	if len(out) != 1 || out[0].ID != "both" {
		t.Errorf("ApplySelection = %v, want only 'both'", ids(out))
	}
}

func TestApplySelectionOrWithinCategory(t *testing.T) {
	items := []models.DisplayItem{
		selectionItem("a", []string{"Modern"}, nil),
		selectionItem("b", []string{"Rustic"}, nil),
		selectionItem("c", []string{"Industrial"}, nil),
	}
	selection := models.FilterSelection{DesignContext: []string{"modern", "RUSTIC"}}

	out := ApplySelection(items, selection)
	if !reflect.DeepEqual(ids(out), []string{"a", "b"}) {
		t.Errorf("ApplySelection = %v, want [a b]", ids(out))
	}
}

func TestApplySelectionPreservesOrder(t *testing.T) {
	items := []models.DisplayItem{
		selectionItem("z", []string{"Modern"}, nil),
		selectionItem("m", []string{"Modern"}, nil),
		selectionItem("a", []string{"Modern"}, nil),
	}
	out := ApplySelection(items, models.FilterSelection{DesignContext: []string{"Modern"}})
	if !reflect.DeepEqual(ids(out), []string{"z", "m", "a"}) {
		t.Errorf("order not preserved: %v", ids(out))
	}
}

func TestVocabularySet(t *testing.T) {
	set := newVocabularySet()
	set.add([]string{"Modern", "Rustic"})
	set.add([]string{"Modern", "Abstract"})

	if got := set.sorted(); !reflect.DeepEqual(got, []string{"Abstract", "Modern", "Rustic"}) {
		t.Errorf("sorted = %v", got)
	}
}

func ids(items []models.DisplayItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
