package models

import "time"

// DisplayItem is the canonical, render-ready view of a design record.
// Each categorical attribute carries both the normalized tag list (for
// matching and ranking) and its ", "-joined display string.
type DisplayItem struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description"`

	DesignContext  string `json:"designContext"`
	SculpturalForm string `json:"sculpturalForm"`
	InteriorArea   string `json:"interiorArea"`
	PlacementType  string `json:"placementType"`

	DesignContextTags  []string `json:"designContextTags"`
	SculpturalFormTags []string `json:"sculpturalFormTags"`
	InteriorAreaTags   []string `json:"interiorAreaTags"`
	PlacementTypeTags  []string `json:"placementTypeTags"`

	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DesignDetail is the detail-page payload: the viewed item plus the two
// ranked recommendation lists.
type DesignDetail struct {
	Item    DisplayItem   `json:"item"`
	Similar []DisplayItem `json:"similar"`
	Other   []DisplayItem `json:"other"`
}
