package models

// FilterSelection holds the tag values selected per category. Categories
// combine with AND; within a category any one matching tag is enough.
type FilterSelection struct {
	DesignContext  []string `json:"designContext"`
	SculpturalForm []string `json:"sculpturalForm"`
	InteriorArea   []string `json:"interiorArea"`
	PlacementType  []string `json:"placementType"`
}

// IsEmpty reports whether no category has an active selection
func (s FilterSelection) IsEmpty() bool {
	return len(s.DesignContext) == 0 &&
		len(s.SculpturalForm) == 0 &&
		len(s.InteriorArea) == 0 &&
		len(s.PlacementType) == 0
}

// FilterVocabulary lists the selectable tag values per category, derived
// from the active records, sorted ascending. Never hand-maintained.
type FilterVocabulary struct {
	DesignContexts  []string `json:"designContexts"`
	SculpturalForms []string `json:"sculpturalForms"`
	InteriorAreas   []string `json:"interiorAreas"`
	PlacementTypes  []string `json:"placementTypes"`
}
