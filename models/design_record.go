package models

import "time"

// DesignRecord represents a design asset row as stored in the backend table.
// The four categorical columns keep their raw stored encoding (plain string,
// JSON array literal, or single-quote pseudo-array); normalization happens
// at the repository boundary.
type DesignRecord struct {
	ID             string
	ImagePath      string
	Title          string
	Description    string
	DesignContext  string
	SculpturalForm string
	InteriorArea   string
	PlacementType  string
	IsActive       bool
	IsAvailable    bool
	CreatedAt      time.Time
}
