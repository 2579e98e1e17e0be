package models

import "encoding/json"

// SiteContent is the content configuration document (content.json). The
// typed sections carry the settings the backend consumes; everything else
// (marketing copy for the pages) is passed through to the frontend
// untouched via the raw document.
type SiteContent struct {
	Design  DesignContent  `json:"design"`
	Contact ContactContent `json:"contact"`

	// Raw holds the full decoded document for /api/content
	Raw json.RawMessage `json:"-"`
}

// DesignContent holds the Collection page settings
type DesignContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Storage  StorageConfig `json:"storage"`
}

// StorageConfig holds the hosted object-store connection settings used for
// image URL resolution
type StorageConfig struct {
	URL        string `json:"url"`
	AnonKey    string `json:"anonKey"`
	BucketName string `json:"bucketName"`
}

// ContactContent holds the contact page settings
type ContactContent struct {
	Form FormConfig `json:"form"`
}

// FormConfig holds the third-party form-collection endpoint
type FormConfig struct {
	SubmissionURL string `json:"submissionUrl"`
}
