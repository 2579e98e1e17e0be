package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"kala-gallery-me/models"
	"kala-gallery-me/utils"
)

// ContentService loads and serves the site content configuration
// (marketing copy plus the storage and contact-form settings)
type ContentService struct {
	content models.SiteContent
}

// NewContentService loads the content document from contentPath
func NewContentService(contentPath string) (*ContentService, error) {
	// Resolve content path
	if !filepath.IsAbs(contentPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		contentPath = filepath.Join(wd, contentPath)
	}

	// Read content file
	data, err := os.ReadFile(contentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read content config: %w", err)
	}

	// Parse JSON
	var content models.SiteContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content config: %w", err)
	}
	content.Raw = json.RawMessage(data)

	log.Printf("✅ ContentService: Successfully loaded site content from %s", contentPath)
	return &ContentService{content: content}, nil
}

// Content returns the parsed content document
func (s *ContentService) Content() models.SiteContent {
	return s.content
}

// Raw returns the full content document for the frontend
func (s *ContentService) Raw() json.RawMessage {
	return s.content.Raw
}

// StorageConfig returns the image resolution settings from the content
// document. Missing settings yield a zero config; image resolution then
// falls back to placeholders rather than failing.
func (s *ContentService) StorageConfig() utils.StorageConfig {
	return utils.StorageConfig{
		Endpoint: s.content.Design.Storage.URL,
		Bucket:   s.content.Design.Storage.BucketName,
	}
}

// FormSubmissionURL returns the contact form-collection endpoint, or ""
// when not configured
func (s *ContentService) FormSubmissionURL() string {
	return s.content.Contact.Form.SubmissionURL
}
