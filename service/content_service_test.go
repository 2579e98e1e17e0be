package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const sampleContent = `{
  "design": {
    "title": "The Collection",
    "storage": {
      "url": "https://example.supabase.co",
      "anonKey": "anon-key",
      "bucketName": "Images"
    }
  },
  "contact": {
    "form": {
      "submissionUrl": "https://docs.google.com/forms/d/e/abc/formResponse"
    }
  }
}`

func writeContentFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(sampleContent), 0644); err != nil {
		t.Fatalf("failed to write content file: %v", err)
	}
	return path
}

func TestNewContentService(t *testing.T) {
	svc, err := NewContentService(writeContentFile(t))
	if err != nil {
		t.Fatalf("NewContentService failed: %v", err)
	}

	if got := svc.Content().Design.Title; got != "The Collection" {
		t.Errorf("Design.Title = %q", got)
	}

	storage := svc.StorageConfig()
	if storage.Endpoint != "https://example.supabase.co" {
		t.Errorf("Endpoint = %q", storage.Endpoint)
	}
	if storage.Bucket != "Images" {
		t.Errorf("Bucket = %q", storage.Bucket)
	}

	if got := svc.FormSubmissionURL(); got != "https://docs.google.com/forms/d/e/abc/formResponse" {
		t.Errorf("FormSubmissionURL = %q", got)
	}
}

func TestContentServiceRawRoundTrips(t *testing.T) {
	svc, err := NewContentService(writeContentFile(t))
	if err != nil {
		t.Fatalf("NewContentService failed: %v", err)
	}

	// Raw carries the whole document, including sections the typed model
	// does not know about
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(svc.Raw(), &doc); err != nil {
		t.Fatalf("Raw is not valid JSON: %v", err)
	}
	if _, ok := doc["design"]; !ok {
		t.Error("Raw missing design section")
	}
	if _, ok := doc["contact"]; !ok {
		t.Error("Raw missing contact section")
	}
}

func TestNewContentServiceMissingFile(t *testing.T) {
	if _, err := NewContentService(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing content file should fail")
	}
}

func TestNewContentServiceMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write content file: %v", err)
	}
	if _, err := NewContentService(path); err == nil {
		t.Error("malformed content file should fail")
	}
}
