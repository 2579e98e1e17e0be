package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PlaceholderImageURL is returned whenever an image reference cannot be
// resolved. Pages always get a renderable URL, never an error.
const PlaceholderImageURL = "https://placehold.co/600x400?text=Image+Unavailable"

const driveImageBaseURL = "https://lh3.googleusercontent.com/d/"

// driveShareURL matches the /d/<fileId>/ segment of a Drive sharing link
var driveShareURL = regexp.MustCompile(`/d/(.+?)/`)

// StorageConfig holds the storage-bucket half of image resolution: a hosted
// object store serving public files under a fixed URL prefix.
type StorageConfig struct {
	Endpoint string
	Bucket   string
}

// DriveImageURL builds the CDN URL for a Google Drive file id.
// width of 0 means original size.
func DriveImageURL(fileID string, width int) string {
	if fileID == "" {
		return PlaceholderImageURL
	}
	if width > 0 {
		return fmt.Sprintf("%s%s=w%d", driveImageBaseURL, fileID, width)
	}
	return driveImageBaseURL + fileID
}

// StorageImageURL builds the public object URL for a stored image path.
// Full URLs pass through unchanged; an unconfigured endpoint or empty path
// yields the placeholder.
func StorageImageURL(cfg StorageConfig, imagePath string) string {
	if cfg.Endpoint == "" || imagePath == "" {
		return PlaceholderImageURL
	}
	if strings.HasPrefix(imagePath, "http") {
		return imagePath
	}
	bucket := cfg.Bucket
	if bucket == "" {
		bucket = "Images"
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		strings.TrimSuffix(cfg.Endpoint, "/"), bucket, imagePath)
}

// ResolveImageURL resolves a stored image reference to a display URL.
// References holding a full URL pass through, storage paths go through the
// bucket builder, and bare Drive file ids fall back to the Drive CDN.
// Total: every input maps to some URL.
func ResolveImageURL(cfg StorageConfig, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return PlaceholderImageURL
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	// Paths with an extension or directory separator live in the bucket
	if strings.ContainsAny(ref, "/.") {
		return StorageImageURL(cfg, ref)
	}
	return DriveImageURL(ref, 0)
}

// ExtractDriveFileID pulls the file id out of a Drive sharing URL,
// e.g. https://drive.google.com/file/d/<id>/view. Returns "" if the URL
// does not carry one.
func ExtractDriveFileID(url string) string {
	matches := driveShareURL.FindStringSubmatch(url)
	if len(matches) != 2 {
		return ""
	}
	return matches[1]
}
