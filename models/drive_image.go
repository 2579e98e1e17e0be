package models

// DriveImage represents an image file found in the gallery's Google Drive
// folder during synchronization
type DriveImage struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	ImageURL string `json:"imageUrl"`
}
