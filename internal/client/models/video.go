package models

// UploadResult is returned after a video is published.
type UploadResult struct {
	OK      bool   `json:"ok"`
	VideoID string `json:"video_id"`
}

// Thumbnail is a generated cover image.
type Thumbnail struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt,omitempty"`
}
