package domain

// Video is an entry in the static education video catalog.
type Video struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
	Language        string `json:"language"`
}
