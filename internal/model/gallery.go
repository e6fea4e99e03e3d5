package model

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// swagger:model GalleryItem
type GalleryItem struct {
	BaseModel
	MediaType MediaType `gorm:"type:varchar(20);not null" json:"media_type"`
	Title     string    `gorm:"size:200" json:"title"`
	URL       string    `gorm:"size:255;not null" json:"url"`
	IsActive  bool      `json:"is_active"`

	// Probed from the uploaded file for videos, zero for images.
	DurationSeconds float64 `json:"duration_seconds"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
