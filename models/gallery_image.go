package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage stores the URL of an uploaded image plus presentation metadata.
// Only URLs are stored; file storage lives outside this service.
type GalleryImage struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ImageURL     string    `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty" db:"thumbnail_url" gorm:"type:text"`
	Caption      *string   `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	DisplayOrder int       `json:"displayOrder" db:"display_order" gorm:"type:integer;not null;default:0;index:idx_gallery_display_order"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index:idx_gallery_uploaded_at"`
}
