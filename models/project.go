package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with metadata and presentation order
type Project struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug         string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_slug"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty" db:"thumbnail_url" gorm:"type:text"`
	DemoVideoURL *string   `json:"demoVideoUrl,omitempty" db:"demo_video_url" gorm:"type:text"`
	GithubURL    *string   `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	LiveURL      *string   `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	Technologies []string  `json:"technologies" db:"technologies" gorm:"serializer:json"`
	DisplayOrder int       `json:"displayOrder" db:"display_order" gorm:"type:integer;not null;default:0;index:idx_projects_display_order"`
	Featured     bool      `json:"featured" db:"featured" gorm:"not null;default:false;index:idx_projects_featured"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
