package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a complete blog post with its tag and comment associations
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blog_posts_slug"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt   *string   `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false;index:idx_blog_posts_published"`
	ViewCount int       `json:"viewCount" db:"view_count" gorm:"type:integer;not null;default:0"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Tags      []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index:idx_blog_posts_created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
