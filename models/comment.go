package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an anonymous comment on a blog post. The display name is
// server-generated, never user-supplied.
type Comment struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	AnonymousName string    `json:"anonymousName" db:"anonymous_name" gorm:"type:text;not null"`
	PostID        uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;index:idx_comments_post_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index:idx_comments_created_at"`
}
