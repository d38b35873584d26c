package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the site owner account. There is a single implicit owner and no role
// model. Password is stored in plaintext as a placeholder and is never
// serialized into responses.
type User struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username    string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_users_username"`
	Password    string    `json:"-" db:"password" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	FullName    *string   `json:"fullName,omitempty" db:"full_name" gorm:"type:text"`
	Bio         *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	AvatarURL   *string   `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"type:text"`
	GithubURL   *string   `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" db:"linkedin_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
