package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns every blog post, published or not
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Tags").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindPublished returns published posts, newest first
func (r *BlogPostRepo) FindPublished() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Tags").Where("published = ?", true).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindByID returns a blog post by its ID, or nil when no row matches
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Tags").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a blog post by its slug, or nil when no row matches
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Tags").First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SearchPublishedByTitle returns published posts whose title contains the
// given substring, case-insensitively
func (r *BlogPostRepo) SearchPublishedByTitle(title string) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Tags").
		Where("published = ? AND title ILIKE ?", true, "%"+title+"%").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindPublishedByTagSlug returns published posts associated with the tag slug
func (r *BlogPostRepo) FindPublishedByTagSlug(tagSlug string) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Tags").
		Joins("JOIN post_tags ON post_tags.blog_post_id = blog_posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.slug = ? AND blog_posts.published = ?", tagSlug, true).
		Order("blog_posts.created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ExistsBySlug reports whether any blog post already holds the slug
func (r *BlogPostRepo) ExistsBySlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Add inserts a new blog post along with its tag associations
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update persists scalar post fields. Associations are managed explicitly
// through ReplaceTags so a save never rewrites join rows as a side effect.
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// ReplaceTags overwrites the post's tag associations with the given set
func (r *BlogPostRepo) ReplaceTags(post *models.BlogPost, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(tags)
}

// Delete removes a blog post by id, cascading to comments and join rows
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Select(clause.Associations).Delete(&models.BlogPost{ID: id}).Error
}
