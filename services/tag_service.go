package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// TagService orchestrates explicit tag management. Unlike reconciliation during
// post writes, a duplicate name on these paths is a Conflict, not something to
// auto-resolve.
type TagService struct {
	tags TagStore
}

func NewTagService(tags TagStore) *TagService {
	return &TagService{tags: tags}
}

// List returns all tags
func (s *TagService) List() ([]*models.Tag, error) {
	return s.tags.FindAll()
}

// GetByID returns a tag by id
func (s *TagService) GetByID(id uuid.UUID) (*models.Tag, error) {
	tag, err := s.tags.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errs.NewNotFound("tag")
	}
	return tag, nil
}

// GetBySlug returns a tag by slug
func (s *TagService) GetBySlug(slug string) (*models.Tag, error) {
	tag, err := s.tags.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errs.NewNotFound("tag")
	}
	return tag, nil
}

// Create inserts a new tag. The name must be free; the slug is derived from the
// name and resolved to uniqueness.
func (s *TagService) Create(name string) (*models.Tag, error) {
	if name == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	exists, err := s.tags.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewAlreadyExists("tag")
	}

	slug, err := UniqueSlug(Slugify(name), s.tags.ExistsBySlug)
	if err != nil {
		return nil, err
	}

	tag := &models.Tag{ID: uuid.New(), Name: name, Slug: slug}
	if err := s.tags.Add(tag); err != nil {
		return nil, errs.NewDatabaseError("create", "tag", err)
	}
	return tag, nil
}

// Update renames a tag. The slug is regenerated from the new name without
// counter resolution; a collision surfaces from the store's unique constraint.
func (s *TagService) Update(id uuid.UUID, newName string) (*models.Tag, error) {
	if newName == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	tag, err := s.tags.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errs.NewNotFound("tag")
	}

	if tag.Name != newName {
		exists, err := s.tags.ExistsByName(newName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.NewAlreadyExists("tag name")
		}
		tag.Name = newName
		tag.Slug = Slugify(newName)
	}

	if err := s.tags.Update(tag); err != nil {
		return nil, errs.NewDatabaseError("update", "tag", err)
	}
	return tag, nil
}

// Delete removes a tag and its post associations
func (s *TagService) Delete(id uuid.UUID) error {
	tag, err := s.tags.FindByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return errs.NewNotFound("tag")
	}
	if err := s.tags.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "tag", err)
	}
	return nil
}
