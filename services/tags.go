package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
)

// TagStore is the persistence surface the tag logic needs. *database.TagRepo
// satisfies it in production.
type TagStore interface {
	FindAll() ([]*models.Tag, error)
	FindByID(id uuid.UUID) (*models.Tag, error)
	FindBySlug(slug string) (*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	ExistsByName(name string) (bool, error)
	ExistsBySlug(slug string) (bool, error)
	Add(tag *models.Tag) error
	Update(tag *models.Tag) error
	Delete(id uuid.UUID) error
}

// TagReconciler resolves a requested set of tag names against existing tags,
// creating the ones that are missing.
type TagReconciler struct {
	tags TagStore
}

func NewTagReconciler(tags TagStore) *TagReconciler {
	return &TagReconciler{tags: tags}
}

// Reconcile returns one tag per distinct name in names. An existing tag is
// matched by exact name; a missing one is created with a slug resolved to
// uniqueness. Duplicate names collapse, so reconciling the same name twice in
// one call yields one tag. Reconcile only ever adds tags; association
// replacement on a post is the caller's job.
func (r *TagReconciler) Reconcile(names []string) ([]models.Tag, error) {
	resolved := make([]models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, err := r.tags.FindByName(name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			slug, err := UniqueSlug(Slugify(name), r.tags.ExistsBySlug)
			if err != nil {
				return nil, err
			}
			tag = &models.Tag{ID: uuid.New(), Name: name, Slug: slug}
			if err := r.tags.Add(tag); err != nil {
				return nil, err
			}
		}
		resolved = append(resolved, *tag)
	}

	return resolved, nil
}
