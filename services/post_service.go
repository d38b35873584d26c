package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// PostStore is the persistence surface PostService needs. *database.BlogPostRepo
// satisfies it in production.
type PostStore interface {
	FindAll() ([]*models.BlogPost, error)
	FindPublished() ([]*models.BlogPost, error)
	FindByID(id uuid.UUID) (*models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	SearchPublishedByTitle(title string) ([]*models.BlogPost, error)
	FindPublishedByTagSlug(tagSlug string) ([]*models.BlogPost, error)
	ExistsBySlug(slug string) (bool, error)
	Add(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	ReplaceTags(post *models.BlogPost, tags []models.Tag) error
	Delete(id uuid.UUID) error
}

// PostCreate carries the fields accepted when creating a blog post. The slug is
// never client-supplied; it is derived from the title.
type PostCreate struct {
	Title     string
	Content   string
	Excerpt   *string
	Published bool
	Tags      []string
}

// PostUpdate carries a partial update. A nil field is left untouched. Tags is a
// pointer to a slice on purpose: nil means "leave associations alone", an empty
// slice means "clear every tag". That distinction is load-bearing.
type PostUpdate struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Published *bool
	Tags      *[]string
}

// PostService orchestrates blog post lifecycle operations
type PostService struct {
	posts      PostStore
	reconciler *TagReconciler
}

func NewPostService(posts PostStore, tags TagStore) *PostService {
	return &PostService{posts: posts, reconciler: NewTagReconciler(tags)}
}

// ListPublished returns published posts, newest first
func (s *PostService) ListPublished() ([]*models.BlogPost, error) {
	return s.posts.FindPublished()
}

// ListAll returns every post including unpublished drafts (owner view)
func (s *PostService) ListAll() ([]*models.BlogPost, error) {
	return s.posts.FindAll()
}

// GetByID returns a post and bumps its view count as a side effect of the read
func (s *PostService) GetByID(id uuid.UUID) (*models.BlogPost, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}
	post.ViewCount++
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetBySlug returns a post and bumps its view count as a side effect of the read
func (s *PostService) GetBySlug(slug string) (*models.BlogPost, error) {
	post, err := s.posts.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}
	post.ViewCount++
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// SearchPublished returns published posts whose title contains the substring,
// case-insensitively
func (s *PostService) SearchPublished(title string) ([]*models.BlogPost, error) {
	return s.posts.SearchPublishedByTitle(title)
}

// ListByTagSlug returns published posts carrying the tag
func (s *PostService) ListByTagSlug(tagSlug string) ([]*models.BlogPost, error) {
	return s.posts.FindPublishedByTagSlug(tagSlug)
}

// Create inserts a new post. The slug is derived from the title and resolved to
// uniqueness with suffix counters, so two posts with identical titles get
// distinct slugs rather than a duplicate-key failure. Tag names are reconciled
// against existing tags, creating the missing ones.
func (s *PostService) Create(in PostCreate, authorID uuid.UUID) (*models.BlogPost, error) {
	if in.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if in.Content == "" {
		return nil, errs.NewMissingRequiredFieldError("content")
	}

	slug, err := UniqueSlug(Slugify(in.Title), s.posts.ExistsBySlug)
	if err != nil {
		return nil, err
	}

	tags, err := s.reconciler.Reconcile(in.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		ID:        uuid.New(),
		Title:     in.Title,
		Slug:      slug,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Published: in.Published,
		ViewCount: 0,
		AuthorID:  authorID,
	}
	if err := s.posts.Add(post); err != nil {
		return nil, errs.NewDatabaseError("create", "blog post", err)
	}
	if len(tags) > 0 {
		if err := s.posts.ReplaceTags(post, tags); err != nil {
			return nil, errs.NewDatabaseError("tag", "blog post", err)
		}
	}
	post.Tags = tags
	return post, nil
}

// Update applies a partial update. A changed title regenerates the slug, but
// the new slug is adopted only when it is free; on collision the old slug is
// silently kept (no counter retry on the update path, unlike create).
func (s *PostService) Update(id uuid.UUID, in PostUpdate) (*models.BlogPost, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}

	if in.Title != nil && *in.Title != post.Title {
		post.Title = *in.Title
		newSlug := Slugify(*in.Title)
		if newSlug != post.Slug {
			taken, err := s.posts.ExistsBySlug(newSlug)
			if err != nil {
				return nil, err
			}
			if !taken {
				post.Slug = newSlug
			}
		}
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = in.Excerpt
	}
	if in.Published != nil {
		post.Published = *in.Published
	}

	if err := s.posts.Update(post); err != nil {
		return nil, errs.NewDatabaseError("update", "blog post", err)
	}

	// nil Tags leaves associations untouched; an empty slice clears them all
	if in.Tags != nil {
		tags, err := s.reconciler.Reconcile(*in.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.posts.ReplaceTags(post, tags); err != nil {
			return nil, errs.NewDatabaseError("tag", "blog post", err)
		}
		post.Tags = tags
	}

	return post, nil
}

// Delete removes a post; comments and tag associations go with it
func (s *PostService) Delete(id uuid.UUID) error {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return errs.NewNotFound("blog post")
	}
	if err := s.posts.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "blog post", err)
	}
	return nil
}

// TogglePublish flips the published flag and returns the updated post
func (s *PostService) TogglePublish(id uuid.UUID) (*models.BlogPost, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}
	post.Published = !post.Published
	if err := s.posts.Update(post); err != nil {
		return nil, errs.NewDatabaseError("update", "blog post", err)
	}
	return post, nil
}
