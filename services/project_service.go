package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// ProjectStore is the persistence surface ProjectService needs.
// *database.ProjectRepo satisfies it in production.
type ProjectStore interface {
	FindAllOrdered() ([]*models.Project, error)
	FindFeatured() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	ExistsBySlug(slug string) (bool, error)
	Count() (int64, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// ProjectCreate carries the fields accepted when creating a project
type ProjectCreate struct {
	Title        string
	Description  string
	ThumbnailURL *string
	DemoVideoURL *string
	GithubURL    *string
	LiveURL      *string
	Technologies []string
	DisplayOrder *int
	Featured     bool
}

// ProjectUpdate carries a partial update; nil fields are left untouched
type ProjectUpdate struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	DemoVideoURL *string
	GithubURL    *string
	LiveURL      *string
	Technologies *[]string
	DisplayOrder *int
	Featured     *bool
}

// ProjectService orchestrates portfolio project lifecycle operations
type ProjectService struct {
	projects ProjectStore
}

func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns all projects in display order
func (s *ProjectService) List() ([]*models.Project, error) {
	return s.projects.FindAllOrdered()
}

// ListFeatured returns featured projects in display order
func (s *ProjectService) ListFeatured() ([]*models.Project, error) {
	return s.projects.FindFeatured()
}

// GetByID returns a project by id
func (s *ProjectService) GetByID(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	return project, nil
}

// GetBySlug returns a project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	project, err := s.projects.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	return project, nil
}

// Create inserts a new project with a uniqueness-resolved slug. When no display
// order is given (or it is zero) the project is appended at the end.
func (s *ProjectService) Create(in ProjectCreate) (*models.Project, error) {
	if in.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if in.Description == "" {
		return nil, errs.NewMissingRequiredFieldError("description")
	}

	slug, err := UniqueSlug(Slugify(in.Title), s.projects.ExistsBySlug)
	if err != nil {
		return nil, err
	}

	displayOrder := 0
	if in.DisplayOrder != nil {
		displayOrder = *in.DisplayOrder
	}
	if displayOrder == 0 {
		count, err := s.projects.Count()
		if err != nil {
			return nil, err
		}
		displayOrder = int(count) + 1
	}

	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	project := &models.Project{
		ID:           uuid.New(),
		Title:        in.Title,
		Slug:         slug,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		DemoVideoURL: in.DemoVideoURL,
		GithubURL:    in.GithubURL,
		LiveURL:      in.LiveURL,
		Technologies: technologies,
		DisplayOrder: displayOrder,
		Featured:     in.Featured,
	}
	if err := s.projects.Add(project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}
	return project, nil
}

// Update applies a partial update. Slug handling mirrors posts: a changed title
// regenerates the slug, adopted only when free, otherwise the old slug stays.
func (s *ProjectService) Update(id uuid.UUID, in ProjectUpdate) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}

	if in.Title != nil && *in.Title != project.Title {
		project.Title = *in.Title
		newSlug := Slugify(*in.Title)
		if newSlug != project.Slug {
			taken, err := s.projects.ExistsBySlug(newSlug)
			if err != nil {
				return nil, err
			}
			if !taken {
				project.Slug = newSlug
			}
		}
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.ThumbnailURL != nil {
		project.ThumbnailURL = in.ThumbnailURL
	}
	if in.DemoVideoURL != nil {
		project.DemoVideoURL = in.DemoVideoURL
	}
	if in.GithubURL != nil {
		project.GithubURL = in.GithubURL
	}
	if in.LiveURL != nil {
		project.LiveURL = in.LiveURL
	}
	if in.Technologies != nil {
		project.Technologies = *in.Technologies
	}
	if in.DisplayOrder != nil {
		project.DisplayOrder = *in.DisplayOrder
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}

	if err := s.projects.Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}

// Delete removes a project by id
func (s *ProjectService) Delete(id uuid.UUID) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return errs.NewNotFound("project")
	}
	if err := s.projects.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

// ToggleFeatured flips the featured flag and returns the updated project
func (s *ProjectService) ToggleFeatured(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	project.Featured = !project.Featured
	if err := s.projects.Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}

// SetDisplayOrder assigns an explicit display order to one project
func (s *ProjectService) SetDisplayOrder(id uuid.UUID, order int) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return errs.NewNotFound("project")
	}
	project.DisplayOrder = order
	if err := s.projects.Update(project); err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}
	return nil
}
