package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
)

// In-memory store fakes. They mirror the behavior of the database repos,
// including returning (nil, nil) when a lookup matches no row.

type fakeTagStore struct {
	tags map[uuid.UUID]*models.Tag
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{tags: make(map[uuid.UUID]*models.Tag)}
}

func (s *fakeTagStore) FindAll() ([]*models.Tag, error) {
	out := make([]*models.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeTagStore) FindByID(id uuid.UUID) (*models.Tag, error) {
	return s.tags[id], nil
}

func (s *fakeTagStore) FindBySlug(slug string) (*models.Tag, error) {
	for _, t := range s.tags {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (s *fakeTagStore) FindByName(name string) (*models.Tag, error) {
	for _, t := range s.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (s *fakeTagStore) ExistsByName(name string) (bool, error) {
	t, _ := s.FindByName(name)
	return t != nil, nil
}

func (s *fakeTagStore) ExistsBySlug(slug string) (bool, error) {
	t, _ := s.FindBySlug(slug)
	return t != nil, nil
}

func (s *fakeTagStore) Add(tag *models.Tag) error {
	s.tags[tag.ID] = tag
	return nil
}

func (s *fakeTagStore) Update(tag *models.Tag) error {
	s.tags[tag.ID] = tag
	return nil
}

func (s *fakeTagStore) Delete(id uuid.UUID) error {
	delete(s.tags, id)
	return nil
}

type fakePostStore struct {
	posts map[uuid.UUID]*models.BlogPost
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[uuid.UUID]*models.BlogPost)}
}

func (s *fakePostStore) FindAll() ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	// newest first, matching the repo's ORDER BY created_at DESC
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakePostStore) FindPublished() ([]*models.BlogPost, error) {
	var out []*models.BlogPost
	for _, p := range s.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakePostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	return s.posts[id], nil
}

func (s *fakePostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakePostStore) SearchPublishedByTitle(title string) ([]*models.BlogPost, error) {
	var out []*models.BlogPost
	for _, p := range s.posts {
		if p.Published && strings.Contains(strings.ToLower(p.Title), strings.ToLower(title)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePostStore) FindPublishedByTagSlug(tagSlug string) ([]*models.BlogPost, error) {
	var out []*models.BlogPost
	for _, p := range s.posts {
		if !p.Published {
			continue
		}
		for _, t := range p.Tags {
			if t.Slug == tagSlug {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (s *fakePostStore) ExistsBySlug(slug string) (bool, error) {
	p, _ := s.FindBySlug(slug)
	return p != nil, nil
}

func (s *fakePostStore) Add(post *models.BlogPost) error {
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostStore) Update(post *models.BlogPost) error {
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostStore) ReplaceTags(post *models.BlogPost, tags []models.Tag) error {
	stored := s.posts[post.ID]
	if stored != nil {
		stored.Tags = tags
	}
	return nil
}

func (s *fakePostStore) Delete(id uuid.UUID) error {
	delete(s.posts, id)
	return nil
}

type fakeCommentStore struct {
	comments map[uuid.UUID]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[uuid.UUID]*models.Comment)}
}

func (s *fakeCommentStore) FindByPostID(postID uuid.UUID) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	// newest first, matching the repo's ORDER BY created_at DESC
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeCommentStore) CountByPostID(postID uuid.UUID) (int64, error) {
	comments, _ := s.FindByPostID(postID)
	return int64(len(comments)), nil
}

func (s *fakeCommentStore) FindByID(id uuid.UUID) (*models.Comment, error) {
	return s.comments[id], nil
}

func (s *fakeCommentStore) Add(comment *models.Comment) error {
	s.comments[comment.ID] = comment
	return nil
}

func (s *fakeCommentStore) Delete(id uuid.UUID) error {
	delete(s.comments, id)
	return nil
}

type fakeProjectStore struct {
	projects map[uuid.UUID]*models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (s *fakeProjectStore) FindAllOrdered() ([]*models.Project, error) {
	out := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (s *fakeProjectStore) FindFeatured() ([]*models.Project, error) {
	all, _ := s.FindAllOrdered()
	var out []*models.Project
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	return s.projects[id], nil
}

func (s *fakeProjectStore) FindBySlug(slug string) (*models.Project, error) {
	for _, p := range s.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeProjectStore) ExistsBySlug(slug string) (bool, error) {
	p, _ := s.FindBySlug(slug)
	return p != nil, nil
}

func (s *fakeProjectStore) Count() (int64, error) {
	return int64(len(s.projects)), nil
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	s.projects[project.ID] = project
	return nil
}

func (s *fakeProjectStore) Update(project *models.Project) error {
	s.projects[project.ID] = project
	return nil
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	delete(s.projects, id)
	return nil
}

type fakeGalleryStore struct {
	images map[uuid.UUID]*models.GalleryImage
}

func newFakeGalleryStore() *fakeGalleryStore {
	return &fakeGalleryStore{images: make(map[uuid.UUID]*models.GalleryImage)}
}

func (s *fakeGalleryStore) FindAllByDisplayOrder() ([]*models.GalleryImage, error) {
	out := make([]*models.GalleryImage, 0, len(s.images))
	for _, img := range s.images {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (s *fakeGalleryStore) FindAllByUploadDate() ([]*models.GalleryImage, error) {
	out := make([]*models.GalleryImage, 0, len(s.images))
	for _, img := range s.images {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (s *fakeGalleryStore) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	return s.images[id], nil
}

func (s *fakeGalleryStore) Count() (int64, error) {
	return int64(len(s.images)), nil
}

func (s *fakeGalleryStore) Add(image *models.GalleryImage) error {
	s.images[image.ID] = image
	return nil
}

func (s *fakeGalleryStore) Update(image *models.GalleryImage) error {
	s.images[image.ID] = image
	return nil
}

func (s *fakeGalleryStore) Delete(id uuid.UUID) error {
	delete(s.images, id)
	return nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) ExistsByUsername(username string) (bool, error) {
	u, _ := s.FindByUsername(username)
	return u != nil, nil
}

func (s *fakeUserStore) ExistsByEmail(email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Update(user *models.User) error {
	s.users[user.ID] = user
	return nil
}
