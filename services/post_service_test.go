package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest() (*PostService, *fakePostStore, *fakeTagStore) {
	posts := newFakePostStore()
	tags := newFakeTagStore()
	return NewPostService(posts, tags), posts, tags
}

func TestPostCreateDerivesSlug(t *testing.T) {
	svc, _, _ := newPostServiceForTest()

	post, err := svc.Create(PostCreate{Title: "Hello, World!", Content: "body"}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, 0, post.ViewCount)
	assert.False(t, post.Published)
}

func TestPostCreateResolvesDuplicateTitles(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	author := uuid.New()

	first, err := svc.Create(PostCreate{Title: "My Post", Content: "a"}, author)
	require.NoError(t, err)
	second, err := svc.Create(PostCreate{Title: "My Post", Content: "b"}, author)
	require.NoError(t, err)
	third, err := svc.Create(PostCreate{Title: "My Post", Content: "c"}, author)
	require.NoError(t, err)

	assert.Equal(t, "my-post", first.Slug)
	assert.Equal(t, "my-post-1", second.Slug)
	assert.Equal(t, "my-post-2", third.Slug)
}

func TestPostCreateRequiresTitleAndContent(t *testing.T) {
	svc, _, _ := newPostServiceForTest()

	_, err := svc.Create(PostCreate{Content: "body"}, uuid.New())
	assert.True(t, errs.IsMissingRequiredFieldError(err))

	_, err = svc.Create(PostCreate{Title: "t"}, uuid.New())
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestPostCreateReconcilesTags(t *testing.T) {
	svc, _, tagStore := newPostServiceForTest()

	post, err := svc.Create(PostCreate{
		Title:   "Tagged",
		Content: "body",
		Tags:    []string{"Go", "Go", "Web"},
	}, uuid.New())
	require.NoError(t, err)

	require.Len(t, post.Tags, 2)
	all, _ := tagStore.FindAll()
	assert.Len(t, all, 2)
}

func TestPostGetByIDIncrementsViewCount(t *testing.T) {
	svc, posts, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{Title: "Views", Content: "body"}, uuid.New())
	require.NoError(t, err)

	_, err = svc.GetByID(created.ID)
	require.NoError(t, err)
	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	stored, _ := posts.FindByID(created.ID)
	assert.Equal(t, 2, stored.ViewCount)
}

func TestPostGetBySlugIncrementsViewCount(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{Title: "Slug Views", Content: "body"}, uuid.New())
	require.NoError(t, err)

	got, err := svc.GetBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)
}

func TestPostGetByIDNotFound(t *testing.T) {
	svc, _, _ := newPostServiceForTest()

	_, err := svc.GetByID(uuid.New())
	assert.True(t, errs.IsNotFound(err))
}

func TestPostUpdateRegeneratesSlugWhenFree(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{Title: "Old Title", Content: "body"}, uuid.New())
	require.NoError(t, err)

	newTitle := "New Title"
	updated, err := svc.Update(created.ID, PostUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
}

func TestPostUpdateKeepsSlugOnCollision(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	author := uuid.New()
	_, err := svc.Create(PostCreate{Title: "Taken", Content: "body"}, author)
	require.NoError(t, err)
	created, err := svc.Create(PostCreate{Title: "Other", Content: "body"}, author)
	require.NoError(t, err)

	// Retitling to a title whose slug is taken keeps the old slug; no
	// counter retry on the update path.
	newTitle := "Taken"
	updated, err := svc.Update(created.ID, PostUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Taken", updated.Title)
	assert.Equal(t, "other", updated.Slug)
}

func TestPostUpdateNilTagsLeavesAssociations(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{
		Title:   "Tagged",
		Content: "body",
		Tags:    []string{"Go"},
	}, uuid.New())
	require.NoError(t, err)

	content := "new body"
	updated, err := svc.Update(created.ID, PostUpdate{Content: &content})
	require.NoError(t, err)
	assert.Len(t, updated.Tags, 1)
}

func TestPostUpdateEmptyTagsClearsAssociations(t *testing.T) {
	svc, posts, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{
		Title:   "Tagged",
		Content: "body",
		Tags:    []string{"Go", "Web"},
	}, uuid.New())
	require.NoError(t, err)

	empty := []string{}
	updated, err := svc.Update(created.ID, PostUpdate{Tags: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	stored, _ := posts.FindByID(created.ID)
	assert.Empty(t, stored.Tags)
}

func TestPostUpdateNotFound(t *testing.T) {
	svc, _, _ := newPostServiceForTest()

	title := "whatever"
	_, err := svc.Update(uuid.New(), PostUpdate{Title: &title})
	assert.True(t, errs.IsNotFound(err))
}

func TestPostTogglePublish(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{Title: "Draft", Content: "body"}, uuid.New())
	require.NoError(t, err)
	require.False(t, created.Published)

	toggled, err := svc.TogglePublish(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Published)

	toggled, err = svc.TogglePublish(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Published)
}

func TestPostDelete(t *testing.T) {
	svc, posts, _ := newPostServiceForTest()
	created, err := svc.Create(PostCreate{Title: "Doomed", Content: "body"}, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	stored, _ := posts.FindByID(created.ID)
	assert.Nil(t, stored)

	err = svc.Delete(created.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestPostListPublishedFiltersDrafts(t *testing.T) {
	svc, _, _ := newPostServiceForTest()
	author := uuid.New()
	_, err := svc.Create(PostCreate{Title: "Live", Content: "body", Published: true}, author)
	require.NoError(t, err)
	_, err = svc.Create(PostCreate{Title: "Draft", Content: "body"}, author)
	require.NoError(t, err)

	published, err := svc.ListPublished()
	require.NoError(t, err)
	assert.Len(t, published, 1)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostListPublishedNewestFirst(t *testing.T) {
	svc, posts, _ := newPostServiceForTest()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	old := &models.BlogPost{
		ID: uuid.New(), Title: "Old", Slug: "old", Content: "body",
		Published: true, CreatedAt: base,
	}
	recent := &models.BlogPost{
		ID: uuid.New(), Title: "Recent", Slug: "recent", Content: "body",
		Published: true, CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, posts.Add(old))
	require.NoError(t, posts.Add(recent))

	published, err := svc.ListPublished()
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, recent.ID, published[0].ID)
	assert.Equal(t, old.ID, published[1].ID)
}
