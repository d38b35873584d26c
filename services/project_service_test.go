package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreateAppendsAtEnd(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())

	first, err := svc.Create(ProjectCreate{Title: "One", Description: "d"})
	require.NoError(t, err)
	second, err := svc.Create(ProjectCreate{Title: "Two", Description: "d"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
}

func TestProjectCreateHonorsExplicitOrder(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())

	order := 7
	project, err := svc.Create(ProjectCreate{Title: "Placed", Description: "d", DisplayOrder: &order})
	require.NoError(t, err)
	assert.Equal(t, 7, project.DisplayOrder)
}

func TestProjectCreateDefaultsTechnologies(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())

	project, err := svc.Create(ProjectCreate{Title: "Bare", Description: "d"})
	require.NoError(t, err)
	assert.NotNil(t, project.Technologies)
	assert.Empty(t, project.Technologies)
}

func TestProjectCreateResolvesDuplicateTitles(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())

	first, err := svc.Create(ProjectCreate{Title: "Same", Description: "d"})
	require.NoError(t, err)
	second, err := svc.Create(ProjectCreate{Title: "Same", Description: "d"})
	require.NoError(t, err)

	assert.Equal(t, "same", first.Slug)
	assert.Equal(t, "same-1", second.Slug)
}

func TestProjectCreateRequiresTitleAndDescription(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())

	_, err := svc.Create(ProjectCreate{Description: "d"})
	assert.True(t, errs.IsMissingRequiredFieldError(err))

	_, err = svc.Create(ProjectCreate{Title: "t"})
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestProjectUpdateKeepsSlugOnCollision(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())
	_, err := svc.Create(ProjectCreate{Title: "Taken", Description: "d"})
	require.NoError(t, err)
	created, err := svc.Create(ProjectCreate{Title: "Other", Description: "d"})
	require.NoError(t, err)

	newTitle := "Taken"
	updated, err := svc.Update(created.ID, ProjectUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Taken", updated.Title)
	assert.Equal(t, "other", updated.Slug)
}

func TestProjectUpdatePartialFields(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())
	created, err := svc.Create(ProjectCreate{Title: "Site", Description: "old"})
	require.NoError(t, err)

	description := "new"
	github := "https://github.com/example/site"
	updated, err := svc.Update(created.ID, ProjectUpdate{
		Description: &description,
		GithubURL:   &github,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Description)
	require.NotNil(t, updated.GithubURL)
	assert.Equal(t, github, *updated.GithubURL)
	assert.Equal(t, "Site", updated.Title)
}

func TestProjectToggleFeatured(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())
	created, err := svc.Create(ProjectCreate{Title: "Star", Description: "d"})
	require.NoError(t, err)
	require.False(t, created.Featured)

	toggled, err := svc.ToggleFeatured(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Featured)

	toggled, err = svc.ToggleFeatured(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Featured)
}

func TestProjectSetDisplayOrder(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectService(store)
	created, err := svc.Create(ProjectCreate{Title: "Movable", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.SetDisplayOrder(created.ID, 42))
	stored, _ := store.FindByID(created.ID)
	assert.Equal(t, 42, stored.DisplayOrder)

	err = svc.SetDisplayOrder(uuid.New(), 1)
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectListFeatured(t *testing.T) {
	svc := NewProjectService(newFakeProjectStore())
	featured, err := svc.Create(ProjectCreate{Title: "Shown", Description: "d", Featured: true})
	require.NoError(t, err)
	_, err = svc.Create(ProjectCreate{Title: "Hidden", Description: "d"})
	require.NoError(t, err)

	list, err := svc.ListFeatured()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, featured.ID, list[0].ID)
}

func TestProjectDelete(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectService(store)
	created, err := svc.Create(ProjectCreate{Title: "Doomed", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	stored, _ := store.FindByID(created.ID)
	assert.Nil(t, stored)

	err = svc.Delete(created.ID)
	assert.True(t, errs.IsNotFound(err))
}
