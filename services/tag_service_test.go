package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagServiceCreate(t *testing.T) {
	svc := NewTagService(newFakeTagStore())

	tag, err := svc.Create("Machine Learning")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", tag.Name)
	assert.Equal(t, "machine-learning", tag.Slug)
}

func TestTagServiceCreateDuplicateNameConflicts(t *testing.T) {
	svc := NewTagService(newFakeTagStore())

	_, err := svc.Create("Go")
	require.NoError(t, err)

	_, err = svc.Create("Go")
	assert.True(t, errs.IsConflict(err))
}

func TestTagServiceCreateResolvesSlugCollision(t *testing.T) {
	store := newFakeTagStore()
	require.NoError(t, store.Add(&models.Tag{ID: uuid.New(), Name: "C++", Slug: "c"}))
	svc := NewTagService(store)

	tag, err := svc.Create("C--")
	require.NoError(t, err)
	assert.Equal(t, "c-1", tag.Slug)
}

func TestTagServiceCreateRequiresName(t *testing.T) {
	svc := NewTagService(newFakeTagStore())

	_, err := svc.Create("")
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestTagServiceUpdateRenames(t *testing.T) {
	store := newFakeTagStore()
	svc := NewTagService(store)
	created, err := svc.Create("Old Name")
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, "New Name")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new-name", updated.Slug)
}

func TestTagServiceUpdateSameNameIsNoop(t *testing.T) {
	svc := NewTagService(newFakeTagStore())
	created, err := svc.Create("Stable")
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, "Stable")
	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestTagServiceUpdateToTakenNameConflicts(t *testing.T) {
	svc := NewTagService(newFakeTagStore())
	_, err := svc.Create("Go")
	require.NoError(t, err)
	other, err := svc.Create("Rust")
	require.NoError(t, err)

	_, err = svc.Update(other.ID, "Go")
	assert.True(t, errs.IsConflict(err))
}

func TestTagServiceUpdateNotFound(t *testing.T) {
	svc := NewTagService(newFakeTagStore())

	_, err := svc.Update(uuid.New(), "Anything")
	assert.True(t, errs.IsNotFound(err))
}

func TestTagServiceDelete(t *testing.T) {
	store := newFakeTagStore()
	svc := NewTagService(store)
	created, err := svc.Create("Doomed")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	all, _ := store.FindAll()
	assert.Empty(t, all)

	err = svc.Delete(created.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestTagServiceGetBySlug(t *testing.T) {
	svc := NewTagService(newFakeTagStore())
	created, err := svc.Create("Find Me")
	require.NoError(t, err)

	tag, err := svc.GetBySlug("find-me")
	require.NoError(t, err)
	assert.Equal(t, created.ID, tag.ID)

	_, err = svc.GetBySlug("missing")
	assert.True(t, errs.IsNotFound(err))
}
