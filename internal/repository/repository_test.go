package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return fs
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	user := &model.User{
		ID:        "u-1",
		Email:     "editor@example.com",
		Role:      "editor",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.Error(t, repo.Create(ctx, user), "duplicate email must be rejected")

	found, err := repo.FindByEmail(ctx, "editor@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.ID)

	updated, err := repo.Update(ctx, "editor@example.com", func(u *model.User) {
		u.Role = "admin"
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	// The mutation is durable, not just applied to the returned copy.
	found, err = repo.FindByEmail(ctx, "editor@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", found.Role)

	_, err = repo.Update(ctx, "nobody@example.com", func(u *model.User) {})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestUserRepository_PersistsPasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	require.NoError(t, repo.Create(ctx, &model.User{
		ID:    "u-1",
		Email: "owner@example.com",
		Role:  "owner",
	}))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), 10)
	require.NoError(t, err)
	_, err = repo.Update(ctx, "owner@example.com", func(u *model.User) {
		u.PasswordHash = string(hash)
		u.PasswordSet = true
	})
	require.NoError(t, err)

	// The hash must survive the trip through the store, or every account that
	// sets a password locks itself out on the next login.
	found, err := repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.True(t, found.PasswordSet)
	assert.Equal(t, string(hash), found.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte("secret-pass")))
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestStore(t))

	_, err := repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, errors.ErrProjectNotFound)

	first := &model.Project{ID: "p-1", Title: "First"}
	second := &model.Project{ID: "p-2", Title: "Second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	updated, err := repo.Update(ctx, "p-1", func(p *model.Project) {
		p.Title = "Renamed"
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(t, repo.Delete(ctx, "p-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "p-1"), errors.ErrProjectNotFound)

	projects, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p-2", projects[0].ID)
}

func TestSettingsRepository_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewSettingsRepository(s)

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settings.SiteTitle)
	assert.NotEmpty(t, settings.Theme)

	// The seed is written back, so a raw read now finds the collection.
	var onDisk model.Settings
	found, err := s.Read(ctx, store.CollectionSettings, &onDisk)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, settings.SiteTitle, onDisk.SiteTitle)

	newTitle := "My Portfolio"
	updated, err := repo.Update(ctx, model.SettingsUpdate{SiteTitle: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "My Portfolio", updated.SiteTitle)
	// Unset fields keep their seeded values.
	assert.Equal(t, settings.Theme, updated.Theme)
}

func TestContentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(newTestStore(t))

	content, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, content.Hero)
	assert.Empty(t, content.CV.Filename)

	hero := map[string]interface{}{"title": "Hello"}
	updated, err := repo.Update(ctx, model.ContentUpdate{Hero: hero})
	require.NoError(t, err)
	assert.Equal(t, "Hello", updated.Hero["title"])
	assert.Equal(t, content.About, updated.About)

	now := time.Now()
	withCV, err := repo.SetCV(ctx, model.CVInfo{
		Filename:     "cv-123.pdf",
		OriginalName: "resume.pdf",
		UploadedAt:   &now,
	})
	require.NoError(t, err)
	assert.Equal(t, "cv-123.pdf", withCV.CV.Filename)
	// Content blocks survive the CV update.
	assert.Equal(t, "Hello", withCV.Hero["title"])
}
