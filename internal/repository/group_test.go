package repository

import (
	"context"
	"errors"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepositoryDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Group{Title: "Books", Slug: "books"}))

	err := repo.Create(ctx, &models.Group{Title: "More Books", Slug: "books"})
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestGroupRepositoryGetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Group{Title: "Travel", Slug: "travel"}))

	group, err := repo.GetBySlug(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, "Travel", group.Title)

	_, err = repo.GetBySlug(ctx, "nowhere")
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestGroupRepositoryListOrdersByTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	for _, g := range []models.Group{
		{Title: "Zines", Slug: "zines"},
		{Title: "Art", Slug: "art"},
		{Title: "Music", Slug: "music"},
	} {
		g := g
		require.NoError(t, repo.Create(ctx, &g))
	}

	groups, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Art", groups[0].Title)
	assert.Equal(t, "Music", groups[1].Title)
	assert.Equal(t, "Zines", groups[2].Title)
}
