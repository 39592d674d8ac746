package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
)

func TestGormShareLinkRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and finds by token", func(t *testing.T) {
		repo := NewGormShareLinkRepository(setupTestDB(t))

		link, err := dataset.NewShareLink("user-1", "march", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, link))

		got, err := repo.FindByToken(ctx, link.Token)
		require.NoError(t, err)
		assert.Equal(t, link.ID, got.ID)
		assert.Equal(t, "march", got.DatasetName)
		assert.True(t, got.Active)
	})

	t.Run("unknown token reports not found", func(t *testing.T) {
		repo := NewGormShareLinkRepository(setupTestDB(t))
		_, err := repo.FindByToken(ctx, "no-such-token")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("persists a toggle", func(t *testing.T) {
		repo := NewGormShareLinkRepository(setupTestDB(t))

		link, err := dataset.NewShareLink("user-1", "march", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, link))

		link.Toggle()
		require.NoError(t, repo.Save(ctx, link))

		got, err := repo.FindByToken(ctx, link.Token)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})

	t.Run("lists only the owner's links", func(t *testing.T) {
		repo := NewGormShareLinkRepository(setupTestDB(t))

		mine, err := dataset.NewShareLink("user-1", "march", nil)
		require.NoError(t, err)
		theirs, err := dataset.NewShareLink("user-2", "april", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, mine))
		require.NoError(t, repo.Save(ctx, theirs))

		links, err := repo.FindAllForUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, mine.ID, links[0].ID)
	})

	t.Run("delete is owner scoped", func(t *testing.T) {
		repo := NewGormShareLinkRepository(setupTestDB(t))

		link, err := dataset.NewShareLink("user-1", "march", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, link))

		assert.ErrorIs(t, repo.Delete(ctx, "user-2", link.ID), shared.ErrNotFound)
		assert.NoError(t, repo.Delete(ctx, "user-1", link.ID))
		assert.ErrorIs(t, repo.Delete(ctx, "user-1", uuid.New()), shared.ErrNotFound)
	})
}
