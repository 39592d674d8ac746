package share

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
	"github.com/salespulse/backend/internal/infrastructure/cache"
)

func newTestShareService(t *testing.T, shareRepo *MockShareLinkRepository, recordRepo *MockRecordRepository) (*ShareService, *cache.InMemoryStore) {
	t.Helper()
	store := cache.NewInMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	svc := NewShareService(shareRepo, recordRepo, analytics.NewAnomalyDetector(), store, time.Minute, zap.NewNop())
	return svc, store
}

func sharedRecords(t *testing.T) []dataset.Record {
	t.Helper()
	out := make([]dataset.Record, 0, 2)
	for _, spec := range []struct {
		product string
		date    string
		qty     int
		revenue float64
	}{
		{"Widget", "2024-03-01", 5, 50},
		{"Gadget", "2024-03-02", 2, 30},
	} {
		r, err := dataset.NewRecord("owner-1", "default", analytics.SalesRecord{
			ID:           uuid.NewString(),
			ProductName:  spec.product,
			Category:     "Tools",
			DateOfSale:   spec.date,
			QuantitySold: spec.qty,
			Revenue:      spec.revenue,
		})
		require.NoError(t, err)
		out = append(out, *r)
	}
	return out
}

func TestShareService_Create(t *testing.T) {
	ctx := context.Background()

	shareRepo := new(MockShareLinkRepository)
	var saved *dataset.ShareLink
	shareRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*dataset.ShareLink)
	}).Return(nil)

	svc, _ := newTestShareService(t, shareRepo, new(MockRecordRepository))
	resp, err := svc.Create(ctx, "owner-1", CreateShareLinkRequest{DatasetName: "default"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Active)
	require.NotNil(t, saved)
	assert.Equal(t, "owner-1", saved.UserID)
}

func TestShareService_Toggle(t *testing.T) {
	ctx := context.Background()

	link, err := dataset.NewShareLink("owner-1", "default", nil)
	require.NoError(t, err)

	shareRepo := new(MockShareLinkRepository)
	shareRepo.On("FindByID", ctx, "owner-1", link.ID).Return(link, nil)
	shareRepo.On("Save", ctx, link).Return(nil)

	svc, _ := newTestShareService(t, shareRepo, new(MockRecordRepository))
	resp, err := svc.Toggle(ctx, "owner-1", link.ID.String())

	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestShareService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the read-only dashboard", func(t *testing.T) {
		link, err := dataset.NewShareLink("owner-1", "default", nil)
		require.NoError(t, err)

		shareRepo := new(MockShareLinkRepository)
		shareRepo.On("FindByToken", ctx, link.Token).Return(link, nil)

		recordRepo := new(MockRecordRepository)
		recordRepo.On("FindByDataset", ctx, "owner-1", "default").Return(sharedRecords(t), nil)

		svc, _ := newTestShareService(t, shareRepo, recordRepo)
		view, err := svc.Resolve(ctx, link.Token)

		require.NoError(t, err)
		assert.Equal(t, "default", view.DatasetName)
		assert.Equal(t, 2, view.RecordCount)
		assert.Equal(t, 7, view.Stats.TotalSales)
		assert.Len(t, view.Products, 2)
	})

	t.Run("second hit is served from cache", func(t *testing.T) {
		link, err := dataset.NewShareLink("owner-1", "default", nil)
		require.NoError(t, err)

		shareRepo := new(MockShareLinkRepository)
		shareRepo.On("FindByToken", ctx, link.Token).Return(link, nil)

		recordRepo := new(MockRecordRepository)
		recordRepo.On("FindByDataset", ctx, "owner-1", "default").Return(sharedRecords(t), nil).Once()

		svc, _ := newTestShareService(t, shareRepo, recordRepo)

		first, err := svc.Resolve(ctx, link.Token)
		require.NoError(t, err)
		second, err := svc.Resolve(ctx, link.Token)
		require.NoError(t, err)

		assert.Equal(t, first.Stats, second.Stats)
		recordRepo.AssertNumberOfCalls(t, "FindByDataset", 1)
	})

	t.Run("unknown token reads as inactive", func(t *testing.T) {
		shareRepo := new(MockShareLinkRepository)
		shareRepo.On("FindByToken", ctx, "nope").Return(nil, shared.ErrNotFound)

		svc, _ := newTestShareService(t, shareRepo, new(MockRecordRepository))
		_, err := svc.Resolve(ctx, "nope")

		assert.ErrorIs(t, err, shared.ErrShareInactive)
	})

	t.Run("disabled link is rejected", func(t *testing.T) {
		link, err := dataset.NewShareLink("owner-1", "default", nil)
		require.NoError(t, err)
		link.Toggle()

		shareRepo := new(MockShareLinkRepository)
		shareRepo.On("FindByToken", ctx, link.Token).Return(link, nil)

		svc, _ := newTestShareService(t, shareRepo, new(MockRecordRepository))
		_, err = svc.Resolve(ctx, link.Token)

		assert.ErrorIs(t, err, shared.ErrShareInactive)
	})

	t.Run("expired link is rejected", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		link, err := dataset.NewShareLink("owner-1", "default", &past)
		require.NoError(t, err)

		shareRepo := new(MockShareLinkRepository)
		shareRepo.On("FindByToken", ctx, link.Token).Return(link, nil)

		svc, _ := newTestShareService(t, shareRepo, new(MockRecordRepository))
		_, err = svc.Resolve(ctx, link.Token)

		assert.ErrorIs(t, err, shared.ErrShareExpired)
	})
}

func TestShareService_Delete(t *testing.T) {
	ctx := context.Background()

	link, err := dataset.NewShareLink("owner-1", "default", nil)
	require.NoError(t, err)

	t.Run("removes the link and its cached view", func(t *testing.T) {
		shareRepo := new(MockShareLinkRepository)
		shareRepo.On("FindByID", ctx, "owner-1", link.ID).Return(link, nil)
		shareRepo.On("Delete", ctx, "owner-1", link.ID).Return(nil)

		svc, store := newTestShareService(t, shareRepo, new(MockRecordRepository))
		require.NoError(t, store.Set(ctx, link.Token, []byte("{}"), time.Minute))

		require.NoError(t, svc.Delete(ctx, "owner-1", link.ID.String()))

		_, err := store.Get(ctx, link.Token)
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		svc, _ := newTestShareService(t, new(MockShareLinkRepository), new(MockRecordRepository))
		assert.Error(t, svc.Delete(ctx, "owner-1", "nope"))
	})
}
