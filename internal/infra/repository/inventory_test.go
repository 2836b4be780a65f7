//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grab-service/internal/domain/quota"
	"grab-service/internal/infra"
	"grab-service/internal/infra/repository"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
	repositorymock "grab-service/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var inventoryDay = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

func newInventoryRepo(t *testing.T) (*repository.InventoryRepository, *repositorymock.MockInventoryQueries, *mockDBTX) {
	t.Helper()
	q := repositorymock.NewMockInventoryQueries(gomock.NewController(t))
	return repository.NewInventoryRepository(q), q, &mockDBTX{}
}

func capOf(n int) *int { return &n }

// =============================================================================
// Daily counter
// =============================================================================

func TestInventoryRepository_TryConsume_Daily(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	res := quota.Resource{Kind: quota.KindDailyCounter, OfferID: offerID, Day: inventoryDay, Cap: capOf(5)}

	testCases := []struct {
		name       string
		returnErr  error
		expected   bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: counter below cap is incremented", expected: true},
		{name: "success: guarded upsert rejected reports false", returnErr: pgx.ErrNoRows, expected: false},
		{name: "error: database failure", returnErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, q, db := newInventoryRepo(t)
			q.EXPECT().TryIncrementDailyCounter(ctx, db, sqlc.TryIncrementDailyCounterParams{
				OfferID: offerID,
				Day:     pgconv.DateToPgtype(inventoryDay),
				Amount:  1,
				Cap:     pgconv.IntPtrToPgtype(capOf(5)),
			}).Return(int32(3), tc.returnErr)

			ok, err := repo.TryConsume(ctx, db, res, 1)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

// =============================================================================
// Lifetime counter
// =============================================================================

func TestInventoryRepository_TryConsume_Lifetime(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("success: sum below cap records today's unit", func(t *testing.T) {
		repo, q, db := newInventoryRepo(t)
		res := quota.Resource{Kind: quota.KindLifetimeCounter, OfferID: offerID, Day: inventoryDay, Cap: capOf(10)}

		gomock.InOrder(
			q.EXPECT().LockOffer(ctx, db, offerID).Return(offerID, nil),
			q.EXPECT().SumDailyCounters(ctx, db, offerID).Return(int32(9), nil),
			q.EXPECT().IncrementDailyCounter(ctx, db, sqlc.IncrementDailyCounterParams{
				OfferID: offerID,
				Day:     pgconv.DateToPgtype(inventoryDay),
				Amount:  1,
			}).Return(int32(4), nil),
		)

		ok, err := repo.TryConsume(ctx, db, res, 1)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("success: sum at cap reports false without writing", func(t *testing.T) {
		repo, q, db := newInventoryRepo(t)
		res := quota.Resource{Kind: quota.KindLifetimeCounter, OfferID: offerID, Day: inventoryDay, Cap: capOf(10)}

		q.EXPECT().LockOffer(ctx, db, offerID).Return(offerID, nil)
		q.EXPECT().SumDailyCounters(ctx, db, offerID).Return(int32(10), nil)

		ok, err := repo.TryConsume(ctx, db, res, 1)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("success: uncapped offer skips the sum", func(t *testing.T) {
		repo, q, db := newInventoryRepo(t)
		res := quota.Resource{Kind: quota.KindLifetimeCounter, OfferID: offerID, Day: inventoryDay}

		q.EXPECT().LockOffer(ctx, db, offerID).Return(offerID, nil)
		q.EXPECT().IncrementDailyCounter(ctx, db, gomock.Any()).Return(int32(1), nil)

		ok, err := repo.TryConsume(ctx, db, res, 1)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("error: missing offer is not found", func(t *testing.T) {
		repo, q, db := newInventoryRepo(t)
		res := quota.Resource{Kind: quota.KindLifetimeCounter, OfferID: offerID, Day: inventoryDay, Cap: capOf(10)}

		q.EXPECT().LockOffer(ctx, db, offerID).Return(uuid.Nil, pgx.ErrNoRows)

		_, err := repo.TryConsume(ctx, db, res, 1)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Mirrored stock and guards
// =============================================================================

func TestInventoryRepository_TryConsume_Stock(t *testing.T) {
	ctx := context.Background()
	res := quota.Resource{Kind: quota.KindMirroredStock, Code: "PROMO1"}

	for _, ok := range []bool{true, false} {
		repo, q, db := newInventoryRepo(t)
		q.EXPECT().TryDecrementPromoStock(ctx, db, sqlc.TryDecrementPromoStockParams{Amount: 1, Code: "PROMO1"}).Return(ok, nil)

		got, err := repo.TryConsume(ctx, db, res, 1)

		require.NoError(t, err)
		assert.Equal(t, ok, got)
	}
}

func TestInventoryRepository_TryConsume_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("zero cap never touches storage", func(t *testing.T) {
		repo, _, db := newInventoryRepo(t)
		res := quota.Resource{Kind: quota.KindDailyCounter, OfferID: uuid.New(), Day: inventoryDay, Cap: capOf(0)}

		ok, err := repo.TryConsume(ctx, db, res, 1)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		repo, _, db := newInventoryRepo(t)

		_, err := repo.TryConsume(ctx, db, quota.Resource{Kind: quota.KindDailyCounter}, 0)

		require.Error(t, err)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		repo, _, db := newInventoryRepo(t)

		_, err := repo.TryConsume(ctx, db, quota.Resource{Kind: "weekly"}, 1)

		require.Error(t, err)
	})
}
