//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grab-service/internal/domain/user"
	"grab-service/internal/infra"
	"grab-service/internal/pkg/clock"
	"grab-service/internal/usecase/queries"
	"grab-service/tests/common/builder"
	queriesmock "grab-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var queryNow = time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)

func newClaimQueries(t *testing.T) (queries.ClaimQueries, *queriesmock.MockClaimReadStore) {
	t.Helper()
	store := queriesmock.NewMockClaimReadStore(gomock.NewController(t))
	return queries.NewClaimQueries(store, clock.NewMockClock(queryNow)), store
}

func TestClaimQueries_GetByCode(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	cases := []struct {
		name      string
		actor     uuid.UUID
		role      user.Role
		expectErr error
	}{
		{name: "owner sees own claim", actor: owner, role: user.RoleMember},
		{name: "admin sees any claim", actor: uuid.New(), role: user.RoleAdmin},
		{name: "operator cannot browse others' claims", actor: uuid.New(), role: user.RoleOperator, expectErr: queries.ErrClaimAccess},
		{name: "member cannot browse others' claims", actor: uuid.New(), role: user.RoleMember, expectErr: queries.ErrClaimAccess},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, store := newClaimQueries(t)
			view := builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) { b.UserID = owner }).BuildView()
			store.EXPECT().FindByCode(ctx, view.Code).Return(view, nil)

			got, err := q.GetByCode(ctx, view.Code, tc.actor, tc.role)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view.ID, got.ID)
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		q, store := newClaimQueries(t)
		store.EXPECT().FindByCode(ctx, "1016000404").
			Return(nil, infra.WrapRepoErr("claim not found", nil, infra.KindNotFound))

		_, err := q.GetByCode(ctx, "1016000404", owner, user.RoleMember)

		assert.ErrorIs(t, err, queries.ErrClaimNotFound)
	})
}

func TestClaimQueries_StatusIsResolvedAtReadTime(t *testing.T) {
	ctx := context.Background()
	expired := queryNow.Add(-time.Minute)
	validatedAt := queryNow.Add(-2 * time.Hour)

	cases := []struct {
		name   string
		mutate func(*builder.ClaimBuilder)
		want   queries.ClaimStatus
	}{
		{name: "no deadline", mutate: func(*builder.ClaimBuilder) {}, want: queries.ClaimStatusIssued},
		{name: "deadline passed", mutate: func(b *builder.ClaimBuilder) { b.ExpiresAt = &expired }, want: queries.ClaimStatusExpired},
		{name: "validated before deadline", mutate: func(b *builder.ClaimBuilder) {
			b.ExpiresAt = &expired
			b.ValidatedAt = &validatedAt
		}, want: queries.ClaimStatusValidated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, store := newClaimQueries(t)
			view := builder.NewClaimBuilder().With(tc.mutate).BuildView()
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := q.GetByIDSystem(ctx, view.ID)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestClaimQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	page := func(n int) []*queries.ClaimView {
		views := make([]*queries.ClaimView, n)
		for i := range views {
			issued := queryNow.Add(-time.Duration(i) * time.Minute)
			views[i] = builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
				b.UserID = userID
				b.IssuedAt = issued
			}).BuildView()
		}
		return views
	}

	t.Run("full page yields a cursor to the last returned row", func(t *testing.T) {
		q, store := newClaimQueries(t)
		rows := page(3)
		store.EXPECT().FindByUserFirstPage(ctx, userID, int32(3)).Return(rows, nil)

		got, next, err := q.ListMine(ctx, userID, nil, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].IssuedAt.Equal(at))
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		q, store := newClaimQueries(t)
		store.EXPECT().FindByUserFirstPage(ctx, userID, int32(queries.DefaultListLimit+1)).Return(page(1), nil)

		got, next, err := q.ListMine(ctx, userID, nil, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("cursor resumes after the given row", func(t *testing.T) {
		q, store := newClaimQueries(t)
		lastID := uuid.New()
		lastAt := queryNow.Add(-time.Hour)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}
		store.EXPECT().FindByUserKeyset(ctx, userID, gomock.Any(), lastID, int32(11)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at time.Time, _ uuid.UUID, _ int32) ([]*queries.ClaimView, error) {
				assert.True(t, lastAt.Equal(at))
				return nil, nil
			})

		got, next, err := q.ListMine(ctx, userID, cursor, 10)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		q, store := newClaimQueries(t)
		store.EXPECT().FindByUserFirstPage(ctx, userID, int32(queries.MaxListLimit+1)).Return(nil, nil)

		_, _, err := q.ListMine(ctx, userID, nil, 500)

		require.NoError(t, err)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		q, _ := newClaimQueries(t)

		_, _, err := q.ListMine(ctx, userID, &queries.Cursor{After: "%%%"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		q, store := newClaimQueries(t)
		boom := errors.New("timeout")
		store.EXPECT().FindByUserFirstPage(ctx, userID, gomock.Any()).Return(nil, boom)

		_, _, err := q.ListMine(ctx, userID, nil, 10)

		assert.ErrorIs(t, err, boom)
	})
}
