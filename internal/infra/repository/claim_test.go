//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grab-service/internal/infra"
	"grab-service/internal/infra/repository"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/pgconv"
	"grab-service/tests/common/builder"
	repositorymock "grab-service/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClaimRepo(t *testing.T) (*repository.ClaimRepository, *repositorymock.MockClaimWriteQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockClaimWriteQueries(ctrl)
	return repository.NewClaimRepository(q), q, &mockDBTX{}
}

// =============================================================================
// Insert Tests
// =============================================================================

func TestClaimRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		returnErr   error
		expected    bool
		expectError bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: row inserted", expected: true},
		{name: "success: code already taken reports false", returnErr: pgx.ErrNoRows, expected: false},
		{name: "error: database failure", returnErr: errors.New("connection reset"), expectError: true, expectKind: infra.KindDBFailure},
		{
			name:        "error: unknown offer",
			returnErr:   &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectError: true,
			expectKind:  infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, q, db := newClaimRepo(t)
			expiresAt := time.Date(2025, 10, 16, 9, 30, 0, 0, time.UTC)
			c := builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) { b.ExpiresAt = &expiresAt }).BuildDomain()

			q.EXPECT().InsertClaim(ctx, db, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertClaimParams) (uuid.UUID, error) {
					assert.Equal(t, c.ID(), arg.ID)
					assert.Equal(t, "1016000001", arg.Code)
					assert.True(t, arg.ExpiresAt.Valid)
					assert.True(t, expiresAt.Equal(arg.ExpiresAt.Time))
					if tc.returnErr != nil {
						return uuid.Nil, tc.returnErr
					}
					return arg.ID, nil
				})

			inserted, err := repo.Insert(ctx, db, c)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, inserted)
		})
	}
}

// =============================================================================
// FindOutstandingByCodeForUpdate Tests
// =============================================================================

func TestClaimRepository_FindOutstandingByCodeForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: converts the row", func(t *testing.T) {
		repo, q, db := newClaimRepo(t)
		b := builder.NewClaimBuilder()
		q.EXPECT().GetOutstandingClaimByCodeForUpdate(ctx, db, "1016000001").Return(b.BuildInfra(), nil)

		c, err := repo.FindOutstandingByCodeForUpdate(ctx, db, "1016000001")

		require.NoError(t, err)
		assert.Equal(t, b.ID, c.ID())
		assert.Equal(t, b.UserID, c.UserID())
		assert.Equal(t, b.OfferID, c.OfferID())
		assert.Nil(t, c.ValidatedAt())
		assert.Nil(t, c.ExpiresAt())
	})

	t.Run("error: no outstanding claim is not found", func(t *testing.T) {
		repo, q, db := newClaimRepo(t)
		q.EXPECT().GetOutstandingClaimByCodeForUpdate(ctx, db, gomock.Any()).Return(sqlc.Claims{}, pgx.ErrNoRows)

		_, err := repo.FindOutstandingByCodeForUpdate(ctx, db, "1016000009")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, q, db := newClaimRepo(t)
		q.EXPECT().GetOutstandingClaimByCodeForUpdate(ctx, db, gomock.Any()).Return(sqlc.Claims{}, errors.New("timeout"))

		_, err := repo.FindOutstandingByCodeForUpdate(ctx, db, "1016000001")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// MarkValidated Tests
// =============================================================================

func TestClaimRepository_MarkValidated(t *testing.T) {
	ctx := context.Background()
	validator := uuid.New()
	at := time.Date(2025, 10, 16, 9, 10, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", affected: 1},
		{name: "error: concurrent validation wins", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", returnErr: errors.New("deadlock"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, q, db := newClaimRepo(t)
			c := builder.NewClaimBuilder().BuildDomain()
			require.NoError(t, c.Validate(validator, at))

			q.EXPECT().MarkClaimValidated(ctx, db, sqlc.MarkClaimValidatedParams{
				ID:          c.ID(),
				ValidatedBy: pgconv.UUIDToPgtype(validator),
				ValidatedAt: pgconv.TimeToPgtype(at),
			}).Return(tc.affected, tc.returnErr)

			err := repo.MarkValidated(ctx, db, c)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// LatestCode Tests
// =============================================================================

func TestClaimRepository_LatestCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns greatest code of the scope", func(t *testing.T) {
		repo, q, db := newClaimRepo(t)
		q.EXPECT().GetLatestClaimCode(ctx, db, sqlc.GetLatestClaimCodeParams{Prefix: "1016", CodeLength: 10}).
			Return("1016000042", nil)

		latest, err := repo.LatestCode(ctx, db, "1016", 10)

		require.NoError(t, err)
		assert.Equal(t, "1016000042", latest)
	})

	t.Run("success: empty scope returns empty string", func(t *testing.T) {
		repo, q, db := newClaimRepo(t)
		q.EXPECT().GetLatestClaimCode(ctx, db, gomock.Any()).Return("", pgx.ErrNoRows)

		latest, err := repo.LatestCode(ctx, db, "1017", 10)

		require.NoError(t, err)
		assert.Empty(t, latest)
	})
}
