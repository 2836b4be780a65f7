//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grab-service/internal/domain/claim"
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

func newTokenRepo(t *testing.T) (*repository.TokenRepository, *repositorymock.MockTokenWriteQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockTokenWriteQueries(ctrl)
	return repository.NewTokenRepository(q), q, &mockDBTX{}
}

func TestTokenRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)

	t.Run("success: row is converted", func(t *testing.T) {
		repo, q, db := newTokenRepo(t)
		row := sqlc.RedemptionTokens{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			ClaimID:   uuid.New(),
			Code:      "TABCDEFGHJK",
			CreatedAt: pgconv.TimeToPgtype(createdAt),
		}
		q.EXPECT().GetRedemptionTokenForUpdate(ctx, db, row.ID).Return(row, nil)

		tok, err := repo.FindByIDForUpdate(ctx, db, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, tok.ID())
		assert.Equal(t, row.ClaimID, tok.ClaimID())
		assert.Equal(t, "TABCDEFGHJK", tok.Code())
		assert.False(t, tok.IsUsed())
	})

	t.Run("error: missing token", func(t *testing.T) {
		repo, q, db := newTokenRepo(t)
		q.EXPECT().GetRedemptionTokenForUpdate(ctx, db, gomock.Any()).Return(sqlc.RedemptionTokens{}, pgx.ErrNoRows)

		_, err := repo.FindByIDForUpdate(ctx, db, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestTokenRepository_MarkUsed(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 10, 16, 9, 10, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", affected: 1},
		{name: "error: token already used", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", returnErr: errors.New("deadlock"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, q, db := newTokenRepo(t)
			tok := claim.ReconstructToken(uuid.New(), uuid.New(), uuid.New(), "TABCDEFGHJK", nil, at.Add(-time.Hour))
			require.NoError(t, tok.Use(at))

			q.EXPECT().MarkRedemptionTokenUsed(ctx, db, sqlc.MarkRedemptionTokenUsedParams{
				ID:     tok.ID(),
				UsedAt: pgconv.TimeToPgtype(at),
			}).Return(tc.affected, tc.returnErr)

			err := repo.MarkUsed(ctx, db, tok)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
