package queries

import (
	"context"
	"time"

	"grab-service/internal/domain/user"
	"grab-service/internal/infra"
	"grab-service/internal/pkg/clock"

	"github.com/google/uuid"
)

type ClaimReadStore interface {
	FindByCode(ctx context.Context, code string) (*ClaimView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ClaimView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastIssuedAt time.Time, lastID uuid.UUID, limit int32) ([]*ClaimView, error)
}

type ClaimQueries interface {
	GetByCode(ctx context.Context, code string, actorID uuid.UUID, actorRole user.Role) (*ClaimView, error)
	// GetByCodeSystem skips the ownership check; used for read-after-write.
	GetByCodeSystem(ctx context.Context, code string) (*ClaimView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ClaimView, *Cursor, error)
}

type claimQueriesImpl struct {
	repo  ClaimReadStore
	clock clock.Clock
}

func NewClaimQueries(repo ClaimReadStore, clk clock.Clock) ClaimQueries {
	return &claimQueriesImpl{repo: repo, clock: clk}
}

func (q *claimQueriesImpl) GetByCode(ctx context.Context, code string, actorID uuid.UUID, actorRole user.Role) (*ClaimView, error) {
	view, err := q.GetByCodeSystem(ctx, code)
	if err != nil {
		return nil, err
	}
	if actorRole != user.RoleAdmin && view.UserID != actorID {
		return nil, ErrClaimAccess
	}
	return view, nil
}

func (q *claimQueriesImpl) GetByCodeSystem(ctx context.Context, code string) (*ClaimView, error) {
	view, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	view.ResolveStatus(q.clock.Now())
	return view, nil
}

func (q *claimQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ClaimView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	view.ResolveStatus(q.clock.Now())
	return view, nil
}

// #nosec G115 -- limit is bounded by ValidateLimit
func (q *claimQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ClaimView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ClaimView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastIssuedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastIssuedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.IssuedAt, last.ID)}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	for _, v := range rows {
		v.ResolveStatus(now)
	}
	return rows, next, nil
}
