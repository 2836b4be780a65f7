package shared

import (
	"context"
	"time"

	"grab-service/internal/domain/claim"
	"grab-service/internal/domain/offer"
	"grab-service/internal/domain/quota"
	sqlc "grab-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction, retrying the whole of fn on
	// serialization failures and deadlocks. fn must not keep state across
	// attempts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Offers() OfferRepository
	Claims() ClaimRepository
	Tokens() TokenRepository
	Inventory() InventoryRepository
	Authz() AuthzRepository
	Idempotency() IdempotencyRepository
	DB() sqlc.DBTX
}

type OfferRepository interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*offer.Offer, error)
}

// CodeStore is the lookup side a code generator needs from any table that
// holds unique codes.
type CodeStore interface {
	// LatestCode returns the greatest code of the given length starting with
	// prefix, or "" when none exists.
	LatestCode(ctx context.Context, db sqlc.DBTX, prefix string, length int) (string, error)
	CodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
}

type ClaimRepository interface {
	CodeStore
	HasOutstanding(ctx context.Context, db sqlc.DBTX, userID, offerID uuid.UUID) (bool, error)
	// Insert reports false without error when the code is already taken.
	Insert(ctx context.Context, db sqlc.DBTX, c *claim.Claim) (bool, error)
	FindOutstandingByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (*claim.Claim, error)
	MarkValidated(ctx context.Context, db sqlc.DBTX, c *claim.Claim) error
	AttachToken(ctx context.Context, db sqlc.DBTX, claimID, tokenID uuid.UUID) error
}

type TokenRepository interface {
	CodeStore
	// Insert reports false without error when the code is already taken.
	Insert(ctx context.Context, db sqlc.DBTX, t *claim.RedemptionToken) (bool, error)
	FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*claim.RedemptionToken, error)
	MarkUsed(ctx context.Context, db sqlc.DBTX, t *claim.RedemptionToken) error
}

type InventoryRepository interface {
	// TryConsume atomically takes amount units from r. It reports false when
	// the resource cannot cover the request and leaves it untouched.
	TryConsume(ctx context.Context, db sqlc.DBTX, r quota.Resource, amount int) (bool, error)
}

type AuthzRepository interface {
	IsOrganizationMember(ctx context.Context, db sqlc.DBTX, organizationID, userID uuid.UUID) (bool, error)
	IsVenueOperator(ctx context.Context, db sqlc.DBTX, venueID, userID uuid.UUID) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID, responseHash string, claimID uuid.UUID) error
	ClaimExpired(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Release(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID) error
}
