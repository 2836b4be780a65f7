package claim

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionToken is the single-use code issued next to a claim on an
// online-redeemable offer.
type RedemptionToken struct {
	id        uuid.UUID
	userID    uuid.UUID
	claimID   uuid.UUID
	code      string
	usedAt    *time.Time
	createdAt time.Time
}

func NewRedemptionToken(c *Claim, code string, now time.Time) (*RedemptionToken, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	return &RedemptionToken{
		id:        uuid.New(),
		userID:    c.UserID(),
		claimID:   c.ID(),
		code:      code,
		createdAt: now,
	}, nil
}

func ReconstructToken(id, userID, claimID uuid.UUID, code string, usedAt *time.Time, createdAt time.Time) *RedemptionToken {
	return &RedemptionToken{
		id:        id,
		userID:    userID,
		claimID:   claimID,
		code:      code,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

// Use consumes the token. A token can be used once.
func (t *RedemptionToken) Use(now time.Time) error {
	if t.usedAt != nil {
		return ErrTokenUsed
	}
	t.usedAt = &now
	return nil
}

func (t *RedemptionToken) IsUsed() bool { return t.usedAt != nil }

func (t *RedemptionToken) ID() uuid.UUID        { return t.id }
func (t *RedemptionToken) UserID() uuid.UUID    { return t.userID }
func (t *RedemptionToken) ClaimID() uuid.UUID   { return t.claimID }
func (t *RedemptionToken) Code() string         { return t.code }
func (t *RedemptionToken) UsedAt() *time.Time   { return t.usedAt }
func (t *RedemptionToken) CreatedAt() time.Time { return t.createdAt }
