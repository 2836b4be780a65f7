package claim

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyValidated = errors.New("claim is already validated")
	ErrExpired          = errors.New("claim has expired")
	ErrEmptyCode        = errors.New("claim code cannot be empty")
	ErrTokenUsed        = errors.New("redemption token is already used")
)

type State string

const (
	StateIssued    State = "issued"
	StateValidated State = "validated"
)

// Claim is one unit of an offer taken by one user. It moves from Issued to
// Validated exactly once and is immutable afterwards.
type Claim struct {
	id          uuid.UUID
	userID      uuid.UUID
	offerID     uuid.UUID
	code        string
	reservedAt  time.Time
	issuedAt    time.Time
	expiresAt   *time.Time
	validatedBy *uuid.UUID
	validatedAt *time.Time
	tokenID     *uuid.UUID
}

func NewClaim(userID, offerID uuid.UUID, code string, now time.Time, expiresAt *time.Time) (*Claim, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	return &Claim{
		id:         uuid.New(),
		userID:     userID,
		offerID:    offerID,
		code:       code,
		reservedAt: now,
		issuedAt:   now,
		expiresAt:  expiresAt,
	}, nil
}

func Reconstruct(
	id, userID, offerID uuid.UUID,
	code string,
	reservedAt, issuedAt time.Time,
	expiresAt *time.Time,
	validatedBy *uuid.UUID,
	validatedAt *time.Time,
	tokenID *uuid.UUID,
) *Claim {
	return &Claim{
		id:          id,
		userID:      userID,
		offerID:     offerID,
		code:        code,
		reservedAt:  reservedAt,
		issuedAt:    issuedAt,
		expiresAt:   expiresAt,
		validatedBy: validatedBy,
		validatedAt: validatedAt,
		tokenID:     tokenID,
	}
}

func (c *Claim) State() State {
	if c.validatedAt != nil {
		return StateValidated
	}
	return StateIssued
}

func (c *Claim) IsTerminal() bool {
	return c.State() == StateValidated
}

// IsExpired is evaluated lazily; nothing mutates a claim when its deadline passes.
func (c *Claim) IsExpired(now time.Time) bool {
	return c.expiresAt != nil && now.After(*c.expiresAt)
}

// Validate performs the Issued -> Validated transition.
func (c *Claim) Validate(validatorID uuid.UUID, now time.Time) error {
	if c.IsTerminal() {
		return ErrAlreadyValidated
	}
	if c.IsExpired(now) {
		return ErrExpired
	}
	by := validatorID
	at := now
	c.validatedBy = &by
	c.validatedAt = &at
	return nil
}

func (c *Claim) AttachToken(tokenID uuid.UUID) {
	id := tokenID
	c.tokenID = &id
}

func (c *Claim) ID() uuid.UUID           { return c.id }
func (c *Claim) UserID() uuid.UUID       { return c.userID }
func (c *Claim) OfferID() uuid.UUID      { return c.offerID }
func (c *Claim) Code() string            { return c.code }
func (c *Claim) ReservedAt() time.Time   { return c.reservedAt }
func (c *Claim) IssuedAt() time.Time     { return c.issuedAt }
func (c *Claim) ExpiresAt() *time.Time   { return c.expiresAt }
func (c *Claim) ValidatedBy() *uuid.UUID { return c.validatedBy }
func (c *Claim) ValidatedAt() *time.Time { return c.validatedAt }
func (c *Claim) TokenID() *uuid.UUID     { return c.tokenID }
