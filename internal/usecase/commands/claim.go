package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"grab-service/internal/domain/claim"
	"grab-service/internal/domain/code"
	"grab-service/internal/domain/offer"
	"grab-service/internal/infra"
	"grab-service/internal/pkg/clock"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/queries"
	"grab-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	claimEndpoint = "POST /api/claims"
	tokenPrefix   = "T"
)

type ClaimResult struct {
	Claim      *queries.ClaimView
	IsReplayed bool
}

type ClaimCommands interface {
	// Claim takes one unit of an offer for userID. A non-nil idempotencyKey
	// makes repeated calls with the same key return the first result.
	Claim(ctx context.Context, userID, offerID uuid.UUID, idempotencyKey *uuid.UUID) (*ClaimResult, error)
}

type ClaimDeps struct {
	UoW            shared.UnitOfWork
	Resolver       *OfferResolver
	Ledger         *QuotaLedger
	Codes          *CodeGenerator
	Notifier       shared.Notifier
	ClaimQueries   queries.ClaimQueries
	Clock          clock.Clock
	Location       *time.Location
	IdempotencyTTL time.Duration
	NotifyTimeout  time.Duration
}

type claimUseCaseImpl struct {
	uow            shared.UnitOfWork
	resolver       *OfferResolver
	ledger         *QuotaLedger
	codes          *CodeGenerator
	notifier       shared.Notifier
	claimQueries   queries.ClaimQueries
	clock          clock.Clock
	loc            *time.Location
	idempotencyTTL time.Duration
	notifyTimeout  time.Duration
}

func NewClaimUseCase(d ClaimDeps) ClaimCommands {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &claimUseCaseImpl{
		uow:            d.UoW,
		resolver:       d.Resolver,
		ledger:         d.Ledger,
		codes:          d.Codes,
		notifier:       d.Notifier,
		claimQueries:   d.ClaimQueries,
		clock:          d.Clock,
		loc:            loc,
		idempotencyTTL: d.IdempotencyTTL,
		notifyTimeout:  d.NotifyTimeout,
	}
}

// issued carries what the post-commit notification needs.
type issued struct {
	claim *claim.Claim
	offer *offer.Offer
}

func (uc *claimUseCaseImpl) Claim(ctx context.Context, userID, offerID uuid.UUID, idempotencyKey *uuid.UUID) (*ClaimResult, error) {
	requestHash := calculateRequestHash(offerID)

	if idempotencyKey != nil {
		replayed, err := uc.beginIdempotent(ctx, *idempotencyKey, userID, requestHash)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &ClaimResult{Claim: replayed, IsReplayed: true}, nil
		}
	}

	view, out, err := uc.allocate(ctx, userID, offerID, idempotencyKey)
	if err != nil {
		if idempotencyKey != nil {
			uc.releaseKey(ctx, *idempotencyKey, userID)
		}
		return nil, err
	}

	uc.notifyIssued(ctx, out)
	return &ClaimResult{Claim: view}, nil
}

// allocate runs the whole claim in one transaction. Any error rolls back the
// counter increment together with the claim row.
func (uc *claimUseCaseImpl) allocate(ctx context.Context, userID, offerID uuid.UUID, idempotencyKey *uuid.UUID) (*queries.ClaimView, issued, error) {
	var view *queries.ClaimView
	var out issued

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		o, err := uc.resolver.Resolve(ctx, tx, offerID, now)
		if err != nil {
			return err
		}

		held, err := tx.Claims().HasOutstanding(ctx, tx.DB(), userID, o.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if held {
			return ErrAlreadyClaimed
		}

		if o.DebitsOnClaim() {
			ok, err := uc.ledger.TryConsume(ctx, tx, o, now)
			if err != nil {
				return err
			}
			if !ok {
				return ErrQuotaExhausted
			}
		}

		c, err := uc.insertClaim(ctx, tx, userID, o, now)
		if err != nil {
			return err
		}

		var tokenCode *string
		if o.IssuesToken() {
			t, err := uc.issueToken(ctx, tx, c, now)
			if err != nil {
				return err
			}
			if err := tx.Claims().AttachToken(ctx, tx.DB(), c.ID(), t.ID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			c.AttachToken(t.ID())
			tc := t.Code()
			tokenCode = &tc
		}

		if idempotencyKey != nil {
			err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, userID, calculateIDHash(c.ID()), c.ID())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		view = newClaimView(c, o, tokenCode, now)
		out = issued{claim: c, offer: o}
		return nil
	})
	if err != nil {
		return nil, issued{}, err
	}
	return view, out, nil
}

func (uc *claimUseCaseImpl) insertClaim(ctx context.Context, tx shared.Tx, userID uuid.UUID, o *offer.Offer, now time.Time) (*claim.Claim, error) {
	scope := code.ClaimScope(now, uc.loc)
	floor := ""
	for range uc.codes.MaxAttempts() {
		candidate, err := uc.codes.GenerateAfter(ctx, tx.DB(), tx.Claims(), scope, floor)
		if err != nil {
			return nil, err
		}

		c, err := claim.NewClaim(userID, o.ID(), candidate, now, o.ExpiresAt(now))
		if err != nil {
			return nil, err
		}

		inserted, err := tx.Claims().Insert(ctx, tx.DB(), c)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if inserted {
			return c, nil
		}
		floor = candidate
	}
	return nil, ErrCodeSpaceExhausted
}

func (uc *claimUseCaseImpl) issueToken(ctx context.Context, tx shared.Tx, c *claim.Claim, now time.Time) (*claim.RedemptionToken, error) {
	scope := code.RandomScope(tokenPrefix)
	for range uc.codes.MaxAttempts() {
		candidate, err := uc.codes.Generate(ctx, tx.DB(), tx.Tokens(), scope)
		if err != nil {
			return nil, err
		}

		t, err := claim.NewRedemptionToken(c, candidate, now)
		if err != nil {
			return nil, err
		}

		inserted, err := tx.Tokens().Insert(ctx, tx.DB(), t)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if inserted {
			return t, nil
		}
	}
	return nil, ErrCodeSpaceExhausted
}

// beginIdempotent reserves the key for this request. It returns the stored
// claim when the key already completed.
func (uc *claimUseCaseImpl) beginIdempotent(ctx context.Context, key, userID uuid.UUID, requestHash string) (*queries.ClaimView, error) {
	var record *shared.IdempotencyRecord

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record = nil
		now := uc.clock.Now()
		expiresAt := now.Add(uc.idempotencyTTL)

		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, claimEndpoint, requestHash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		existing, err := tx.Idempotency().Get(ctx, tx.DB(), key, userID)
		if err != nil {
			return err
		}
		if existing.ExpiresAt.Before(now) {
			took, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt)
			if err != nil {
				return err
			}
			if took {
				return nil
			}
		}
		record = existing
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if record == nil {
		return nil, nil
	}

	if record.RequestHash != requestHash {
		return nil, ErrIdempotencyMismatch
	}

	switch record.Status {
	case shared.IdempotencyStatusCompleted:
		if record.ResultClaimID == nil {
			return nil, errs.New("completed request missing result claim ID")
		}
		view, err := uc.claimQueries.GetByIDSystem(ctx, *record.ResultClaimID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return view, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *claimUseCaseImpl) releaseKey(ctx context.Context, key, userID uuid.UUID) {
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func (uc *claimUseCaseImpl) notifyIssued(ctx context.Context, out issued) {
	targetType, targetID := ownerTarget(out.offer.Owner())
	send(ctx, uc.notifier, uc.notifyTimeout, shared.Notification{
		Event:      shared.EventClaimIssued,
		TargetType: targetType,
		TargetID:   targetID,
		ClaimID:    out.claim.ID(),
		OfferID:    out.offer.ID(),
		Message:    fmt.Sprintf("%s was claimed", out.offer.Title()),
		OccurredAt: out.claim.IssuedAt(),
	})
}

// ownerTarget addresses the most specific owning entity of an offer.
func ownerTarget(owner offer.Owner) (shared.TargetType, uuid.UUID) {
	switch {
	case owner.VenueID != nil:
		return shared.TargetVenue, *owner.VenueID
	case owner.OrganizationID != nil:
		return shared.TargetOrganization, *owner.OrganizationID
	default:
		return shared.TargetUser, owner.UserID
	}
}

// send delivers n after the business transaction committed. Failures are
// logged and never reach the caller.
func send(ctx context.Context, notifier shared.Notifier, timeout time.Duration, n shared.Notification) {
	if notifier == nil {
		return
	}
	nctx := context.WithoutCancel(ctx)
	if timeout > 0 {
		var cancel context.CancelFunc
		nctx, cancel = context.WithTimeout(nctx, timeout)
		defer cancel()
	}
	if err := notifier.Notify(nctx, n); err != nil {
		slog.WarnContext(ctx, "notification dispatch failed",
			"event", n.Event,
			"target_type", string(n.TargetType),
			"target_id", n.TargetID,
			"claim_id", n.ClaimID,
			"error", err.Error())
	}
}

func newClaimView(c *claim.Claim, o *offer.Offer, tokenCode *string, now time.Time) *queries.ClaimView {
	v := &queries.ClaimView{
		ID:          c.ID(),
		UserID:      c.UserID(),
		OfferID:     c.OfferID(),
		OfferTitle:  o.Title(),
		OfferKind:   string(o.Kind()),
		Code:        c.Code(),
		ReservedAt:  c.ReservedAt(),
		IssuedAt:    c.IssuedAt(),
		ExpiresAt:   c.ExpiresAt(),
		ValidatedBy: c.ValidatedBy(),
		ValidatedAt: c.ValidatedAt(),
		TokenCode:   tokenCode,
	}
	v.ResolveStatus(now)
	return v
}

func calculateRequestHash(offerID uuid.UUID) string {
	hash := sha256.Sum256([]byte(claimEndpoint + ":" + offerID.String()))
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
