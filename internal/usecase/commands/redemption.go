package commands

import (
	"context"
	"errors"
	"fmt"
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

type RedemptionCommands interface {
	// Validate moves the outstanding claim holding rawCode to Validated.
	// The transition is irreversible.
	Validate(ctx context.Context, rawCode string, validatorID uuid.UUID) (*queries.ClaimView, error)
}

type redemptionUseCaseImpl struct {
	uow           shared.UnitOfWork
	ledger        *QuotaLedger
	notifier      shared.Notifier
	clock         clock.Clock
	notifyTimeout time.Duration
}

func NewRedemptionUseCase(uow shared.UnitOfWork, ledger *QuotaLedger, notifier shared.Notifier, clk clock.Clock, notifyTimeout time.Duration) RedemptionCommands {
	return &redemptionUseCaseImpl{
		uow:           uow,
		ledger:        ledger,
		notifier:      notifier,
		clock:         clk,
		notifyTimeout: notifyTimeout,
	}
}

func (uc *redemptionUseCaseImpl) Validate(ctx context.Context, rawCode string, validatorID uuid.UUID) (*queries.ClaimView, error) {
	normalized, err := code.Normalize(rawCode)
	if err != nil {
		return nil, ErrInvalidCode
	}

	var view *queries.ClaimView
	var out issued

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		c, err := tx.Claims().FindOutstandingByCodeForUpdate(ctx, tx.DB(), normalized)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCode
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		o, err := tx.Offers().FindByID(ctx, tx.DB(), c.OfferID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := uc.authorize(ctx, tx, o.Owner(), validatorID); err != nil {
			return err
		}

		if c.IsExpired(now) {
			return ErrExpired
		}

		if !o.DebitsOnClaim() {
			ok, err := uc.ledger.TryConsume(ctx, tx, o, now)
			if err != nil {
				return err
			}
			if !ok {
				return ErrQuotaExhausted
			}
		}

		if err := c.Validate(validatorID, now); err != nil {
			switch {
			case errors.Is(err, claim.ErrExpired):
				return ErrExpired
			case errors.Is(err, claim.ErrAlreadyValidated):
				return ErrInvalidCode
			default:
				return err
			}
		}

		if err := tx.Claims().MarkValidated(ctx, tx.DB(), c); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCode
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		var tokenCode *string
		if c.TokenID() != nil {
			tc, err := uc.useToken(ctx, tx, *c.TokenID(), now)
			if err != nil {
				return err
			}
			tokenCode = &tc
		}

		view = newClaimView(c, o, tokenCode, now)
		out = issued{claim: c, offer: o}
		return nil
	})
	if err != nil {
		return nil, err
	}

	send(ctx, uc.notifier, uc.notifyTimeout, shared.Notification{
		Event:      shared.EventClaimValidated,
		TargetType: shared.TargetUser,
		TargetID:   out.claim.UserID(),
		ClaimID:    out.claim.ID(),
		OfferID:    out.offer.ID(),
		Message:    fmt.Sprintf("Your claim for %s was redeemed", out.offer.Title()),
		OccurredAt: *out.claim.ValidatedAt(),
	})
	return view, nil
}

// useToken consumes the redemption token attached to a claim being validated.
func (uc *redemptionUseCaseImpl) useToken(ctx context.Context, tx shared.Tx, tokenID uuid.UUID, now time.Time) (string, error) {
	t, err := tx.Tokens().FindByIDForUpdate(ctx, tx.DB(), tokenID)
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := t.Use(now); err != nil {
		return "", ErrInvalidCode
	}
	if err := tx.Tokens().MarkUsed(ctx, tx.DB(), t); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCode
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return t.Code(), nil
}

// authorize accepts the offer's owner, a member of its organization or an
// operator of its venue.
func (uc *redemptionUseCaseImpl) authorize(ctx context.Context, tx shared.Tx, owner offer.Owner, validatorID uuid.UUID) error {
	if owner.UserID == validatorID {
		return nil
	}

	if owner.OrganizationID != nil {
		ok, err := tx.Authz().IsOrganizationMember(ctx, tx.DB(), *owner.OrganizationID, validatorID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if ok {
			return nil
		}
	}

	if owner.VenueID != nil {
		ok, err := tx.Authz().IsVenueOperator(ctx, tx.DB(), *owner.VenueID, validatorID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if ok {
			return nil
		}
	}

	return ErrNotAuthorized
}
