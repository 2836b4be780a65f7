package commands

import "grab-service/internal/pkg/errs"

// Business rejections. Each maps to one stable reason at the HTTP boundary.
var (
	ErrOfferNotFound  = errs.New("offer not found")
	ErrNotClaimable   = errs.New("offer cannot be claimed")
	ErrAlreadyClaimed = errs.New("user already holds an outstanding claim on this offer")
	ErrQuotaExhausted = errs.New("offer quota exhausted")
	ErrInvalidCode    = errs.New("no outstanding claim with this code")
	ErrExpired        = errs.New("claim validation window has passed")
	ErrNotAuthorized  = errs.New("validator may not redeem claims of this offer")
)

var (
	ErrIdempotencyInProgress = errs.New("request with this idempotency key is in progress")
	ErrIdempotencyMismatch   = errs.New("idempotency key reused with a different request")
)

var (
	ErrCodeSpaceExhausted      = errs.New("could not allocate a unique code")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
