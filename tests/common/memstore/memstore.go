//go:build unit

// Package memstore is an in-memory UnitOfWork for use case tests. Transactions
// are serialized by one mutex and rolled back by restoring a snapshot, so the
// repositories only have to reproduce the row-level outcome of each SQL
// statement, not its locking.
package memstore

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"grab-service/internal/domain/claim"
	"grab-service/internal/domain/offer"
	"grab-service/internal/domain/quota"
	"grab-service/internal/infra"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/pkg/clock"
	"grab-service/internal/usecase/queries"
	"grab-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type claimRow struct {
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

type tokenRow struct {
	id        uuid.UUID
	userID    uuid.UUID
	claimID   uuid.UUID
	code      string
	usedAt    *time.Time
	createdAt time.Time
}

type counterKey struct {
	offerID uuid.UUID
	day     string
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type pair struct {
	scope  uuid.UUID
	userID uuid.UUID
}

type state struct {
	claims   map[uuid.UUID]claimRow
	tokens   map[uuid.UUID]tokenRow
	counters map[counterKey]int
	stocks   map[string]*int
	idem     map[idemKey]shared.IdempotencyRecord
}

func (s *state) clone() *state {
	stocks := make(map[string]*int, len(s.stocks))
	for k, v := range s.stocks {
		if v != nil {
			n := *v
			v = &n
		}
		stocks[k] = v
	}
	return &state{
		claims:   maps.Clone(s.claims),
		tokens:   maps.Clone(s.tokens),
		counters: maps.Clone(s.counters),
		stocks:   stocks,
		idem:     maps.Clone(s.idem),
	}
}

type Store struct {
	mu    sync.Mutex
	clock clock.Clock

	offers       map[uuid.UUID]*offer.Offer
	orgMembers   map[pair]bool
	venueOps     map[pair]bool
	foreignCodes map[string]bool
	st           *state

	claimInsertErr error
	tokenInsertErr error
	claimConflicts int
	transactions   int
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:        clk,
		offers:       map[uuid.UUID]*offer.Offer{},
		orgMembers:   map[pair]bool{},
		venueOps:     map[pair]bool{},
		foreignCodes: map[string]bool{},
		st: &state{
			claims:   map[uuid.UUID]claimRow{},
			tokens:   map[uuid.UUID]tokenRow{},
			counters: map[counterKey]int{},
			stocks:   map[string]*int{},
			idem:     map[idemKey]shared.IdempotencyRecord{},
		},
	}
}

// Fixtures

func (s *Store) AddOffer(o *offer.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID()] = o
}

// SetStock links a promo stock row; nil means the row exists with no limit.
func (s *Store) SetStock(code string, stock *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.stocks[code] = stock
}

func (s *Store) AddOrganizationMember(orgID, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgMembers[pair{orgID, userID}] = true
}

func (s *Store) AddVenueOperator(venueID, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venueOps[pair{venueID, userID}] = true
}

// Fault injection

// FailClaimInserts makes every claim insert return err until cleared with nil.
func (s *Store) FailClaimInserts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claimInsertErr = err
}

func (s *Store) FailTokenInserts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenInsertErr = err
}

// ConflictClaimInserts makes the next n claim inserts lose their code to a
// concurrent writer: the code becomes taken and the insert reports false.
func (s *Store) ConflictClaimInserts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claimConflicts = n
}

// Inspection

func (s *Store) ClaimCount(offerID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.st.claims {
		if c.offerID == offerID {
			n++
		}
	}
	return n
}

func (s *Store) TokenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.tokens)
}

// TokenUsedAt reports when the token with the given code was consumed.
func (s *Store) TokenUsedAt(code string) (*time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.st.tokens {
		if t.code == code {
			return t.usedAt, true
		}
	}
	return nil, false
}

// UseToken consumes a token outside any claim flow.
func (s *Store) UseToken(code string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.st.tokens {
		if t.code == code {
			t.usedAt = &at
			s.st.tokens[id] = t
		}
	}
}

func (s *Store) Codes(offerID uuid.UUID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, c := range s.st.claims {
		if c.offerID == offerID {
			out = append(out, c.code)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Store) DailyTotal(offerID uuid.UUID, day time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.counters[counterKey{offerID, dayKey(day)}]
}

func (s *Store) LifetimeTotal(offerID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sumCounters(offerID)
}

func (s *Store) Stock(code string) *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.st.stocks[code]
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func (s *Store) IdempotencyRecord(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.st.idem[idemKey{key, userID}]
	return rec, ok
}

// ExpireIdempotencyKey moves the key's expiry into the past.
func (s *Store) ExpireIdempotencyKey(key, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := idemKey{key, userID}
	if rec, ok := s.st.idem[k]; ok {
		rec.ExpiresAt = s.clock.Now().Add(-time.Second)
		s.st.idem[k] = rec
	}
}

func (s *Store) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.transactions++
	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

type memTx struct {
	s *Store
}

func (t *memTx) Offers() shared.OfferRepository            { return offerRepo{t.s} }
func (t *memTx) Claims() shared.ClaimRepository            { return claimRepo{t.s} }
func (t *memTx) Tokens() shared.TokenRepository            { return tokenRepo{t.s} }
func (t *memTx) Inventory() shared.InventoryRepository     { return inventoryRepo{t.s} }
func (t *memTx) Authz() shared.AuthzRepository             { return authzRepo{t.s} }
func (t *memTx) Idempotency() shared.IdempotencyRepository { return idemRepo{t.s} }
func (t *memTx) DB() sqlc.DBTX                             { return nil }

// Repositories. Callers hold s.mu through Within.

type offerRepo struct{ s *Store }

func (r offerRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*offer.Offer, error) {
	o, ok := r.s.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return o, nil
}

type claimRepo struct{ s *Store }

func (r claimRepo) LatestCode(_ context.Context, _ sqlc.DBTX, prefix string, length int) (string, error) {
	latest := ""
	consider := func(c string) {
		if strings.HasPrefix(c, prefix) && len(c) == length && c > latest {
			latest = c
		}
	}
	for _, c := range r.s.st.claims {
		consider(c.code)
	}
	for c := range r.s.foreignCodes {
		consider(c)
	}
	return latest, nil
}

func (r claimRepo) CodeExists(_ context.Context, _ sqlc.DBTX, code string) (bool, error) {
	return r.s.claimCodeTaken(code), nil
}

func (r claimRepo) HasOutstanding(_ context.Context, _ sqlc.DBTX, userID, offerID uuid.UUID) (bool, error) {
	for _, c := range r.s.st.claims {
		if c.userID == userID && c.offerID == offerID && c.validatedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r claimRepo) Insert(_ context.Context, _ sqlc.DBTX, c *claim.Claim) (bool, error) {
	if r.s.claimInsertErr != nil {
		return false, infra.WrapRepoErr("failed to insert claim", r.s.claimInsertErr)
	}
	if r.s.claimConflicts > 0 {
		r.s.claimConflicts--
		r.s.foreignCodes[c.Code()] = true
		return false, nil
	}
	if r.s.claimCodeTaken(c.Code()) {
		return false, nil
	}
	r.s.st.claims[c.ID()] = claimRow{
		id:         c.ID(),
		userID:     c.UserID(),
		offerID:    c.OfferID(),
		code:       c.Code(),
		reservedAt: c.ReservedAt(),
		issuedAt:   c.IssuedAt(),
		expiresAt:  c.ExpiresAt(),
	}
	return true, nil
}

func (r claimRepo) FindOutstandingByCodeForUpdate(_ context.Context, _ sqlc.DBTX, code string) (*claim.Claim, error) {
	for _, c := range r.s.st.claims {
		if c.code == code && c.validatedAt == nil {
			return claim.Reconstruct(c.id, c.userID, c.offerID, c.code, c.reservedAt, c.issuedAt, c.expiresAt, c.validatedBy, c.validatedAt, c.tokenID), nil
		}
	}
	return nil, infra.WrapRepoErr("claim not found", nil, infra.KindNotFound)
}

func (r claimRepo) MarkValidated(_ context.Context, _ sqlc.DBTX, c *claim.Claim) error {
	row, ok := r.s.st.claims[c.ID()]
	if !ok || row.validatedAt != nil {
		return infra.WrapRepoErr("claim already validated", nil, infra.KindNotFound)
	}
	row.validatedBy = c.ValidatedBy()
	row.validatedAt = c.ValidatedAt()
	r.s.st.claims[c.ID()] = row
	return nil
}

func (r claimRepo) AttachToken(_ context.Context, _ sqlc.DBTX, claimID, tokenID uuid.UUID) error {
	row, ok := r.s.st.claims[claimID]
	if !ok {
		return infra.WrapRepoErr("claim not found", nil, infra.KindNotFound)
	}
	id := tokenID
	row.tokenID = &id
	r.s.st.claims[claimID] = row
	return nil
}

type tokenRepo struct{ s *Store }

func (r tokenRepo) LatestCode(_ context.Context, _ sqlc.DBTX, prefix string, length int) (string, error) {
	latest := ""
	for _, t := range r.s.st.tokens {
		if strings.HasPrefix(t.code, prefix) && len(t.code) == length && t.code > latest {
			latest = t.code
		}
	}
	return latest, nil
}

func (r tokenRepo) CodeExists(_ context.Context, _ sqlc.DBTX, code string) (bool, error) {
	for _, t := range r.s.st.tokens {
		if t.code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r tokenRepo) Insert(ctx context.Context, db sqlc.DBTX, t *claim.RedemptionToken) (bool, error) {
	if r.s.tokenInsertErr != nil {
		return false, infra.WrapRepoErr("failed to insert redemption token", r.s.tokenInsertErr)
	}
	if taken, _ := r.CodeExists(ctx, db, t.Code()); taken {
		return false, nil
	}
	r.s.st.tokens[t.ID()] = tokenRow{id: t.ID(), userID: t.UserID(), claimID: t.ClaimID(), code: t.Code(), createdAt: t.CreatedAt()}
	return true, nil
}

func (r tokenRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*claim.RedemptionToken, error) {
	t, ok := r.s.st.tokens[id]
	if !ok {
		return nil, infra.WrapRepoErr("redemption token not found", nil, infra.KindNotFound)
	}
	return claim.ReconstructToken(t.id, t.userID, t.claimID, t.code, t.usedAt, t.createdAt), nil
}

func (r tokenRepo) MarkUsed(_ context.Context, _ sqlc.DBTX, t *claim.RedemptionToken) error {
	row, ok := r.s.st.tokens[t.ID()]
	if !ok || row.usedAt != nil {
		return infra.WrapRepoErr("redemption token already used", nil, infra.KindNotFound)
	}
	row.usedAt = t.UsedAt()
	r.s.st.tokens[t.ID()] = row
	return nil
}

type inventoryRepo struct{ s *Store }

func (r inventoryRepo) TryConsume(_ context.Context, _ sqlc.DBTX, res quota.Resource, amount int) (bool, error) {
	if amount <= 0 {
		return false, infra.WrapRepoErr(fmt.Sprintf("invalid consume amount %d", amount), nil)
	}
	if res.Exhausted(amount) {
		return false, nil
	}

	st := r.s.st
	switch res.Kind {
	case quota.KindDailyCounter:
		k := counterKey{res.OfferID, dayKey(res.Day)}
		if res.Cap != nil && st.counters[k]+amount > *res.Cap {
			return false, nil
		}
		st.counters[k] += amount
		return true, nil
	case quota.KindLifetimeCounter:
		if _, ok := r.s.offers[res.OfferID]; !ok {
			return false, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
		}
		if res.Cap != nil && r.s.sumCounters(res.OfferID)+amount > *res.Cap {
			return false, nil
		}
		st.counters[counterKey{res.OfferID, dayKey(res.Day)}] += amount
		return true, nil
	case quota.KindMirroredStock:
		stock, ok := st.stocks[res.Code]
		if !ok || stock == nil {
			return true, nil
		}
		if *stock < amount {
			return false, nil
		}
		n := *stock - amount
		st.stocks[res.Code] = &n
		return true, nil
	default:
		return false, infra.WrapRepoErr(fmt.Sprintf("unknown resource kind %q", res.Kind), nil)
	}
}

type authzRepo struct{ s *Store }

func (r authzRepo) IsOrganizationMember(_ context.Context, _ sqlc.DBTX, organizationID, userID uuid.UUID) (bool, error) {
	return r.s.orgMembers[pair{organizationID, userID}], nil
}

func (r authzRepo) IsVenueOperator(_ context.Context, _ sqlc.DBTX, venueID, userID uuid.UUID) (bool, error) {
	return r.s.venueOps[pair{venueID, userID}], nil
}

type idemRepo struct{ s *Store }

func (r idemRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, userID}
	if _, ok := r.s.st.idem[k]; ok {
		return false, nil
	}
	r.s.st.idem[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idemRepo) Get(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.st.idem[idemKey{key, userID}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (r idemRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, claimID uuid.UUID) error {
	k := idemKey{key, userID}
	rec, ok := r.s.st.idem[k]
	if !ok {
		return nil
	}
	id := claimID
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultClaimID = &id
	r.s.st.idem[k] = rec
	return nil
}

func (r idemRepo) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, userID}
	rec, ok := r.s.st.idem[k]
	if !ok || !rec.ExpiresAt.Before(r.s.clock.Now()) {
		return false, nil
	}
	rec.RequestHash = requestHash
	rec.Status = shared.IdempotencyStatusProcessing
	rec.ExpiresAt = expiresAt
	rec.ResultClaimID = nil
	r.s.st.idem[k] = rec
	return true, nil
}

func (r idemRepo) Release(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) error {
	k := idemKey{key, userID}
	if rec, ok := r.s.st.idem[k]; ok && rec.Status == shared.IdempotencyStatusProcessing {
		delete(r.s.st.idem, k)
	}
	return nil
}

// queries.ClaimReadStore

func (s *Store) FindByCode(_ context.Context, code string) (*queries.ClaimView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.st.claims {
		if c.code == code {
			return s.view(c), nil
		}
	}
	return nil, infra.WrapRepoErr("claim not found", nil, infra.KindNotFound)
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.ClaimView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.claims[id]
	if !ok {
		return nil, infra.WrapRepoErr("claim not found", nil, infra.KindNotFound)
	}
	return s.view(c), nil
}

func (s *Store) FindByUserFirstPage(_ context.Context, userID uuid.UUID, limit int32) ([]*queries.ClaimView, error) {
	return s.listByUser(userID, nil, uuid.Nil, limit), nil
}

func (s *Store) FindByUserKeyset(_ context.Context, userID uuid.UUID, lastIssuedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ClaimView, error) {
	return s.listByUser(userID, &lastIssuedAt, lastID, limit), nil
}

func (s *Store) listByUser(userID uuid.UUID, afterIssuedAt *time.Time, afterID uuid.UUID, limit int32) []*queries.ClaimView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []claimRow
	for _, c := range s.st.claims {
		if c.userID == userID {
			rows = append(rows, c)
		}
	}
	// issued_at DESC, id DESC
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].issuedAt.Equal(rows[j].issuedAt) {
			return rows[i].issuedAt.After(rows[j].issuedAt)
		}
		return rows[i].id.String() > rows[j].id.String()
	})

	out := []*queries.ClaimView{}
	for _, c := range rows {
		if afterIssuedAt != nil {
			if c.issuedAt.After(*afterIssuedAt) {
				continue
			}
			if c.issuedAt.Equal(*afterIssuedAt) && c.id.String() >= afterID.String() {
				continue
			}
		}
		if len(out) == int(limit) {
			break
		}
		out = append(out, s.view(c))
	}
	return out
}

func (s *Store) view(c claimRow) *queries.ClaimView {
	v := &queries.ClaimView{
		ID:          c.id,
		UserID:      c.userID,
		OfferID:     c.offerID,
		Code:        c.code,
		ReservedAt:  c.reservedAt,
		IssuedAt:    c.issuedAt,
		ExpiresAt:   c.expiresAt,
		ValidatedBy: c.validatedBy,
		ValidatedAt: c.validatedAt,
	}
	if o, ok := s.offers[c.offerID]; ok {
		v.OfferTitle = o.Title()
		v.OfferKind = string(o.Kind())
	}
	if c.tokenID != nil {
		if t, ok := s.st.tokens[*c.tokenID]; ok {
			tc := t.code
			v.TokenCode = &tc
		}
	}
	return v
}

func (s *Store) claimCodeTaken(code string) bool {
	if s.foreignCodes[code] {
		return true
	}
	for _, c := range s.st.claims {
		if c.code == code {
			return true
		}
	}
	return false
}

func (s *Store) sumCounters(offerID uuid.UUID) int {
	total := 0
	for k, v := range s.st.counters {
		if k.offerID == offerID {
			total += v
		}
	}
	return total
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
