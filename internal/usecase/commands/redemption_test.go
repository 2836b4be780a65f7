//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"grab-service/internal/domain/offer"
	"grab-service/internal/usecase/commands"
	"grab-service/internal/usecase/queries"
	"grab-service/internal/usecase/shared"
	"grab-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ByOwner(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder())
	userID := uuid.New()
	issued := f.claim(t, userID, o.ID())
	f.clock.Add(5 * time.Minute)

	view, err := f.redeem.Validate(context.Background(), issued.Code, o.Owner().UserID)

	require.NoError(t, err)
	assert.Equal(t, issued.ID, view.ID)
	assert.Equal(t, queries.ClaimStatusValidated, view.Status)
	require.NotNil(t, view.ValidatedBy)
	assert.Equal(t, o.Owner().UserID, *view.ValidatedBy)
	require.NotNil(t, view.ValidatedAt)
	assert.Equal(t, testNow.Add(5*time.Minute), *view.ValidatedAt)

	require.Equal(t, 1, f.notifier.Count(shared.EventClaimValidated))
	last := f.notifier.Sent()[1]
	assert.Equal(t, shared.TargetUser, last.TargetType)
	assert.Equal(t, userID, last.TargetID)
}

func TestValidate_NormalizesInput(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder())
	issued := f.claim(t, uuid.New(), o.ID())

	_, err := f.redeem.Validate(context.Background(), "  "+issued.Code+"\n", o.Owner().UserID)

	assert.NoError(t, err)
}

func TestValidate_InvalidCode(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{name: "empty", code: ""},
		{name: "too short", code: "AB1"},
		{name: "symbols", code: "1016-00001"},
		{name: "unknown", code: "1016999999"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			o := f.addOffer(t, builder.NewOfferBuilder())
			f.claim(t, uuid.New(), o.ID())

			_, err := f.redeem.Validate(context.Background(), tc.code, o.Owner().UserID)

			assert.ErrorIs(t, err, commands.ErrInvalidCode)
		})
	}
}

func TestValidate_Twice(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder())
	issued := f.claim(t, uuid.New(), o.ID())
	ctx := context.Background()

	_, err := f.redeem.Validate(ctx, issued.Code, o.Owner().UserID)
	require.NoError(t, err)

	_, err = f.redeem.Validate(ctx, issued.Code, o.Owner().UserID)

	assert.ErrorIs(t, err, commands.ErrInvalidCode)
	assert.Equal(t, 1, f.notifier.Count(shared.EventClaimValidated))
}

func TestValidate_Authorization(t *testing.T) {
	orgID := uuid.New()
	venueID := uuid.New()
	member := uuid.New()
	operator := uuid.New()

	cases := []struct {
		name      string
		mutate    func(*builder.OfferBuilder)
		validator func(o *offer.Offer) uuid.UUID
		wantErr   error
	}{
		{
			name:      "owner",
			mutate:    func(*builder.OfferBuilder) {},
			validator: func(o *offer.Offer) uuid.UUID { return o.Owner().UserID },
		},
		{
			name:      "organization member",
			mutate:    func(b *builder.OfferBuilder) { b.OrganizationID = &orgID },
			validator: func(*offer.Offer) uuid.UUID { return member },
		},
		{
			name:      "venue operator",
			mutate:    func(b *builder.OfferBuilder) { b.VenueID = &venueID },
			validator: func(*offer.Offer) uuid.UUID { return operator },
		},
		{
			name:      "member of an unrelated organization",
			mutate:    func(b *builder.OfferBuilder) { id := uuid.New(); b.OrganizationID = &id },
			validator: func(*offer.Offer) uuid.UUID { return member },
			wantErr:   commands.ErrNotAuthorized,
		},
		{
			name:      "operator of an unrelated venue",
			mutate:    func(b *builder.OfferBuilder) { id := uuid.New(); b.VenueID = &id },
			validator: func(*offer.Offer) uuid.UUID { return operator },
			wantErr:   commands.ErrNotAuthorized,
		},
		{
			name:      "stranger",
			mutate:    func(b *builder.OfferBuilder) { b.OrganizationID = &orgID; b.VenueID = &venueID },
			validator: func(*offer.Offer) uuid.UUID { return uuid.New() },
			wantErr:   commands.ErrNotAuthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.store.AddOrganizationMember(orgID, member)
			f.store.AddVenueOperator(venueID, operator)
			o := f.addOffer(t, builder.NewOfferBuilder().With(tc.mutate))
			issued := f.claim(t, uuid.New(), o.ID())

			view, err := f.redeem.Validate(context.Background(), issued.Code, tc.validator(o))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				stored, gerr := queries.NewClaimQueries(f.store, f.clock).GetByIDSystem(context.Background(), issued.ID)
				require.NoError(t, gerr)
				assert.Equal(t, queries.ClaimStatusIssued, stored.Status, "rejected validation must not change the claim")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, queries.ClaimStatusValidated, view.Status)
		})
	}
}

func TestValidate_Expired(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().WithTimeLimit(30*time.Minute))
	issued := f.claim(t, uuid.New(), o.ID())
	ctx := context.Background()

	f.clock.Add(30*time.Minute + time.Second)
	_, err := f.redeem.Validate(ctx, issued.Code, o.Owner().UserID)
	require.ErrorIs(t, err, commands.ErrExpired)

	stored, err := queries.NewClaimQueries(f.store, f.clock).GetByIDSystem(ctx, issued.ID)
	require.NoError(t, err)
	assert.Equal(t, queries.ClaimStatusExpired, stored.Status)
	assert.Nil(t, stored.ValidatedAt)
}

func TestValidate_AtDeadline(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().WithTimeLimit(30*time.Minute))
	issued := f.claim(t, uuid.New(), o.ID())

	f.clock.Add(30 * time.Minute)
	_, err := f.redeem.Validate(context.Background(), issued.Code, o.Owner().UserID)

	assert.NoError(t, err)
}

func TestValidate_ExpiryCheckedAfterAuthorization(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().WithTimeLimit(time.Minute))
	issued := f.claim(t, uuid.New(), o.ID())
	f.clock.Add(time.Hour)

	_, err := f.redeem.Validate(context.Background(), issued.Code, uuid.New())

	assert.ErrorIs(t, err, commands.ErrNotAuthorized)
}

func TestValidate_DebitOnRedeem(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().WithCap(1).With(func(b *builder.OfferBuilder) { b.StockDebit = offer.DebitOnRedeem }))
	ctx := context.Background()

	a := f.claim(t, uuid.New(), o.ID())
	b := f.claim(t, uuid.New(), o.ID())
	assert.Equal(t, 0, f.store.LifetimeTotal(o.ID()), "claiming must not consume on_redeem offers")

	_, err := f.redeem.Validate(ctx, a.Code, o.Owner().UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.LifetimeTotal(o.ID()))

	_, err = f.redeem.Validate(ctx, b.Code, o.Owner().UserID)
	require.ErrorIs(t, err, commands.ErrQuotaExhausted)

	stored, err := queries.NewClaimQueries(f.store, f.clock).GetByIDSystem(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, queries.ClaimStatusIssued, stored.Status)
	assert.Equal(t, 1, f.store.LifetimeTotal(o.ID()))
}

func TestValidate_DebitOnRedeemMirroredStock(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().WithoutCap().WithMirror("PROMO9").With(func(b *builder.OfferBuilder) { b.StockDebit = offer.DebitOnRedeem }))
	two := 2
	f.store.SetStock("PROMO9", &two)

	issued := f.claim(t, uuid.New(), o.ID())
	assert.Equal(t, 2, *f.store.Stock("PROMO9"))

	_, err := f.redeem.Validate(context.Background(), issued.Code, o.Owner().UserID)
	require.NoError(t, err)

	assert.Equal(t, 1, *f.store.Stock("PROMO9"))
}

func TestValidate_OnlineOfferConsumesToken(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.RedemptionMode = offer.RedemptionOnline }))
	issued := f.claim(t, uuid.New(), o.ID())
	require.NotNil(t, issued.TokenCode)
	f.clock.Add(time.Minute)

	view, err := f.redeem.Validate(context.Background(), issued.Code, o.Owner().UserID)

	require.NoError(t, err)
	require.NotNil(t, view.TokenCode)
	assert.Equal(t, *issued.TokenCode, *view.TokenCode)

	usedAt, ok := f.store.TokenUsedAt(*issued.TokenCode)
	require.True(t, ok)
	require.NotNil(t, usedAt)
	assert.Equal(t, testNow.Add(time.Minute), *usedAt)
}

func TestValidate_UsedTokenRejectsClaim(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.RedemptionMode = offer.RedemptionOnline }))
	issued := f.claim(t, uuid.New(), o.ID())
	require.NotNil(t, issued.TokenCode)
	f.store.UseToken(*issued.TokenCode, testNow)

	_, err := f.redeem.Validate(context.Background(), issued.Code, o.Owner().UserID)

	require.ErrorIs(t, err, commands.ErrInvalidCode)
	stored, err := queries.NewClaimQueries(f.store, f.clock).GetByIDSystem(context.Background(), issued.ID)
	require.NoError(t, err)
	assert.Equal(t, queries.ClaimStatusIssued, stored.Status, "claim must stay outstanding when its token is spent")
	assert.Equal(t, 0, f.notifier.Count(shared.EventClaimValidated))
}

func TestValidate_InStoreOfferHasNoToken(t *testing.T) {
	f := newFixture(t)
	o := f.addOffer(t, builder.NewOfferBuilder())
	issued := f.claim(t, uuid.New(), o.ID())

	view, err := f.redeem.Validate(context.Background(), issued.Code, o.Owner().UserID)

	require.NoError(t, err)
	assert.Nil(t, view.TokenCode)
	assert.Equal(t, 0, f.store.TokenCount())
}
