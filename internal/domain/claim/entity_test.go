//go:build unit

package claim_test

import (
	"testing"
	"time"

	"grab-service/internal/domain/claim"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)

func TestNewClaim(t *testing.T) {
	c, err := claim.NewClaim(uuid.New(), uuid.New(), "1016000001", now, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, claim.StateIssued, c.State())
	assert.False(t, c.IsTerminal())
	assert.Equal(t, now, c.ReservedAt())
	assert.Equal(t, now, c.IssuedAt())
	assert.False(t, c.IsExpired(now.Add(24*time.Hour)), "no deadline means never expired")

	_, err = claim.NewClaim(uuid.New(), uuid.New(), "", now, nil)
	assert.ErrorIs(t, err, claim.ErrEmptyCode)
}

func TestValidate(t *testing.T) {
	deadline := now.Add(30 * time.Minute)
	validator := uuid.New()

	t.Run("moves to validated", func(t *testing.T) {
		c, err := claim.NewClaim(uuid.New(), uuid.New(), "1016000001", now, &deadline)
		require.NoError(t, err)

		require.NoError(t, c.Validate(validator, deadline))

		assert.Equal(t, claim.StateValidated, c.State())
		assert.True(t, c.IsTerminal())
		assert.Equal(t, validator, *c.ValidatedBy())
		assert.Equal(t, deadline, *c.ValidatedAt())
	})

	t.Run("is irreversible", func(t *testing.T) {
		c, err := claim.NewClaim(uuid.New(), uuid.New(), "1016000001", now, nil)
		require.NoError(t, err)
		require.NoError(t, c.Validate(validator, now))

		err = c.Validate(uuid.New(), now.Add(time.Minute))

		assert.ErrorIs(t, err, claim.ErrAlreadyValidated)
		assert.Equal(t, validator, *c.ValidatedBy())
		assert.Equal(t, now, *c.ValidatedAt())
	})

	t.Run("rejects after deadline", func(t *testing.T) {
		c, err := claim.NewClaim(uuid.New(), uuid.New(), "1016000001", now, &deadline)
		require.NoError(t, err)

		err = c.Validate(validator, deadline.Add(time.Nanosecond))

		assert.ErrorIs(t, err, claim.ErrExpired)
		assert.Equal(t, claim.StateIssued, c.State())
		assert.Nil(t, c.ValidatedAt())
	})
}

func TestRedemptionToken(t *testing.T) {
	c, err := claim.NewClaim(uuid.New(), uuid.New(), "1016000001", now, nil)
	require.NoError(t, err)

	tok, err := claim.NewRedemptionToken(c, "TABCDEFGHJK", now)
	require.NoError(t, err)
	c.AttachToken(tok.ID())

	assert.Equal(t, c.ID(), tok.ClaimID())
	assert.Equal(t, c.UserID(), tok.UserID())
	assert.False(t, tok.IsUsed())
	require.NotNil(t, c.TokenID())
	assert.Equal(t, tok.ID(), *c.TokenID())

	_, err = claim.NewRedemptionToken(c, "", now)
	assert.ErrorIs(t, err, claim.ErrEmptyCode)
}

func TestRedemptionToken_Use(t *testing.T) {
	c, err := claim.NewClaim(uuid.New(), uuid.New(), "1016000001", now, nil)
	require.NoError(t, err)
	tok, err := claim.NewRedemptionToken(c, "TABCDEFGHJK", now)
	require.NoError(t, err)

	usedAt := now.Add(time.Hour)
	require.NoError(t, tok.Use(usedAt))
	assert.True(t, tok.IsUsed())
	require.NotNil(t, tok.UsedAt())
	assert.Equal(t, usedAt, *tok.UsedAt())

	err = tok.Use(usedAt.Add(time.Minute))
	assert.ErrorIs(t, err, claim.ErrTokenUsed)
	assert.Equal(t, usedAt, *tok.UsedAt(), "second use keeps the first timestamp")

	reloaded := claim.ReconstructToken(tok.ID(), tok.UserID(), tok.ClaimID(), tok.Code(), tok.UsedAt(), tok.CreatedAt())
	assert.ErrorIs(t, reloaded.Use(usedAt), claim.ErrTokenUsed)
}
