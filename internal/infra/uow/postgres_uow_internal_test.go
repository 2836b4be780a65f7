//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"grab-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	errMarked := errs.New("marked")

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "deadlock under a mark", err: errs.Mark(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, errMarked), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "business rejection", err: errors.New("offer quota exhausted")},
		{name: "nil", err: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry_StopsAtMaxRetries(t *testing.T) {
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}

	assert.True(t, shouldRetry(deadlock, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond

	for attempt := range 4 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	for range 100 {
		n := cryptoRandInt63n(7)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(7))
	}
}
