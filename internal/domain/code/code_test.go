//go:build unit

package code_test

import (
	"testing"
	"time"

	"grab-service/internal/domain/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimScope(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	// 20:00 UTC on Oct 16 is already Oct 17 in Tokyo
	at := time.Date(2025, 10, 16, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "1016", code.ClaimScope(at, time.UTC).Prefix)
	assert.Equal(t, "1017", code.ClaimScope(at, tokyo).Prefix)
	assert.Equal(t, "1016", code.ClaimScope(at, nil).Prefix)
	assert.Equal(t, code.KindSequential, code.ClaimScope(at, nil).Kind)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1016000001", want: "1016000001"},
		{in: "  tabc2345xy ", want: "TABC2345XY"},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1016-0001", wantErr: true},
		{in: "A234567890123456789012345678901234", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := code.Normalize(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, code.ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	got, err := code.Format("1016", 42, 6)
	require.NoError(t, err)
	assert.Equal(t, "1016000042", got)

	_, err = code.Format("1016", 1000000, 6)
	assert.ErrorIs(t, err, code.ErrSuffixOverrun)
}

func TestParseSuffix(t *testing.T) {
	n, err := code.ParseSuffix("AB", "AB0012")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = code.ParseSuffix("AB", "CD0012")
	assert.ErrorIs(t, err, code.ErrInvalidCode)

	_, err = code.ParseSuffix("AB", "AB12X4")
	assert.ErrorIs(t, err, code.ErrInvalidCode)
}

func TestRandom(t *testing.T) {
	got, err := code.Random("T", 10)
	require.NoError(t, err)

	assert.Len(t, got, 11)
	assert.Regexp(t, `^T[A-HJ-NP-Z2-9]{10}$`, got)
}
