//go:build unit

package quota_test

import (
	"testing"
	"time"

	"grab-service/internal/domain/quota"
	"grab-service/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 16, 23, 30, 0, 0, time.UTC)

func TestDay(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), quota.Day(now, time.UTC))
	assert.Equal(t, time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), quota.Day(now, tokyo))
	assert.Equal(t, quota.Day(now, time.UTC), quota.Day(now, nil))
}

func TestPlan(t *testing.T) {
	t.Run("unlimited needs nothing", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithMirror("P1").With(func(b *builder.OfferBuilder) { b.Unlimited = true }).BuildDomain()
		require.NoError(t, err)
		assert.Empty(t, quota.Plan(o, now, time.UTC))
	})

	t.Run("lifetime counter", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithCap(3).BuildDomain()
		require.NoError(t, err)

		plan := quota.Plan(o, now, time.UTC)

		require.Len(t, plan, 1)
		assert.Equal(t, quota.KindLifetimeCounter, plan[0].Kind)
		assert.Equal(t, o.ID(), plan[0].OfferID)
		assert.Equal(t, 3, *plan[0].Cap)
		assert.Equal(t, quota.Day(now, time.UTC), plan[0].Day)
	})

	t.Run("daily counter with mirrored stock", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithMirror("P1").With(func(b *builder.OfferBuilder) { b.Daily = true }).BuildDomain()
		require.NoError(t, err)

		plan := quota.Plan(o, now, time.UTC)

		require.Len(t, plan, 2)
		assert.Equal(t, quota.KindDailyCounter, plan[0].Kind)
		assert.Equal(t, quota.KindMirroredStock, plan[1].Kind)
		assert.Equal(t, "P1", plan[1].Code)
		assert.Nil(t, plan[1].Cap)
	})

	t.Run("empty mirror code is ignored", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().WithMirror("").BuildDomain()
		require.NoError(t, err)
		assert.Len(t, quota.Plan(o, now, time.UTC), 1)
	})
}

func TestExhausted(t *testing.T) {
	zero, one := 0, 1

	assert.False(t, quota.Resource{}.Exhausted(1))
	assert.True(t, quota.Resource{Cap: &zero}.Exhausted(1))
	assert.False(t, quota.Resource{Cap: &one}.Exhausted(1))
	assert.True(t, quota.Resource{Cap: &one}.Exhausted(2))
}
