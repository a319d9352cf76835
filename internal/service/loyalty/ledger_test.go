package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Boundaries(t *testing.T) {
	cases := []struct {
		points int
		tier   Tier
	}{
		{0, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{1999, TierSilver},
		{2000, TierGold},
		{4999, TierGold},
		{5000, TierPlatinum},
		{9999, TierPlatinum},
		{10000, TierDiamond},
		{250000, TierDiamond},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, TierFor(tc.points), "points=%d", tc.points)
	}
}

func TestTierFor_Monotone(t *testing.T) {
	rank := map[Tier]int{TierBronze: 0, TierSilver: 1, TierGold: 2, TierPlatinum: 3, TierDiamond: 4}

	prev := TierFor(0)
	for points := 1; points <= 12000; points++ {
		current := TierFor(points)
		assert.GreaterOrEqual(t, rank[current], rank[prev], "tier dropped at %d points", points)
		prev = current
	}
}

func TestPointsFromAmount(t *testing.T) {
	assert.Equal(t, 0, PointsFromAmount(0))
	assert.Equal(t, 0, PointsFromAmount(9999))
	assert.Equal(t, 1, PointsFromAmount(10000))
	assert.Equal(t, 1, PointsFromAmount(19999))
	assert.Equal(t, 250, PointsFromAmount(2500000))
	assert.Equal(t, 0, PointsFromAmount(-500))
}

func TestAddPoints(t *testing.T) {
	assert.Equal(t, 150, AddPoints(100, 50))
	assert.Equal(t, 0, AddPoints(100, -200), "total saturates at zero")
	assert.Equal(t, 100, AddPoints(100, 0))
}
