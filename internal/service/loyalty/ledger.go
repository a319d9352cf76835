// Package loyalty maps accumulated points to membership tiers and converts
// paid amounts into point awards.
package loyalty

// Tier is a membership level. Values are the localized display names the rest
// of the system (and its notifications) use.
type Tier string

const (
	TierBronze   Tier = "Đồng"
	TierSilver   Tier = "Bạc"
	TierGold     Tier = "Vàng"
	TierPlatinum Tier = "Bạch Kim"
	TierDiamond  Tier = "Kim Cương"
)

// PointsPerUnit is the exchange rate: one point per 10 000 currency units.
const PointsPerUnit = 10000

// TierFor derives the membership tier from a points total. Tiers are ordered
// bands with inclusive lower bounds; the tier is always recomputed from
// points, never stored.
func TierFor(points int) Tier {
	switch {
	case points >= 10000:
		return TierDiamond
	case points >= 5000:
		return TierPlatinum
	case points >= 2000:
		return TierGold
	case points >= 500:
		return TierSilver
	default:
		return TierBronze
	}
}

// PointsFromAmount converts a paid amount into points, floored.
func PointsFromAmount(amount int64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount / PointsPerUnit)
}

// AddPoints is saturating, non-negative addition with no upper bound.
func AddPoints(current, delta int) int {
	total := current + delta
	if total < 0 {
		return 0
	}
	return total
}
