package money

import "github.com/govalues/decimal"

// RoundingMode selects how [Money.Round] treats discarded digits.
type RoundingMode int

const (
	// HalfEven rounds to the nearest neighbour, ties to the even one (banker's rounding).
	HalfEven RoundingMode = iota
	// HalfAwayFromZero rounds to the nearest neighbour, ties away from zero.
	HalfAwayFromZero
	// TowardZero truncates.
	TowardZero
	// TowardPositive rounds up (ceiling).
	TowardPositive
	// TowardNegative rounds down (floor).
	TowardNegative
)

func (m RoundingMode) String() string {
	switch m {
	case HalfEven:
		return "HalfEven"
	case HalfAwayFromZero:
		return "HalfAwayFromZero"
	case TowardZero:
		return "TowardZero"
	case TowardPositive:
		return "TowardPositive"
	case TowardNegative:
		return "TowardNegative"
	}
	return "RoundingMode(?)"
}

func roundDecimal(d decimal.Decimal, scale int, mode RoundingMode) decimal.Decimal {
	scale = min(max(scale, 0), decimal.MaxScale)
	switch mode {
	case HalfAwayFromZero:
		if !isTie(d, scale) {
			return d.Round(scale)
		}
		if d.IsNeg() {
			return d.Floor(scale)
		}
		return d.Ceil(scale)
	case TowardZero:
		return d.Trunc(scale)
	case TowardPositive:
		return d.Ceil(scale)
	case TowardNegative:
		return d.Floor(scale)
	default:
		return d.Round(scale)
	}
}

// isTie reports whether d lies exactly halfway between two multiples of 10^-scale.
func isTie(d decimal.Decimal, scale int) bool {
	if d.MinScale() != scale+1 {
		return false
	}
	return d.Trim(scale+1).Coef()%10 == 5
}
