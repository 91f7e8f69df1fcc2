package services

import "math"

type RoundingPolicy string

const (
	// RoundingFloor always rounds a fractional day average down.
	RoundingFloor RoundingPolicy = "floor"
	// RoundingThreshold rounds up only when the fractional part reaches 0.6.
	// Fractions in [0.5, 0.6) still round down; the dead zone is a business
	// rule, not round-half-up.
	RoundingThreshold RoundingPolicy = "threshold"
)

const roundUpThreshold = 0.6

// RoundDays converts a fractional day average to whole days per the policy.
func (policy RoundingPolicy) RoundDays(value float64) int {
	switch policy {
	case RoundingThreshold:
		if value-math.Floor(value) >= roundUpThreshold {
			return int(math.Ceil(value))
		}
		return int(math.Floor(value))
	default:
		return int(math.Floor(value))
	}
}

// CeilDays rounds a cycle-length average up. Cycle averages ignore the bleed
// rounding policy in every deployment.
func CeilDays(value float64) int {
	return int(math.Ceil(value))
}
