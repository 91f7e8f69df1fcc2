package services

import "strings"

const (
	VariantClassic  = "classic"
	VariantEnriched = "enriched"
)

// Variant bundles the per-deployment calculation strategy: how bleed averages
// are rounded and which fertile-window rule set applies. Both calculators take
// it as a parameter so the two deployments share one code path.
type Variant struct {
	Name              string
	Rounding          RoundingPolicy
	RichFertileWindow bool
}

func ClassicVariant() Variant {
	return Variant{Name: VariantClassic, Rounding: RoundingFloor, RichFertileWindow: false}
}

func EnrichedVariant() Variant {
	return Variant{Name: VariantEnriched, Rounding: RoundingThreshold, RichFertileWindow: true}
}

// ResolveVariant maps a configured variant name to its strategy. Unknown or
// empty names fall back to the enriched deployment.
func ResolveVariant(name string) Variant {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case VariantClassic:
		return ClassicVariant()
	default:
		return EnrichedVariant()
	}
}
