package catalog

import (
	"math/rand"

	"github.com/yihao03/Aistronaut/config"
)

// Accommodation tiers offered for every destination.
const (
	TierLuxury   = "luxury"
	TierBoutique = "boutique"
	TierEconomy  = "economy"
)

// PriceEstimator supplies the placeholder economics used while no live
// pricing feed exists. Injecting it keeps trip and accommodation synthesis
// deterministic under test.
type PriceEstimator interface {
	// NightlyEstimate is the per-night accommodation figure folded into a
	// trip option's total.
	NightlyEstimate() float64
	// ActivitiesEstimate is the lump activities figure folded into a trip
	// option's total.
	ActivitiesEstimate() float64
	// TierNightlyRate prices one night for an accommodation tier.
	TierNightlyRate(tier string) float64
}

// RandomEstimator draws bounded random figures from the configured ranges.
type RandomEstimator struct{}

func randInRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rand.Float64()*(max-min)
}

func (RandomEstimator) NightlyEstimate() float64 {
	return randInRange(config.AppConfig.NightlyEstimateMin, config.AppConfig.NightlyEstimateMax)
}

func (RandomEstimator) ActivitiesEstimate() float64 {
	return randInRange(config.AppConfig.ActivitiesEstimateMin, config.AppConfig.ActivitiesEstimateMax)
}

func (RandomEstimator) TierNightlyRate(tier string) float64 {
	switch tier {
	case TierLuxury:
		return randInRange(300, 500)
	case TierBoutique:
		return randInRange(150, 300)
	default:
		return randInRange(60, 150)
	}
}

// FixedEstimator returns constant figures; used by tests and reproducible runs.
type FixedEstimator struct {
	Nightly    float64
	Activities float64
	TierRates  map[string]float64
}

func (e FixedEstimator) NightlyEstimate() float64    { return e.Nightly }
func (e FixedEstimator) ActivitiesEstimate() float64 { return e.Activities }

func (e FixedEstimator) TierNightlyRate(tier string) float64 {
	if rate, ok := e.TierRates[tier]; ok {
		return rate
	}
	return e.Nightly
}
