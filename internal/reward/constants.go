package reward

import "github.com/oakvale/homestead/internal/domain"

// chanceParams define an activity's per-draw success chance:
// base + level*step, clamped to 1.0.
type chanceParams struct {
	Base float64
	Step float64
}

var successChance = map[domain.Activity]chanceParams{
	domain.ActivityFarming:  {Base: 0.5, Step: 0.05},
	domain.ActivityFishing:  {Base: 0.4, Step: 0.05},
	domain.ActivityMining:   {Base: 0.6, Step: 0.05},
	domain.ActivityForaging: {Base: 0.7, Step: 0.05},
	domain.ActivityCooking:  {Base: 0.8, Step: 0.05},
}

// countParams bound how many draws one run attempts:
// min(level/Divisor + Offset, Cap), rolled uniformly in [1, bound].
type countParams struct {
	Offset  int
	Divisor int
	Cap     int
}

var itemCountBound = map[domain.Activity]countParams{
	domain.ActivityFarming:  {Offset: 1, Divisor: 3, Cap: 4},
	domain.ActivityFishing:  {Offset: 1, Divisor: 4, Cap: 3},
	domain.ActivityMining:   {Offset: 1, Divisor: 3, Cap: 5},
	domain.ActivityForaging: {Offset: 2, Divisor: 3, Cap: 6},
	domain.ActivityCooking:  {Offset: 1, Divisor: 5, Cap: 3},
}

const (
	// doubleChance is the flat probability that a held double-yield
	// perk doubles the draw count or a drawn quantity.
	doubleChance = 0.2

	// tierGateDecay is the per-level survival factor for minerals
	// above the equipped pickaxe's tier.
	tierGateDecay = 0.2

	// coalChance is mining's independent baseline fuel roll.
	coalChance   = 0.3
	coalMinCount = 1
	coalMaxCount = 3

	// Crop quality odds: base + level*step, capped.
	qualityBase     = 0.05
	qualityPerLevel = 0.01
	qualityCap      = 0.5
)
