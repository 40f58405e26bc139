package game

import (
	"math/rand"
	"strings"

	"github.com/oakvale/homestead/internal/domain"
)

// Harvest rarity base chances, gated by skill level per the shared
// rarity requirement table and scaled by the tool tier bonus.
var harvestRarityChance = map[domain.Rarity]float64{
	domain.RarityUncommon:  0.3,
	domain.RarityRare:      0.15,
	domain.RarityEpic:      0.08,
	domain.RarityLegendary: 0.03,
}

// rollOrder runs rarest to common so a single uniform draw against
// cumulative thresholds gives the rarest rarity first match wins.
var harvestRollOrder = []domain.Rarity{
	domain.RarityLegendary,
	domain.RarityEpic,
	domain.RarityRare,
	domain.RarityUncommon,
}

const (
	harvestMinQuantity = 2
	harvestMaxQuantity = 4
)

// RollHarvestRarity picks the harvested crop's rarity with one uniform
// draw, defaulting to common.
func RollHarvestRarity(rng *rand.Rand, level int, tier domain.ToolTier) domain.Rarity {
	bonus := domain.TierYieldMultiplier[tier]
	if bonus == 0 {
		bonus = 1
	}

	roll := rng.Float64()
	cumulative := 0.0
	for _, rarity := range harvestRollOrder {
		if level < domain.RarityLevelRequirement[rarity] {
			continue
		}
		cumulative += harvestRarityChance[rarity] * bonus
		if roll < cumulative {
			return rarity
		}
	}
	return domain.RarityCommon
}

// cropForSeed resolves the crop a seed grows into.
func (r *Reducer) cropForSeed(seedID string) (domain.Item, bool) {
	return r.catalog.ItemByID(strings.TrimSuffix(seedID, "_seeds"))
}

// harvestPlot reaps a mature plot: rolls the crop's rarity, scales its
// value by the rarity multiplier, adds 2-4 units to the inventory and
// recycles the plot to untilled.
func (r *Reducer) harvestPlot(state *domain.GameState, plotID int) {
	plot := plotAt(state, plotID)
	if plot == nil || plot.State != domain.PlotMature {
		return
	}

	crop, ok := r.cropForSeed(plot.SeedID)
	plot.ClearCrop()
	if !ok {
		return
	}

	level := state.Skills[domain.ActivityFarming].Level
	tier := domain.TierBasic
	if hoe := state.FindItem("hoe"); hoe != nil {
		tier = hoe.Tier
	}

	rarity := RollHarvestRarity(r.rng, level, tier)
	crop.Rarity = rarity
	crop.Value *= domain.RarityValueMultiplier[rarity]

	quantity := harvestMinQuantity + r.rng.Intn(harvestMaxQuantity-harvestMinQuantity+1)
	addToInventory(state, crop, quantity)
}
