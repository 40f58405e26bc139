package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
)

func TestUnknownActivityYieldsNothing(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 1)

	result := g.Generate("spelunking", Context{Level: 1, ToolTier: domain.TierBasic})
	assert.Empty(t, result.Items)
}

func TestMiningTierGateBlocksEpicAtLowLevel(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 42)
	ctx := Context{Level: 1, ToolTier: domain.TierBasic}

	for i := 0; i < 2000; i++ {
		result := g.Generate(domain.ActivityMining, ctx)
		for _, item := range result.Items {
			required := domain.RarityLevelRequirement[item.Rarity]
			assert.LessOrEqual(t, required, ctx.Level,
				"level 1 miner received %s (%s)", item.ID, item.Rarity)
		}
	}
}

func TestHighLevelMinerCanFindRareOres(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 7)
	ctx := Context{Level: 10, ToolTier: domain.TierTungsten}

	var sawRare bool
	for i := 0; i < 2000 && !sawRare; i++ {
		result := g.Generate(domain.ActivityMining, ctx)
		for _, item := range result.Items {
			if domain.RarityLevelRequirement[item.Rarity] >= domain.RarityLevelRequirement[domain.RarityRare] {
				sawRare = true
			}
		}
	}
	assert.True(t, sawRare, "tungsten pickaxe at level 10 never produced a rare find in 2000 runs")
}

func TestEmptyHandedOutcomeOccurs(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 3)
	ctx := Context{Level: 1, ToolTier: domain.TierBasic}

	var sawEmpty, sawItems bool
	for i := 0; i < 1000 && !(sawEmpty && sawItems); i++ {
		result := g.Generate(domain.ActivityFishing, ctx)
		if len(result.Items) == 0 {
			sawEmpty = true
		} else {
			sawItems = true
		}
	}
	assert.True(t, sawEmpty, "fishing at level 1 should sometimes come up empty")
	assert.True(t, sawItems, "fishing at level 1 should sometimes succeed")
}

func TestQuantityBounds(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 11)
	ctx := Context{Level: 5, ToolTier: domain.TierBasic}

	for i := 0; i < 500; i++ {
		result := g.Generate(domain.ActivityForaging, ctx)
		for _, item := range result.Items {
			require.GreaterOrEqual(t, item.Quantity, 1)
			if item.Stackable {
				assert.LessOrEqual(t, item.Quantity, 3, "no double perk, basic tool: max 3 per stackable draw")
			} else {
				assert.Equal(t, 1, item.Quantity)
			}
		}
	}
}

func TestTierMultiplierScalesQuantity(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 19)
	ctx := Context{Level: 5, ToolTier: domain.TierTungsten}

	var sawAboveThree bool
	for i := 0; i < 500 && !sawAboveThree; i++ {
		result := g.Generate(domain.ActivityForaging, ctx)
		for _, item := range result.Items {
			assert.LessOrEqual(t, item.Quantity, 6, "tungsten doubles a max roll of 3")
			if item.Quantity > 3 {
				sawAboveThree = true
			}
		}
	}
	assert.True(t, sawAboveThree, "tungsten multiplier never exceeded the basic bound in 500 runs")
}

func TestMiningCoalSideRoll(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 23)
	ctx := Context{Level: 1, ToolTier: domain.TierBasic}

	coalRuns := 0
	const runs = 2000
	for i := 0; i < runs; i++ {
		result := g.Generate(domain.ActivityMining, ctx)
		for _, item := range result.Items {
			if item.ID == "coal" {
				coalRuns++
				assert.GreaterOrEqual(t, item.Quantity, 1)
				assert.LessOrEqual(t, item.Quantity, 3)
				break
			}
		}
	}

	// The independent fuel roll fires 30% of the time; allow a wide
	// band so the test stays stable across seeds.
	assert.Greater(t, coalRuns, runs/5)
	assert.Less(t, coalRuns, runs/2)
}

func TestRareFindPerkRaisesSuccess(t *testing.T) {
	cat := catalog.MustDefault()
	ctx := Context{Level: 1, ToolTier: domain.TierBasic}
	perkCtx := Context{
		Level:    1,
		ToolTier: domain.TierBasic,
		Perks: []domain.Perk{
			{ID: "fishing_rare", Activity: domain.ActivityFishing, Effect: domain.PerkRareFind, Magnitude: 0.2},
		},
	}

	const runs = 3000
	countHits := func(seed int64, c Context) int {
		g := NewGenerator(cat, seed)
		hits := 0
		for i := 0; i < runs; i++ {
			if len(g.Generate(domain.ActivityFishing, c).Items) > 0 {
				hits++
			}
		}
		return hits
	}

	plain := countHits(99, ctx)
	boosted := countHits(99, perkCtx)
	assert.Greater(t, boosted, plain)
}

func TestQualityChanceCapped(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), 5)

	low := g.Generate(domain.ActivityFarming, Context{Level: 1, ToolTier: domain.TierBasic})
	assert.InDelta(t, 0.06, low.QualityChance, 1e-9)

	perks := []domain.Perk{{ID: "farming_quality", Effect: domain.PerkQuality, Magnitude: 0.15}}
	high := g.Generate(domain.ActivityFarming, Context{Level: 99, ToolTier: domain.TierBasic, Perks: perks})
	assert.InDelta(t, qualityCap, high.QualityChance, 1e-9)
}
