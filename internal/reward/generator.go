package reward

import (
	"math"
	"math/rand"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
)

// Context carries the player-side inputs of one reward run.
type Context struct {
	Level    int
	Perks    []domain.Perk
	ToolTier domain.ToolTier
	Weather  domain.Weather
}

func (c Context) hasEffect(effect domain.PerkEffect) bool {
	for _, perk := range c.Perks {
		if perk.Effect == effect {
			return true
		}
	}
	return false
}

func (c Context) effectMagnitude(effect domain.PerkEffect) float64 {
	for _, perk := range c.Perks {
		if perk.Effect == effect {
			return perk.Magnitude
		}
	}
	return 0
}

// Result is what one reward run produced. An empty Items slice is a
// valid empty-handed outcome, not an error.
type Result struct {
	Items []domain.InventoryItem

	// QualityChance is the crop quality probability for this run,
	// consumed by the harvest path.
	QualityChance float64
}

// Generator draws activity rewards from the catalog's loot pools. It
// is pure apart from consuming the injected random source; the same
// inputs reproduce the same distribution, not the same bytes.
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewGenerator creates a Generator drawing from the given catalog.
func NewGenerator(cat *catalog.Catalog, seed int64) *Generator {
	return &Generator{
		catalog: cat,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // game randomness, not security critical
	}
}

// NewGeneratorWithRand creates a Generator sharing an existing random
// source, so a session's engine and generator can advance one stream.
func NewGeneratorWithRand(cat *catalog.Catalog, rng *rand.Rand) *Generator {
	return &Generator{catalog: cat, rng: rng}
}

// Generate runs one reward draw for the given activity.
func (g *Generator) Generate(activityID domain.Activity, ctx Context) Result {
	activity, ok := g.catalog.ActivityByID(activityID)
	if !ok {
		return Result{}
	}

	result := Result{
		QualityChance: g.qualityChance(ctx),
	}

	chance := g.successChance(activityID, ctx)
	count := g.drawCount(activityID, ctx)

	for i := 0; i < count; i++ {
		if g.rng.Float64() >= chance {
			continue
		}
		item, ok := g.pickItem(activityID, activity.PossibleItems, ctx)
		if !ok {
			continue
		}
		quantity := g.rollQuantity(item, ctx)
		result.Items = append(result.Items, domain.NewInventoryItem(item, quantity))
	}

	if activityID == domain.ActivityMining && g.rng.Float64() < coalChance {
		if coal, ok := g.catalog.ItemByID("coal"); ok {
			quantity := coalMinCount + g.rng.Intn(coalMaxCount-coalMinCount+1)
			result.Items = append(result.Items, domain.NewInventoryItem(coal, quantity))
		}
	}

	return result
}

func (g *Generator) successChance(activityID domain.Activity, ctx Context) float64 {
	params := successChance[activityID]
	chance := params.Base + float64(ctx.Level)*params.Step
	if ctx.hasEffect(domain.PerkRareFind) {
		chance += ctx.effectMagnitude(domain.PerkRareFind)
	}
	return math.Min(chance, 1.0)
}

func (g *Generator) drawCount(activityID domain.Activity, ctx Context) int {
	params := itemCountBound[activityID]
	bound := ctx.Level/params.Divisor + params.Offset
	if bound > params.Cap {
		bound = params.Cap
	}
	if bound < 1 {
		bound = 1
	}

	count := 1 + g.rng.Intn(bound)
	if ctx.hasEffect(domain.PerkDoubleYield) && g.rng.Float64() < doubleChance {
		count *= 2
	}
	return count
}

// pickItem filters the activity pool by the rarity level gate, applies
// mining's tool-tier gate, biases the pool toward rare entries if the
// rare-find perk is held, then picks uniformly.
func (g *Generator) pickItem(activityID domain.Activity, poolIDs []string, ctx Context) (domain.Item, bool) {
	tierLevel := domain.TierLevel[ctx.ToolTier]
	rareBias := ctx.hasEffect(domain.PerkRareFind)

	pool := make([]domain.Item, 0, len(poolIDs))
	for _, id := range poolIDs {
		item, ok := g.catalog.ItemByID(id)
		if !ok {
			continue
		}
		required := domain.RarityLevelRequirement[item.Rarity]
		if required > ctx.Level {
			continue
		}
		if activityID == domain.ActivityMining && required > tierLevel {
			gap := required - tierLevel
			if g.rng.Float64() >= math.Pow(tierGateDecay, float64(gap)) {
				continue
			}
		}
		pool = append(pool, item)
		if rareBias && domain.RarityLevelRequirement[item.Rarity] >= domain.RarityLevelRequirement[domain.RarityRare] {
			pool = append(pool, item)
		}
	}

	if len(pool) == 0 {
		return domain.Item{}, false
	}
	return pool[g.rng.Intn(len(pool))], true
}

func (g *Generator) rollQuantity(item domain.Item, ctx Context) int {
	quantity := 1
	if item.Stackable {
		quantity = 1 + g.rng.Intn(3)
	}
	if ctx.hasEffect(domain.PerkDoubleYield) && g.rng.Float64() < doubleChance {
		quantity *= 2
	}
	multiplier := domain.TierYieldMultiplier[ctx.ToolTier]
	if multiplier == 0 {
		multiplier = 1
	}
	return int(math.Ceil(float64(quantity) * multiplier))
}

func (g *Generator) qualityChance(ctx Context) float64 {
	chance := qualityBase + float64(ctx.Level)*qualityPerLevel
	if ctx.hasEffect(domain.PerkQuality) {
		chance += ctx.effectMagnitude(domain.PerkQuality)
	}
	return math.Min(chance, qualityCap)
}
