package domain

// PerkEffect names what a perk does. Perks are pure tagged data; the
// reward engine and the activity cost math interpret them by kind.
type PerkEffect string

const (
	// PerkEnergyCost reduces the activity's energy cost (magnitude is
	// the fraction removed, e.g. 0.2).
	PerkEnergyCost PerkEffect = "energy_cost"
	// PerkDoubleYield gives a flat 20% chance to double drawn
	// quantities and the item-count roll.
	PerkDoubleYield PerkEffect = "double_yield"
	// PerkRareFind biases the loot pool toward rare-and-above entries
	// and adds to the success chance.
	PerkRareFind PerkEffect = "rare_find"
	// PerkQuality raises the crop quality chance.
	PerkQuality PerkEffect = "quality"
	// PerkYield raises base yield.
	PerkYield PerkEffect = "yield"
	// PerkMasteryTillFree makes tilling cost no energy (tungsten hoe).
	PerkMasteryTillFree PerkEffect = "mastery_till_free"
	// PerkMasteryWaterAll waters every plot with a single action.
	PerkMasteryWaterAll PerkEffect = "mastery_water_all"
	// PerkMasteryRefund refunds half the energy cost when the run
	// produced common or uncommon items (tungsten pickaxe/axe).
	PerkMasteryRefund PerkEffect = "mastery_refund"
	// PerkMasteryDailyFish grants a legendary fish at day start.
	PerkMasteryDailyFish PerkEffect = "mastery_daily_fish"
)

// Perk is a permanent skill modifier unlocked on level-up, chosen from
// a pair of random candidates.
type Perk struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Activity      Activity   `json:"activity"`
	Effect        PerkEffect `json:"effect"`
	Magnitude     float64    `json:"magnitude,omitempty"`
	LevelRequired int        `json:"levelRequired"`
}
