package domain

// Activity identifies one of the five fixed skill domains.
type Activity string

const (
	ActivityFarming  Activity = "farming"
	ActivityFishing  Activity = "fishing"
	ActivityMining   Activity = "mining"
	ActivityForaging Activity = "foraging"
	ActivityCooking  Activity = "cooking"
)

// Activities lists every skill domain in canonical order.
var Activities = []Activity{
	ActivityFarming,
	ActivityFishing,
	ActivityMining,
	ActivityForaging,
	ActivityCooking,
}

// Valid reports whether a is one of the five fixed activities.
func (a Activity) Valid() bool {
	switch a {
	case ActivityFarming, ActivityFishing, ActivityMining, ActivityForaging, ActivityCooking:
		return true
	}
	return false
}

// Season is one quarter of the 100-day year.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Next returns the season that follows s, wrapping winter back to spring.
func (s Season) Next() Season {
	switch s {
	case SeasonSpring:
		return SeasonSummer
	case SeasonSummer:
		return SeasonFall
	case SeasonFall:
		return SeasonWinter
	default:
		return SeasonSpring
	}
}

// Weather is the day-scoped weather condition.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherRainy  Weather = "rainy"
	WeatherStormy Weather = "stormy"
	WeatherSnowy  Weather = "snowy"
)

// Rain reports whether this weather waters crops on its own.
func (w Weather) Rain() bool {
	return w == WeatherRainy || w == WeatherStormy
}

// Rarity is both a loot-table gate and a value multiplier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ToolTier gates speed, energy cost and loot quality for tool-requiring
// activities.
type ToolTier string

const (
	TierBasic    ToolTier = "basic"
	TierCopper   ToolTier = "copper"
	TierIron     ToolTier = "iron"
	TierTungsten ToolTier = "tungsten"
)

// ToolTiers lists the upgrade ladder in ascending order.
var ToolTiers = []ToolTier{TierBasic, TierCopper, TierIron, TierTungsten}

// PlotState is the lifecycle state of a single farmable plot.
type PlotState string

const (
	PlotUntilled PlotState = "untilled"
	PlotTilled   PlotState = "tilled"
	PlotSeeded   PlotState = "seeded"
	PlotGrowing  PlotState = "growing"
	PlotMature   PlotState = "mature"
	PlotDead     PlotState = "dead"
)

// ItemType categorizes catalog items.
type ItemType string

const (
	ItemTypeTool       ItemType = "tool"
	ItemTypeSeed       ItemType = "seed"
	ItemTypeCrop       ItemType = "crop"
	ItemTypeFish       ItemType = "fish"
	ItemTypeMineral    ItemType = "mineral"
	ItemTypeForaged    ItemType = "foraged"
	ItemTypeResource   ItemType = "resource"
	ItemTypeMeal       ItemType = "meal"
	ItemTypeTreasure   ItemType = "treasure"
	ItemTypeEquipment  ItemType = "equipment"
	ItemTypeComponent  ItemType = "component"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeTrash      ItemType = "trash"
)

// EquipSlot names one of the nine fixed equipment slots.
type EquipSlot string

const (
	SlotHead      EquipSlot = "head"
	SlotTorso     EquipSlot = "torso"
	SlotBelt      EquipSlot = "belt"
	SlotLegs      EquipSlot = "legs"
	SlotBoots     EquipSlot = "boots"
	SlotHands     EquipSlot = "hands"
	SlotRingLeft  EquipSlot = "ring_left"
	SlotRingRight EquipSlot = "ring_right"
	SlotAmulet    EquipSlot = "amulet"
)

// EquipSlots lists every equipment slot in canonical order.
var EquipSlots = []EquipSlot{
	SlotHead, SlotTorso, SlotBelt, SlotLegs, SlotBoots,
	SlotHands, SlotRingLeft, SlotRingRight, SlotAmulet,
}

// Valid reports whether s names a real equipment slot.
func (s EquipSlot) Valid() bool {
	for _, known := range EquipSlots {
		if s == known {
			return true
		}
	}
	return false
}
