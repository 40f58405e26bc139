package domain

// Centralized balance tables. Every component that needs a
// rarity/tier constant reads it from here so the numbers cannot
// silently diverge between the reward engine, the harvest roll and the
// activity cost math.

// SeasonLength is how many days each season lasts.
const SeasonLength = 25

// Day boundaries in minutes-of-day. A day runs [DayStart, DayEnd);
// reaching DayEnd triggers rollover.
const (
	DayStart = 360
	DayEnd   = 1080
)

// RarityLevelRequirement is the minimum skill level at which items of a
// given rarity may drop.
var RarityLevelRequirement = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  2,
	RarityRare:      4,
	RarityEpic:      6,
	RarityLegendary: 8,
}

// RarityValueMultiplier scales an item's base value by harvested rarity.
var RarityValueMultiplier = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  2,
	RarityRare:      4,
	RarityEpic:      8,
	RarityLegendary: 16,
}

// TierLevel maps a tool tier to the rarity level it can reliably
// extract; drops above this level decay geometrically.
var TierLevel = map[ToolTier]int{
	TierBasic:    0,
	TierCopper:   2,
	TierIron:     4,
	TierTungsten: 6,
}

// TierYieldMultiplier scales drawn quantities per tool tier.
var TierYieldMultiplier = map[ToolTier]float64{
	TierBasic:    1,
	TierCopper:   1.2,
	TierIron:     1.5,
	TierTungsten: 2,
}

// TierSpeedFactor scales an activity's time cost per tool tier.
var TierSpeedFactor = map[ToolTier]float64{
	TierBasic:    1,
	TierCopper:   0.85,
	TierIron:     0.75,
	TierTungsten: 0.6,
}

// SeasonWeather is the allowed weather per season. Rollover draws
// uniformly from the new season's set.
var SeasonWeather = map[Season][]Weather{
	SeasonSpring: {WeatherSunny, WeatherRainy},
	SeasonSummer: {WeatherSunny, WeatherStormy},
	SeasonFall:   {WeatherSunny, WeatherRainy, WeatherStormy},
	SeasonWinter: {WeatherSnowy, WeatherSunny},
}

// WeatherFavoredActivities lists the activities that get an energy
// discount under a given weather.
var WeatherFavoredActivities = map[Weather][]Activity{
	WeatherSunny:  {ActivityFarming, ActivityForaging},
	WeatherRainy:  {ActivityFishing},
	WeatherStormy: {ActivityMining, ActivityCooking},
}

// WeatherFavors reports whether the given weather discounts the given
// activity's energy cost.
func WeatherFavors(w Weather, a Activity) bool {
	for _, favored := range WeatherFavoredActivities[w] {
		if favored == a {
			return true
		}
	}
	return false
}

// NextToolTier returns the tier above t, or empty string at the top of
// the ladder.
func NextToolTier(t ToolTier) ToolTier {
	for i, tier := range ToolTiers {
		if tier == t && i < len(ToolTiers)-1 {
			return ToolTiers[i+1]
		}
	}
	return ""
}
