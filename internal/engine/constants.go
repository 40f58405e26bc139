package engine

// Farm action costs. Experience follows the costed-effort rule
// (2x the energy spent) except for the fixed farm grants below.
const (
	tillEnergyCost  = 5
	tillExperience  = 10
	waterEnergyCost = 3
	waterExperience = 5
	plantExperience = 15
	clearEnergyCost = 4
	clearExperience = 5

	harvestExperience = 50

	// experiencePerEnergy converts an activity's energy cost into its
	// experience grant.
	experiencePerEnergy = 2

	// weatherEnergyBonus is the discount for activities favored by the
	// day's weather.
	weatherEnergyBonus = 1

	// treasureLootCount is how many rolls opening a treasure chest
	// grants.
	treasureLootCount = 3

	treasureChestItemID = "treasure_chest"
	legendaryFishItemID = "legendary_fish"
	hoeItemID           = "hoe"
	wateringCanItemID   = "watering_can"
)
