package catalog

import (
	"github.com/oakvale/homestead/internal/domain"
)

// ActivityDetails describes one of the five performable activities.
type ActivityDetails struct {
	ID            domain.Activity `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	EnergyCost    int             `json:"energyCost"`
	TimeCost      int             `json:"timeCost"`
	PossibleItems []string        `json:"possibleItems"`
	RequiredTool  string          `json:"requiredTool,omitempty"`
}

// Recipe is a two-ingredient crafting combination. Ingredients are
// order-insensitive.
type Recipe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Ingredients [2]string `json:"ingredients"`
	ResultID    string    `json:"result"`
}

// UpgradeRequirement is the material cost of a tool tier.
type UpgradeRequirement struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// UpgradeStats are the passive bonuses a tool tier grants.
type UpgradeStats struct {
	EnergyReduction float64 `json:"energyReduction"`
	SpeedBonus      float64 `json:"speedBonus"`
	QualityBonus    float64 `json:"qualityBonus"`
}

// ToolUpgrade describes one rung of the tool upgrade ladder.
type ToolUpgrade struct {
	Tier        domain.ToolTier    `json:"tier"`
	Name        string             `json:"name"`
	Requirement UpgradeRequirement `json:"requirement"`
	Stats       UpgradeStats       `json:"stats"`
}

// Catalog is the session's immutable reference data: items, activities,
// recipes, perks and tool upgrades, each keyed by a stable id. Lookups
// are pure and stable for the life of a session.
type Catalog struct {
	items        map[string]domain.Item
	activities   map[domain.Activity]ActivityDetails
	recipes      map[string]Recipe
	perks        map[string]domain.Perk
	perksByAct   map[domain.Activity][]domain.Perk
	upgrades     map[domain.ToolTier]ToolUpgrade
	starterItems []string
}

// New builds a Catalog from a validated Config.
func New(config *Config) *Catalog {
	c := &Catalog{
		items:        make(map[string]domain.Item, len(config.Items)),
		activities:   make(map[domain.Activity]ActivityDetails, len(config.Activities)),
		recipes:      make(map[string]Recipe, len(config.Recipes)),
		perks:        make(map[string]domain.Perk, len(config.Perks)),
		perksByAct:   make(map[domain.Activity][]domain.Perk),
		upgrades:     make(map[domain.ToolTier]ToolUpgrade, len(config.Upgrades)),
		starterItems: append([]string(nil), config.StarterItems...),
	}

	for _, item := range config.Items {
		c.items[item.ID] = item
	}
	for _, activity := range config.Activities {
		c.activities[activity.ID] = activity
	}
	for _, recipe := range config.Recipes {
		c.recipes[recipe.ID] = recipe
	}
	for _, perk := range config.Perks {
		c.perks[perk.ID] = perk
		c.perksByAct[perk.Activity] = append(c.perksByAct[perk.Activity], perk)
	}
	for _, upgrade := range config.Upgrades {
		c.upgrades[upgrade.Tier] = upgrade
	}

	return c
}

// ItemByID returns the catalog item with the given id.
func (c *Catalog) ItemByID(id string) (domain.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// ItemCount returns how many items the catalog defines.
func (c *Catalog) ItemCount() int {
	return len(c.items)
}

// ActivityByID returns the activity definition for the given id.
func (c *Catalog) ActivityByID(id domain.Activity) (ActivityDetails, bool) {
	activity, ok := c.activities[id]
	return activity, ok
}

// RecipeByID returns the recipe with the given id.
func (c *Catalog) RecipeByID(id string) (Recipe, bool) {
	recipe, ok := c.recipes[id]
	return recipe, ok
}

// FindRecipe returns the recipe matching the unordered ingredient pair.
func (c *Catalog) FindRecipe(ingredientA, ingredientB string) (Recipe, bool) {
	for _, recipe := range c.recipes {
		a, b := recipe.Ingredients[0], recipe.Ingredients[1]
		if (a == ingredientA && b == ingredientB) || (a == ingredientB && b == ingredientA) {
			return recipe, true
		}
	}
	return Recipe{}, false
}

// RecipeCount returns how many recipes the catalog defines.
func (c *Catalog) RecipeCount() int {
	return len(c.recipes)
}

// PerkByID returns the perk with the given id.
func (c *Catalog) PerkByID(id string) (domain.Perk, bool) {
	perk, ok := c.perks[id]
	return perk, ok
}

// PerksForActivity returns every perk belonging to the given activity,
// in config order.
func (c *Catalog) PerksForActivity(activity domain.Activity) []domain.Perk {
	return c.perksByAct[activity]
}

// UpgradeForTier returns the upgrade definition for the given target
// tier.
func (c *Catalog) UpgradeForTier(tier domain.ToolTier) (ToolUpgrade, bool) {
	upgrade, ok := c.upgrades[tier]
	return upgrade, ok
}

// StarterItems returns the items pre-placed in the first inventory
// slots of a fresh session, in slot order.
func (c *Catalog) StarterItems() []domain.Item {
	items := make([]domain.Item, 0, len(c.starterItems))
	for _, id := range c.starterItems {
		if item, ok := c.items[id]; ok {
			items = append(items, item)
		}
	}
	return items
}
