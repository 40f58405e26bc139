package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oakvale/homestead/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrUnknownItem   = errors.New("reference to unknown item")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config file names inside a catalog directory
const (
	FileItems      = "items.json"
	FileActivities = "activities.json"
	FileRecipes    = "recipes.json"
	FilePerks      = "perks.json"
	FileUpgrades   = "upgrades.json"
)

// Config is the parsed but not-yet-indexed catalog data.
type Config struct {
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Items        []domain.Item     `json:"items"`
	StarterItems []string          `json:"starterItems"`
	Activities   []ActivityDetails `json:"activities"`
	Recipes      []Recipe          `json:"recipes"`
	Perks        []domain.Perk     `json:"perks"`
	Upgrades     []ToolUpgrade     `json:"upgrades"`
}

// Loader reads and validates catalog configuration from a directory of
// JSON files.
type Loader interface {
	Load(dir string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return catalogLoader{}
}

// itemsFile is the on-disk shape of items.json.
type itemsFile struct {
	Version      string        `json:"version"`
	Description  string        `json:"description"`
	Items        []domain.Item `json:"items"`
	StarterItems []string      `json:"starterItems"`
}

type activitiesFile struct {
	Activities []ActivityDetails `json:"activities"`
}

type recipesFile struct {
	Recipes []Recipe `json:"recipes"`
}

type perksFile struct {
	Perks []domain.Perk `json:"perks"`
}

type upgradesFile struct {
	Upgrades []ToolUpgrade `json:"upgrades"`
}

func readJSONFile(dir, name string, dest any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", name, err)
	}
	return nil
}

// Load reads the five catalog files from dir and merges them into a
// single Config.
func (catalogLoader) Load(dir string) (*Config, error) {
	var (
		items      itemsFile
		activities activitiesFile
		recipes    recipesFile
		perks      perksFile
		upgrades   upgradesFile
	)

	if err := readJSONFile(dir, FileItems, &items); err != nil {
		return nil, err
	}
	if err := readJSONFile(dir, FileActivities, &activities); err != nil {
		return nil, err
	}
	if err := readJSONFile(dir, FileRecipes, &recipes); err != nil {
		return nil, err
	}
	if err := readJSONFile(dir, FilePerks, &perks); err != nil {
		return nil, err
	}
	if err := readJSONFile(dir, FileUpgrades, &upgrades); err != nil {
		return nil, err
	}

	return &Config{
		Version:      items.Version,
		Description:  items.Description,
		Items:        items.Items,
		StarterItems: items.StarterItems,
		Activities:   activities.Activities,
		Recipes:      recipes.Recipes,
		Perks:        perks.Perks,
		Upgrades:     upgrades.Upgrades,
	}, nil
}

// Validate checks the catalog configuration for structural errors:
// duplicate ids, dangling item references and malformed definitions.
func (catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	itemIDs := make(map[string]bool, len(config.Items))
	for i, item := range config.Items {
		if item.ID == "" {
			return fmt.Errorf("%w: item at index %d has empty id", ErrInvalidConfig, i)
		}
		if itemIDs[item.ID] {
			return fmt.Errorf("%w: item '%s'", ErrDuplicateID, item.ID)
		}
		itemIDs[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf("%w: item '%s' has empty name", ErrInvalidConfig, item.ID)
		}
		if item.Value < 0 {
			return fmt.Errorf("%w: item '%s' has negative value", ErrInvalidConfig, item.ID)
		}
		if item.Stackable && item.MaxStackSize < 1 {
			return fmt.Errorf("%w: stackable item '%s' has max stack < 1", ErrInvalidConfig, item.ID)
		}
		if _, ok := domain.RarityLevelRequirement[item.Rarity]; !ok {
			return fmt.Errorf("%w: item '%s' has unknown rarity '%s'", ErrInvalidConfig, item.ID, item.Rarity)
		}
	}

	for _, id := range config.StarterItems {
		if !itemIDs[id] {
			return fmt.Errorf("%w: starter item '%s'", ErrUnknownItem, id)
		}
	}

	activityIDs := make(map[domain.Activity]bool, len(config.Activities))
	for _, activity := range config.Activities {
		if !activity.ID.Valid() {
			return fmt.Errorf("%w: unknown activity '%s'", ErrInvalidConfig, activity.ID)
		}
		if activityIDs[activity.ID] {
			return fmt.Errorf("%w: activity '%s'", ErrDuplicateID, activity.ID)
		}
		activityIDs[activity.ID] = true

		if activity.EnergyCost < 0 || activity.TimeCost <= 0 {
			return fmt.Errorf("%w: activity '%s' has invalid costs", ErrInvalidConfig, activity.ID)
		}
		for _, itemID := range activity.PossibleItems {
			if !itemIDs[itemID] {
				return fmt.Errorf("%w: activity '%s' item '%s'", ErrUnknownItem, activity.ID, itemID)
			}
		}
		if activity.RequiredTool != "" && !itemIDs[activity.RequiredTool] {
			return fmt.Errorf("%w: activity '%s' tool '%s'", ErrUnknownItem, activity.ID, activity.RequiredTool)
		}
	}

	recipeIDs := make(map[string]bool, len(config.Recipes))
	for _, recipe := range config.Recipes {
		if recipe.ID == "" {
			return fmt.Errorf("%w: recipe with empty id", ErrInvalidConfig)
		}
		if recipeIDs[recipe.ID] {
			return fmt.Errorf("%w: recipe '%s'", ErrDuplicateID, recipe.ID)
		}
		recipeIDs[recipe.ID] = true

		for _, ingredient := range recipe.Ingredients {
			if !itemIDs[ingredient] {
				return fmt.Errorf("%w: recipe '%s' ingredient '%s'", ErrUnknownItem, recipe.ID, ingredient)
			}
		}
		if !itemIDs[recipe.ResultID] {
			return fmt.Errorf("%w: recipe '%s' result '%s'", ErrUnknownItem, recipe.ID, recipe.ResultID)
		}
	}

	perkIDs := make(map[string]bool, len(config.Perks))
	for _, perk := range config.Perks {
		if perk.ID == "" {
			return fmt.Errorf("%w: perk with empty id", ErrInvalidConfig)
		}
		if perkIDs[perk.ID] {
			return fmt.Errorf("%w: perk '%s'", ErrDuplicateID, perk.ID)
		}
		perkIDs[perk.ID] = true

		if !perk.Activity.Valid() {
			return fmt.Errorf("%w: perk '%s' has unknown activity '%s'", ErrInvalidConfig, perk.ID, perk.Activity)
		}
		if perk.Effect == "" {
			return fmt.Errorf("%w: perk '%s' has no effect kind", ErrInvalidConfig, perk.ID)
		}
		if perk.LevelRequired < 1 {
			return fmt.Errorf("%w: perk '%s' has level requirement < 1", ErrInvalidConfig, perk.ID)
		}
	}

	for _, upgrade := range config.Upgrades {
		if _, ok := domain.TierLevel[upgrade.Tier]; !ok {
			return fmt.Errorf("%w: upgrade with unknown tier '%s'", ErrInvalidConfig, upgrade.Tier)
		}
		if upgrade.Requirement.ItemID != "" && !itemIDs[upgrade.Requirement.ItemID] {
			return fmt.Errorf("%w: upgrade '%s' material '%s'", ErrUnknownItem, upgrade.Tier, upgrade.Requirement.ItemID)
		}
	}

	return nil
}
