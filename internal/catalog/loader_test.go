package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakvale/homestead/internal/domain"
)

func validTestConfig() *Config {
	return &Config{
		Version: "test",
		Items: []domain.Item{
			{ID: "rod", Name: "Rod", Type: domain.ItemTypeTool, Rarity: domain.RarityCommon, MaxStackSize: 1},
			{ID: "carp", Name: "Carp", Type: domain.ItemTypeFish, Value: 10, Rarity: domain.RarityCommon, Stackable: true, MaxStackSize: 99},
			{ID: "bread", Name: "Bread", Type: domain.ItemTypeMeal, Value: 20, Rarity: domain.RarityCommon, Stackable: true, MaxStackSize: 99},
		},
		StarterItems: []string{"rod"},
		Activities: []ActivityDetails{
			{ID: domain.ActivityFishing, Name: "Fishing", EnergyCost: 8, TimeCost: 60, PossibleItems: []string{"carp"}, RequiredTool: "rod"},
		},
		Recipes: []Recipe{
			{ID: "bread", Name: "Bread", Category: "meal", Ingredients: [2]string{"carp", "carp"}, ResultID: "bread"},
		},
		Perks: []domain.Perk{
			{ID: "fishing_luck", Name: "Luck", Activity: domain.ActivityFishing, Effect: domain.PerkRareFind, Magnitude: 0.2, LevelRequired: 1},
		},
		Upgrades: []ToolUpgrade{
			{Tier: domain.TierBasic, Name: "Basic"},
		},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	require.NoError(t, NewLoader().Validate(validTestConfig()))
}

func TestValidateRejectsDuplicateItemID(t *testing.T) {
	config := validTestConfig()
	config.Items = append(config.Items, domain.Item{
		ID: "carp", Name: "Carp Again", Type: domain.ItemTypeFish, Rarity: domain.RarityCommon, MaxStackSize: 1,
	})

	err := NewLoader().Validate(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestValidateRejectsUnknownReferences(t *testing.T) {
	t.Run("starter item", func(t *testing.T) {
		config := validTestConfig()
		config.StarterItems = append(config.StarterItems, "ghost")
		assert.ErrorIs(t, NewLoader().Validate(config), ErrUnknownItem)
	})

	t.Run("activity pool item", func(t *testing.T) {
		config := validTestConfig()
		config.Activities[0].PossibleItems = append(config.Activities[0].PossibleItems, "ghost")
		assert.ErrorIs(t, NewLoader().Validate(config), ErrUnknownItem)
	})

	t.Run("recipe result", func(t *testing.T) {
		config := validTestConfig()
		config.Recipes[0].ResultID = "ghost"
		assert.ErrorIs(t, NewLoader().Validate(config), ErrUnknownItem)
	})

	t.Run("upgrade material", func(t *testing.T) {
		config := validTestConfig()
		config.Upgrades[0].Requirement = UpgradeRequirement{ItemID: "ghost", Quantity: 5}
		assert.ErrorIs(t, NewLoader().Validate(config), ErrUnknownItem)
	})
}

func TestValidateRejectsMalformedDefinitions(t *testing.T) {
	t.Run("unknown rarity", func(t *testing.T) {
		config := validTestConfig()
		config.Items[1].Rarity = "mythic"
		assert.ErrorIs(t, NewLoader().Validate(config), ErrInvalidConfig)
	})

	t.Run("stackable without stack size", func(t *testing.T) {
		config := validTestConfig()
		config.Items[1].MaxStackSize = 0
		assert.ErrorIs(t, NewLoader().Validate(config), ErrInvalidConfig)
	})

	t.Run("unknown activity", func(t *testing.T) {
		config := validTestConfig()
		config.Activities[0].ID = "spelunking"
		assert.ErrorIs(t, NewLoader().Validate(config), ErrInvalidConfig)
	})

	t.Run("perk without effect", func(t *testing.T) {
		config := validTestConfig()
		config.Perks[0].Effect = ""
		assert.ErrorIs(t, NewLoader().Validate(config), ErrInvalidConfig)
	})
}

func writeTestCatalogDir(t *testing.T, config *Config) string {
	t.Helper()
	dir := t.TempDir()

	write := func(name string, payload any) {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	write(FileItems, itemsFile{
		Version:      config.Version,
		Description:  config.Description,
		Items:        config.Items,
		StarterItems: config.StarterItems,
	})
	write(FileActivities, activitiesFile{Activities: config.Activities})
	write(FileRecipes, recipesFile{Recipes: config.Recipes})
	write(FilePerks, perksFile{Perks: config.Perks})
	write(FileUpgrades, upgradesFile{Upgrades: config.Upgrades})

	return dir
}

func TestLoadFromDirectory(t *testing.T) {
	want := validTestConfig()
	dir := writeTestCatalogDir(t, want)

	got, err := NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, want.Version, got.Version)
	assert.Equal(t, want.StarterItems, got.StarterItems)
	assert.Len(t, got.Items, len(want.Items))
	assert.Len(t, got.Activities, len(want.Activities))
	assert.Len(t, got.Recipes, len(want.Recipes))
	assert.Len(t, got.Perks, len(want.Perks))
	assert.Len(t, got.Upgrades, len(want.Upgrades))

	require.NoError(t, NewLoader().Validate(got))
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := NewLoader().Load(t.TempDir())
	require.Error(t, err)
}
