package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed configs/*.json
var defaultConfigs embed.FS

func readEmbedded(name string, dest any) error {
	data, err := defaultConfigs.ReadFile("configs/" + name)
	if err != nil {
		return fmt.Errorf("failed to read embedded catalog %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse embedded catalog %s: %w", name, err)
	}
	return nil
}

// Default returns the catalog built from the configuration embedded in
// the binary, so a fresh install needs no external data files.
func Default() (*Catalog, error) {
	var (
		items      itemsFile
		activities activitiesFile
		recipes    recipesFile
		perks      perksFile
		upgrades   upgradesFile
	)

	if err := readEmbedded(FileItems, &items); err != nil {
		return nil, err
	}
	if err := readEmbedded(FileActivities, &activities); err != nil {
		return nil, err
	}
	if err := readEmbedded(FileRecipes, &recipes); err != nil {
		return nil, err
	}
	if err := readEmbedded(FilePerks, &perks); err != nil {
		return nil, err
	}
	if err := readEmbedded(FileUpgrades, &upgrades); err != nil {
		return nil, err
	}

	config := &Config{
		Version:      items.Version,
		Description:  items.Description,
		Items:        items.Items,
		StarterItems: items.StarterItems,
		Activities:   activities.Activities,
		Recipes:      recipes.Recipes,
		Perks:        perks.Perks,
		Upgrades:     upgrades.Upgrades,
	}

	if err := NewLoader().Validate(config); err != nil {
		return nil, fmt.Errorf("embedded catalog is invalid: %w", err)
	}

	return New(config), nil
}

// MustDefault is Default for program startup and tests, panicking on a
// broken embedded catalog.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
