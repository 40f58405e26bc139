package engine

import (
	"strings"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
)

// treasurePool is the weighted loot table for treasure chests.
var treasurePool = []struct {
	ID     string
	Weight int
}{
	{"gold_ore", 40},
	{"diamond", 20},
	{"ruby", 25},
	{"emerald", 25},
	{"prismatic_shard", 5},
	{"ancient_doll", 30},
	{"golden_pumpkin", 15},
	{"pearl", 35},
}

// openTreasureChest rolls treasureLootCount weighted draws and adds
// each to the inventory. Called with the engine lock held.
func (e *Engine) openTreasureChest() {
	totalWeight := 0
	for _, entry := range treasurePool {
		totalWeight += entry.Weight
	}

	var names []string
	for i := 0; i < treasureLootCount; i++ {
		roll := e.rng.Intn(totalWeight)
		selected := treasurePool[0]
		for _, entry := range treasurePool {
			roll -= entry.Weight
			if roll < 0 {
				selected = entry
				break
			}
		}

		item, ok := e.catalog.ItemByID(selected.ID)
		if !ok {
			continue
		}
		e.dispatch(game.AddItem{Item: item, Quantity: 1})
		names = append(names, item.Name)
	}

	message := "The chest was empty."
	severity := domain.SeverityInfo
	if len(names) > 0 {
		message = "The chest held: " + strings.Join(names, ", ")
		severity = domain.SeveritySuccess
	}
	e.dispatch(game.ShowNotification{Notice: domain.Notification{
		Title:    "Treasure Chest",
		Message:  message,
		Severity: severity,
	}})
}
