package game

import (
	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
)

// NewInitialState builds the state of a fresh session: day 1 of
// spring, starter tools in the first inventory slots, all skills at
// level 1 and every plot untilled.
func NewInitialState(cat *catalog.Catalog) *domain.GameState {
	state := &domain.GameState{
		Day:           1,
		Season:        domain.SeasonSpring,
		Year:          1,
		Time:          domain.DayStart,
		Energy:        domain.DefaultMaxEnergy,
		MaxEnergy:     domain.DefaultMaxEnergy,
		Money:         domain.DefaultStartMoney,
		Weather:       domain.WeatherSunny,
		Inventory:     make([]*domain.InventoryItem, domain.DefaultInventorySize),
		InventorySize: domain.DefaultInventorySize,
		Skills:        make(map[domain.Activity]domain.Skill, len(domain.Activities)),
		Plots:         make([]domain.Plot, domain.DefaultPlotCount),
	}

	for _, activity := range domain.Activities {
		state.Skills[activity] = domain.Skill{Level: 1}
	}

	for i := range state.Plots {
		state.Plots[i] = domain.Plot{ID: i, State: domain.PlotUntilled}
	}

	for _, item := range cat.StarterItems() {
		addToInventory(state, item, 1)
	}

	return state
}
