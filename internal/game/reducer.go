package game

import (
	"math/rand"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
)

// Reducer applies actions to game state. Reduce is total: unknown
// actions and invalid references leave the state unchanged, known but
// refused actions add only an error notification. The input state is
// never mutated; every reduction works on a deep clone.
type Reducer struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewReducer creates a Reducer with its own seeded random stream.
func NewReducer(cat *catalog.Catalog, seed int64) *Reducer {
	return &Reducer{
		catalog: cat,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // game randomness, not security critical
	}
}

// NewReducerWithRand creates a Reducer sharing an existing random
// stream with the rest of a session.
func NewReducerWithRand(cat *catalog.Catalog, rng *rand.Rand) *Reducer {
	return &Reducer{catalog: cat, rng: rng}
}

// Reduce returns the state after applying one action.
func (r *Reducer) Reduce(state *domain.GameState, action Action) *domain.GameState {
	next := state.Clone()

	switch a := action.(type) {
	case UseEnergy:
		next.Energy = clamp(next.Energy-a.Amount, 0, next.MaxEnergy)

	case AdvanceTime:
		next.Time += a.Minutes
		if next.Time >= domain.DayEnd {
			r.rollover(next)
		}

	case AddExperience:
		r.addExperience(next, a.Activity, a.Amount)

	case SelectPerk:
		r.selectPerk(next, a.Activity, a.PerkID)

	case AddItem:
		addToInventory(next, a.Item, a.Quantity)

	case RemoveItem:
		removeFromSlot(next, a.SlotID, a.Quantity)

	case SellItem:
		next.Money += a.Value

	case EquipItem:
		equipItem(next, a.Item, a.Slot)

	case UnequipItem:
		unequipItem(next, a.Slot)

	case TillPlot:
		tillPlot(next, a.PlotID)

	case WaterPlot:
		waterPlot(next, a.PlotID)

	case PlantSeed:
		plantSeed(next, a)

	case HarvestPlot:
		r.harvestPlot(next, a.PlotID)

	case ClearDeadPlot:
		clearDeadPlot(next, a.PlotID)

	case UpgradeTool:
		r.upgradeTool(next, a.ToolID, a.NewTier)

	case SetActiveActivity:
		next.ActiveActivity = a.Activity

	case DiscoverRecipe:
		next.DiscoveredRecipes = appendUnique(next.DiscoveredRecipes, a.RecipeID)

	case DiscoverItem:
		next.DiscoveredItems = appendUnique(next.DiscoveredItems, a.ItemID)

	case EndDay:
		r.rollover(next)

	case ShowNotification:
		notice := a.Notice
		next.Notice = &notice

	case ClearNotification:
		next.Notice = nil
	}

	return next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

func setError(state *domain.GameState, title, message string) {
	state.Notice = &domain.Notification{
		Title:    title,
		Message:  message,
		Severity: domain.SeverityError,
	}
}
