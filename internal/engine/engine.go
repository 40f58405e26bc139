package engine

import (
	"context"
	"math/rand"
	"sync"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
	"github.com/oakvale/homestead/internal/metrics"
	"github.com/oakvale/homestead/internal/reward"
	"github.com/oakvale/homestead/internal/storage"
)

// Service is the session-level game API: every operation a player can
// take, plus persistence. All methods are safe for concurrent use;
// reductions are serialized so no action interleaves mid-reduction.
type Service interface {
	State() *domain.GameState

	PerformActivity(ctx context.Context, activity domain.Activity) (*domain.GameState, error)
	ClearActivity(ctx context.Context) *domain.GameState

	TillPlot(ctx context.Context, plotID int) (*domain.GameState, error)
	WaterPlot(ctx context.Context, plotID int) (*domain.GameState, error)
	PlantSeed(ctx context.Context, plotID, slotID int) (*domain.GameState, error)
	HarvestPlot(ctx context.Context, plotID int) (*domain.GameState, error)
	ClearDeadPlot(ctx context.Context, plotID int) (*domain.GameState, error)

	CraftItem(ctx context.Context, slotA, slotB int) (*domain.GameState, error)
	SellItem(ctx context.Context, slotID, quantity int) (*domain.GameState, error)
	UseItem(ctx context.Context, slotID int) (*domain.GameState, error)
	EquipItem(ctx context.Context, slotID int, slot domain.EquipSlot) (*domain.GameState, error)
	UnequipItem(ctx context.Context, slot domain.EquipSlot) (*domain.GameState, error)
	UpgradeTool(ctx context.Context, toolID string) (*domain.GameState, error)

	SelectPerk(ctx context.Context, activity domain.Activity, perkID string) (*domain.GameState, error)
	EndDay(ctx context.Context) *domain.GameState
	ClearNotification(ctx context.Context) *domain.GameState

	Save(ctx context.Context) (*domain.GameState, error)
	Load(ctx context.Context) (*domain.GameState, error)
}

// Engine owns the only mutable copy of a session's state and threads
// every change through the reducer.
type Engine struct {
	mu      sync.Mutex
	state   *domain.GameState
	reducer *game.Reducer
	rewards *reward.Generator
	catalog *catalog.Catalog
	store   storage.Store
	slot    string
	rng     *rand.Rand
}

var _ Service = (*Engine)(nil)

// New creates an engine for a fresh session. The reducer and reward
// generator share one random stream seeded from seed.
func New(cat *catalog.Catalog, store storage.Store, slot string, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // game randomness, not security critical
	return &Engine{
		state:   game.NewInitialState(cat),
		reducer: game.NewReducerWithRand(cat, rng),
		rewards: reward.NewGeneratorWithRand(cat, rng),
		catalog: cat,
		store:   store,
		slot:    slot,
		rng:     rng,
	}
}

// State returns a deep copy of the current state.
func (e *Engine) State() *domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// dispatch applies one action under the held lock.
func (e *Engine) dispatch(action game.Action) {
	e.state = e.reducer.Reduce(e.state, action)
	metrics.ActionsTotal.WithLabelValues(actionName(action)).Inc()
}

func actionName(action game.Action) string {
	switch action.(type) {
	case game.UseEnergy:
		return "use_energy"
	case game.AdvanceTime:
		return "advance_time"
	case game.AddExperience:
		return "add_experience"
	case game.SelectPerk:
		return "select_perk"
	case game.AddItem:
		return "add_item"
	case game.RemoveItem:
		return "remove_item"
	case game.SellItem:
		return "sell_item"
	case game.EquipItem:
		return "equip_item"
	case game.UnequipItem:
		return "unequip_item"
	case game.TillPlot:
		return "till_plot"
	case game.WaterPlot:
		return "water_plot"
	case game.PlantSeed:
		return "plant_seed"
	case game.HarvestPlot:
		return "harvest_plot"
	case game.ClearDeadPlot:
		return "clear_dead_plot"
	case game.UpgradeTool:
		return "upgrade_tool"
	case game.SetActiveActivity:
		return "set_active_activity"
	case game.DiscoverRecipe:
		return "discover_recipe"
	case game.DiscoverItem:
		return "discover_item"
	case game.EndDay:
		return "end_day"
	case game.ShowNotification:
		return "show_notification"
	case game.ClearNotification:
		return "clear_notification"
	}
	return "unknown"
}

// heldPerks resolves a skill's perk ids to their catalog definitions.
func (e *Engine) heldPerks(skill domain.Skill) []domain.Perk {
	perks := make([]domain.Perk, 0, len(skill.Perks))
	for _, id := range skill.Perks {
		if perk, ok := e.catalog.PerkByID(id); ok {
			perks = append(perks, perk)
		}
	}
	return perks
}

func hasEffect(perks []domain.Perk, effect domain.PerkEffect) (domain.Perk, bool) {
	for _, perk := range perks {
		if perk.Effect == effect {
			return perk, true
		}
	}
	return domain.Perk{}, false
}
