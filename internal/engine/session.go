package engine

import (
	"context"
	"fmt"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
	"github.com/oakvale/homestead/internal/logger"
	"github.com/oakvale/homestead/internal/metrics"
)

// SelectPerk commits a pending level-up perk choice.
func (e *Engine) SelectPerk(ctx context.Context, activity domain.Activity, perkID string) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	skill, ok := e.state.Skills[activity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActivityNotFound, activity)
	}
	if len(skill.AvailablePerks) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoPendingPerk, activity)
	}

	e.dispatch(game.SelectPerk{Activity: activity, PerkID: perkID})
	return e.state.Clone(), nil
}

// EndDay sleeps through to the next morning. The fish whisperer
// mastery grants its daily legendary fish after the rollover.
func (e *Engine) EndDay(ctx context.Context) *domain.GameState {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.dispatch(game.EndDay{})
	metrics.DaysSimulated.Inc()

	if _, ok := hasEffect(e.heldPerks(e.state.Skills[domain.ActivityFishing]), domain.PerkMasteryDailyFish); ok {
		if fish, found := e.catalog.ItemByID(legendaryFishItemID); found {
			e.dispatch(game.AddItem{Item: fish, Quantity: 1})
		}
	}

	log.Info("day ended", "day", e.state.Day, "season", e.state.Season, "weather", e.state.Weather)
	return e.state.Clone()
}

// ClearNotification acknowledges the pending notification.
func (e *Engine) ClearNotification(ctx context.Context) *domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dispatch(game.ClearNotification{})
	return e.state.Clone()
}
