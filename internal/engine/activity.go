package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
	"github.com/oakvale/homestead/internal/logger"
	"github.com/oakvale/homestead/internal/metrics"
	"github.com/oakvale/homestead/internal/reward"
)

// PerformActivity runs one round of the given activity: checks the
// tool and energy, generates rewards, grants experience and advances
// the clock. The advisory lockout is set for the caller to clear.
func (e *Engine) PerformActivity(ctx context.Context, activityID domain.Activity) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.ActiveActivity != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrActivityInProgress, *e.state.ActiveActivity)
	}

	activity, ok := e.catalog.ActivityByID(activityID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActivityNotFound, activityID)
	}

	tier := domain.TierBasic
	if activity.RequiredTool != "" {
		tool := e.state.FindItem(activity.RequiredTool)
		if tool == nil {
			return nil, fmt.Errorf("%w: %s requires %s", domain.ErrMissingTool, activityID, activity.RequiredTool)
		}
		tier = tool.Tier
	}

	skill := e.state.Skills[activityID]
	perks := e.heldPerks(skill)

	energyCost := e.activityEnergyCost(activity.EnergyCost, activityID, perks)
	if e.state.Energy < energyCost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrNotEnoughEnergy, energyCost, e.state.Energy)
	}

	timeCost := int(math.Floor(float64(activity.TimeCost) * domain.TierSpeedFactor[tier]))
	if timeCost < 1 {
		timeCost = 1
	}
	experience := energyCost * experiencePerEnergy

	result := e.rewards.Generate(activityID, reward.Context{
		Level:    skill.Level,
		Perks:    perks,
		ToolTier: tier,
		Weather:  e.state.Weather,
	})

	active := activityID
	e.dispatch(game.SetActiveActivity{Activity: &active})
	e.dispatch(game.UseEnergy{Amount: energyCost})
	e.dispatch(game.AddExperience{Activity: activityID, Amount: experience})

	for _, item := range result.Items {
		e.dispatch(game.AddItem{Item: item.Item, Quantity: item.Quantity})
		metrics.ItemsGenerated.WithLabelValues(string(activityID), item.ID).Inc()
	}

	e.applyMasteryRefund(perks, tier, energyCost, result.Items)
	e.dispatch(game.AdvanceTime{Minutes: timeCost})
	e.dispatch(game.ShowNotification{Notice: activityNotice(activity.Name, result.Items)})

	log.Info("activity performed",
		"activity", activityID,
		"energyCost", energyCost,
		"timeCost", timeCost,
		"items", len(result.Items))

	return e.state.Clone(), nil
}

// ClearActivity releases the advisory lockout. The caller owns the
// ~2 second display window; this just clears the flag.
func (e *Engine) ClearActivity(ctx context.Context) *domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dispatch(game.SetActiveActivity{Activity: nil})
	return e.state.Clone()
}

func (e *Engine) activityEnergyCost(base int, activityID domain.Activity, perks []domain.Perk) int {
	cost := base
	if perk, ok := hasEffect(perks, domain.PerkEnergyCost); ok {
		cost = int(math.Round(float64(cost) * (1 - perk.Magnitude)))
	}
	if domain.WeatherFavors(e.state.Weather, activityID) {
		cost -= weatherEnergyBonus
		if cost < 1 {
			cost = 1
		}
	}
	return cost
}

// applyMasteryRefund restores half the spent energy when a tungsten
// tool's refund mastery fired on a run holding a common or uncommon
// find.
func (e *Engine) applyMasteryRefund(perks []domain.Perk, tier domain.ToolTier, energyCost int, items []domain.InventoryItem) {
	perk, ok := hasEffect(perks, domain.PerkMasteryRefund)
	if !ok || tier != domain.TierTungsten {
		return
	}

	plain := false
	for _, item := range items {
		if item.Rarity == domain.RarityCommon || item.Rarity == domain.RarityUncommon {
			plain = true
			break
		}
	}
	if !plain {
		return
	}

	refund := int(math.Floor(float64(energyCost) * perk.Magnitude))
	if refund > 0 {
		e.dispatch(game.UseEnergy{Amount: -refund})
	}
}

func activityNotice(activityName string, items []domain.InventoryItem) domain.Notification {
	if len(items) == 0 {
		return domain.Notification{
			Title:    activityName,
			Message:  "You came back empty-handed this time.",
			Severity: domain.SeverityInfo,
		}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return domain.Notification{
		Title:    activityName,
		Message:  "Found: " + strings.Join(names, ", "),
		Severity: domain.SeveritySuccess,
	}
}
