package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
	"github.com/oakvale/homestead/internal/logger"
	"github.com/oakvale/homestead/internal/metrics"
)

// ErrNotUsable marks items with no use-on-click behavior.
var ErrNotUsable = errors.New("item cannot be used")

func (e *Engine) slotItem(slotID int) (*domain.InventoryItem, error) {
	if slotID < 0 || slotID >= len(e.state.Inventory) || e.state.Inventory[slotID] == nil {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrNotInInventory, slotID)
	}
	return e.state.Inventory[slotID], nil
}

// CraftItem combines the items in two inventory slots. On a recipe
// match one of each ingredient is consumed and the result added; the
// recipe is recorded as discovered.
func (e *Engine) CraftItem(ctx context.Context, slotA, slotB int) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	first, err := e.slotItem(slotA)
	if err != nil {
		return nil, err
	}
	second, err := e.slotItem(slotB)
	if err != nil {
		return nil, err
	}
	if slotA == slotB && first.Quantity < 2 {
		return nil, fmt.Errorf("%w: need two of %s", domain.ErrInsufficientItems, first.ID)
	}

	recipe, ok := e.catalog.FindRecipe(first.ID, second.ID)
	if !ok {
		e.dispatch(game.ShowNotification{Notice: domain.Notification{
			Title:    "Crafting",
			Message:  "Those don't combine into anything.",
			Severity: domain.SeverityError,
		}})
		return e.state.Clone(), fmt.Errorf("%w: %s + %s", domain.ErrRecipeNotFound, first.ID, second.ID)
	}

	result, ok := e.catalog.ItemByID(recipe.ResultID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, recipe.ResultID)
	}

	e.dispatch(game.RemoveItem{SlotID: slotA, Quantity: 1})
	e.dispatch(game.RemoveItem{SlotID: slotB, Quantity: 1})
	e.dispatch(game.AddItem{Item: result, Quantity: 1})
	e.dispatch(game.DiscoverRecipe{RecipeID: recipe.ID})
	e.dispatch(game.ShowNotification{Notice: domain.Notification{
		Title:    "Crafting",
		Message:  "Crafted " + result.Name + ".",
		Severity: domain.SeveritySuccess,
	}})

	metrics.ItemsCrafted.WithLabelValues(result.ID).Inc()
	log.Info("item crafted", "recipe", recipe.ID, "result", result.ID)

	return e.state.Clone(), nil
}

// SellItem sells quantity units from a slot at catalog value.
func (e *Engine) SellItem(ctx context.Context, slotID, quantity int) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	held, err := e.slotItem(slotID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > held.Quantity {
		return nil, fmt.Errorf("%w: have %d of %s", domain.ErrInsufficientItems, held.Quantity, held.ID)
	}

	value := held.Value * quantity
	itemID := held.ID

	e.dispatch(game.RemoveItem{SlotID: slotID, Quantity: quantity})
	e.dispatch(game.SellItem{Value: value})

	metrics.ItemsSold.WithLabelValues(itemID).Add(float64(quantity))
	metrics.MoneyEarned.Add(float64(value))

	return e.state.Clone(), nil
}

// UseItem consumes one unit of a usable item: meals apply their
// declared effects, treasure chests open into weighted loot.
func (e *Engine) UseItem(ctx context.Context, slotID int) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	held, err := e.slotItem(slotID)
	if err != nil {
		return nil, err
	}

	switch {
	case held.ID == treasureChestItemID:
		e.dispatch(game.RemoveItem{SlotID: slotID, Quantity: 1})
		e.openTreasureChest()

	case held.Type == domain.ItemTypeMeal && held.Effects != nil:
		effects := *held.Effects
		name := held.Name
		e.dispatch(game.RemoveItem{SlotID: slotID, Quantity: 1})
		e.applyItemEffects(effects)
		e.dispatch(game.ShowNotification{Notice: domain.Notification{
			Title:    "Delicious",
			Message:  "You ate " + name + ".",
			Severity: domain.SeveritySuccess,
		}})

	default:
		return nil, fmt.Errorf("%w: %s", ErrNotUsable, held.ID)
	}

	log.Info("item used", "slot", slotID)
	return e.state.Clone(), nil
}

// applyItemEffects interprets a consumable's declarative effect data:
// energy restore (clamped by the reducer), a flat experience grant to
// every skill, and a targeted skill bonus.
func (e *Engine) applyItemEffects(effects domain.ItemEffects) {
	if effects.Energy != 0 {
		e.dispatch(game.UseEnergy{Amount: -effects.Energy})
	}
	if effects.Experience != 0 {
		for _, activity := range domain.Activities {
			e.dispatch(game.AddExperience{Activity: activity, Amount: effects.Experience})
		}
	}
	if effects.SkillBonus != nil {
		e.dispatch(game.AddExperience{
			Activity: effects.SkillBonus.Skill,
			Amount:   effects.SkillBonus.Amount,
		})
	}
}

// EquipItem moves equipment from an inventory slot onto the named
// equipment slot.
func (e *Engine) EquipItem(ctx context.Context, slotID int, slot domain.EquipSlot) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	held, err := e.slotItem(slotID)
	if err != nil {
		return nil, err
	}
	if held.Type != domain.ItemTypeEquipment {
		return nil, fmt.Errorf("%w: %s is not equipment", domain.ErrItemNotFound, held.ID)
	}
	if !slot.Valid() || held.EquipSlot != slot {
		return nil, fmt.Errorf("%w: %s does not fit slot %s", domain.ErrItemNotFound, held.ID, slot)
	}

	e.dispatch(game.EquipItem{Item: *held, Slot: slot})
	return e.state.Clone(), nil
}

// UnequipItem returns an equipped item to the inventory.
func (e *Engine) UnequipItem(ctx context.Context, slot domain.EquipSlot) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Equipment.Get(slot) == nil {
		return nil, fmt.Errorf("%w: nothing equipped in %s", domain.ErrItemNotFound, slot)
	}

	e.dispatch(game.UnequipItem{Slot: slot})
	return e.state.Clone(), nil
}

// UpgradeTool advances a tool to the next tier, consuming the required
// materials from the inventory.
func (e *Engine) UpgradeTool(ctx context.Context, toolID string) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	tool := e.state.FindItem(toolID)
	if tool == nil || tool.Type != domain.ItemTypeTool {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, toolID)
	}

	nextTier := domain.NextToolTier(tool.Tier)
	if nextTier == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMaxTier, tool.Name)
	}

	upgrade, ok := e.catalog.UpgradeForTier(nextTier)
	if !ok {
		return nil, fmt.Errorf("%w: no upgrade for tier %s", domain.ErrItemNotFound, nextTier)
	}

	if err := e.consumeMaterials(upgrade.Requirement.ItemID, upgrade.Requirement.Quantity); err != nil {
		return nil, err
	}
	e.dispatch(game.UpgradeTool{ToolID: toolID, NewTier: nextTier})
	e.dispatch(game.ShowNotification{Notice: domain.Notification{
		Title:    "Tool Upgraded",
		Message:  "Upgraded to " + upgrade.Name + " tier.",
		Severity: domain.SeveritySuccess,
	}})

	log.Info("tool upgraded", "tool", toolID, "tier", nextTier)
	return e.state.Clone(), nil
}

// consumeMaterials removes the required quantity of one item id across
// however many stacks hold it, index-ascending.
func (e *Engine) consumeMaterials(itemID string, quantity int) error {
	if itemID == "" || quantity <= 0 {
		return nil
	}

	available := 0
	for _, held := range e.state.Inventory {
		if held != nil && held.ID == itemID {
			available += held.Quantity
		}
	}
	if available < quantity {
		return fmt.Errorf("%w: need %d %s, have %d", domain.ErrInsufficientItems, quantity, itemID, available)
	}

	remaining := quantity
	for slot := 0; slot < len(e.state.Inventory) && remaining > 0; slot++ {
		held := e.state.Inventory[slot]
		if held == nil || held.ID != itemID {
			continue
		}
		take := held.Quantity
		if take > remaining {
			take = remaining
		}
		e.dispatch(game.RemoveItem{SlotID: slot, Quantity: take})
		remaining -= take
	}
	return nil
}
