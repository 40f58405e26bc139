package game

import "github.com/oakvale/homestead/internal/domain"

// Action is the closed mutation vocabulary of the game core. Every
// state change flows through the reducer as one of the variants below;
// there is no other write path.
type Action interface {
	isAction()
}

// UseEnergy spends (or with a negative amount restores) energy. The
// result is always clamped to [0, maxEnergy].
type UseEnergy struct {
	Amount int
}

// AdvanceTime moves the clock forward. Crossing the end-of-day
// boundary triggers the full day rollover.
type AdvanceTime struct {
	Minutes int
}

// AddExperience grants experience to one skill. Level is recomputed
// from cumulative experience, never incremented.
type AddExperience struct {
	Activity domain.Activity
	Amount   int
}

// SelectPerk commits a pending level-up perk choice.
type SelectPerk struct {
	Activity domain.Activity
	PerkID   string
}

// AddItem inserts quantity units of a catalog item into the
// inventory, first-fit. Oversupply beyond capacity is silently
// dropped; the item id is recorded as discovered either way.
type AddItem struct {
	Item     domain.Item
	Quantity int
}

// RemoveItem decrements the stack in a slot, clearing it at zero.
type RemoveItem struct {
	SlotID   int
	Quantity int
}

// SellItem credits money. The caller computes the value before
// dispatch.
type SellItem struct {
	Value int
}

// EquipItem moves an inventory item into an equipment slot. A
// previously equipped item goes to the first empty inventory slot.
type EquipItem struct {
	Item domain.InventoryItem
	Slot domain.EquipSlot
}

// UnequipItem returns an equipped item to the inventory. With no empty
// slot it refuses and leaves the state unchanged apart from an error
// notification.
type UnequipItem struct {
	Slot domain.EquipSlot
}

// TillPlot transitions an untilled plot to tilled.
type TillPlot struct {
	PlotID int
}

// WaterPlot raises a planted plot's water level. It never advances
// growth; growth happens only at day rollover.
type WaterPlot struct {
	PlotID int
}

// PlantSeed sows a tilled plot.
type PlantSeed struct {
	PlotID       int
	SeedID       string
	DaysToMature int
	PlantedDay   int
}

// HarvestPlot reaps a mature plot, yielding crop items by the harvest
// rarity roll and returning the plot to untilled.
type HarvestPlot struct {
	PlotID int
}

// ClearDeadPlot recycles a dead plot back to untilled.
type ClearDeadPlot struct {
	PlotID int
}

// UpgradeTool replaces a tool's tier and rewrites its display name
// from the stored base name.
type UpgradeTool struct {
	ToolID  string
	NewTier domain.ToolTier
}

// SetActiveActivity sets or clears the UI lockout flag. It has no
// timing effect of its own.
type SetActiveActivity struct {
	Activity *domain.Activity
}

// DiscoverRecipe records a recipe id. Idempotent.
type DiscoverRecipe struct {
	RecipeID string
}

// DiscoverItem records an item id. Idempotent.
type DiscoverItem struct {
	ItemID string
}

// EndDay forces the day rollover regardless of the clock.
type EndDay struct{}

// ShowNotification replaces the pending notification.
type ShowNotification struct {
	Notice domain.Notification
}

// ClearNotification acknowledges and removes the pending notification.
type ClearNotification struct{}

func (UseEnergy) isAction()         {}
func (AdvanceTime) isAction()       {}
func (AddExperience) isAction()     {}
func (SelectPerk) isAction()        {}
func (AddItem) isAction()           {}
func (RemoveItem) isAction()        {}
func (SellItem) isAction()          {}
func (EquipItem) isAction()         {}
func (UnequipItem) isAction()       {}
func (TillPlot) isAction()          {}
func (WaterPlot) isAction()         {}
func (PlantSeed) isAction()         {}
func (HarvestPlot) isAction()       {}
func (ClearDeadPlot) isAction()     {}
func (UpgradeTool) isAction()       {}
func (SetActiveActivity) isAction() {}
func (DiscoverRecipe) isAction()    {}
func (DiscoverItem) isAction()      {}
func (EndDay) isAction()            {}
func (ShowNotification) isAction()  {}
func (ClearNotification) isAction() {}
