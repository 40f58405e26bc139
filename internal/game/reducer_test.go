package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/domain"
)

func newTestReducer(t *testing.T) (*Reducer, *domain.GameState) {
	t.Helper()
	cat := catalog.MustDefault()
	return NewReducer(cat, 1), NewInitialState(cat)
}

func mustItem(t *testing.T, id string) domain.Item {
	t.Helper()
	item, ok := catalog.MustDefault().ItemByID(id)
	require.True(t, ok, "catalog item %s", id)
	return item
}

func TestReduceNeverMutatesInput(t *testing.T) {
	r, state := newTestReducer(t)
	before := state.Clone()

	r.Reduce(state, UseEnergy{Amount: 30})
	r.Reduce(state, AddItem{Item: mustItem(t, "parsnip"), Quantity: 5})
	r.Reduce(state, EndDay{})

	assert.Equal(t, before, state)
}

func TestEnergyClamp(t *testing.T) {
	r, state := newTestReducer(t)

	for _, amount := range []int{50, 9999, -25, -9999, 10, 0} {
		state = r.Reduce(state, UseEnergy{Amount: amount})
		assert.GreaterOrEqual(t, state.Energy, 0)
		assert.LessOrEqual(t, state.Energy, state.MaxEnergy)
	}
}

func TestNegativeEnergyAmountRestores(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, UseEnergy{Amount: 40})
	require.Equal(t, 60, state.Energy)

	state = r.Reduce(state, UseEnergy{Amount: -15})
	assert.Equal(t, 75, state.Energy)
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	r, state := newTestReducer(t)
	before := state.Clone()

	state = r.Reduce(state, AddItem{Item: mustItem(t, "coal"), Quantity: 7})
	slot := -1
	for i, held := range state.Inventory {
		if held != nil && held.ID == "coal" {
			slot = i
			break
		}
	}
	require.GreaterOrEqual(t, slot, 0)

	state = r.Reduce(state, RemoveItem{SlotID: slot, Quantity: 7})
	assert.Equal(t, before.Inventory, state.Inventory)
}

func TestStackingOverflowSplits(t *testing.T) {
	cat := catalog.MustDefault()
	r := NewReducer(cat, 1)
	state := NewInitialState(cat)
	coal := mustItem(t, "coal")

	state = r.Reduce(state, AddItem{Item: coal, Quantity: coal.MaxStackSize + 4})

	var stacks []int
	for _, held := range state.Inventory {
		if held != nil && held.ID == "coal" {
			stacks = append(stacks, held.Quantity)
		}
	}
	require.Len(t, stacks, 2)
	assert.Equal(t, []int{coal.MaxStackSize, 4}, stacks)
}

func TestAddTopsUpExistingStackFirst(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddItem{Item: mustItem(t, "stone"), Quantity: 10})
	state = r.Reduce(state, AddItem{Item: mustItem(t, "stone"), Quantity: 5})

	var stacks int
	for _, held := range state.Inventory {
		if held != nil && held.ID == "stone" {
			stacks++
			assert.Equal(t, 15, held.Quantity)
		}
	}
	assert.Equal(t, 1, stacks)
}

func TestFullInventoryDropStillDiscovers(t *testing.T) {
	r, state := newTestReducer(t)

	// Fill every free slot with non-stackable distinct equipment.
	filler := mustItem(t, "iron_helmet")
	for i := range state.Inventory {
		if state.Inventory[i] == nil {
			placed := domain.NewInventoryItem(filler, 1)
			placed.SlotID = i
			state.Inventory[i] = &placed
		}
	}
	before := state.Clone()

	state = r.Reduce(state, AddItem{Item: mustItem(t, "pearl"), Quantity: 1})

	assert.Equal(t, before.Inventory, state.Inventory, "item is dropped, inventory unchanged")
	assert.True(t, state.HasDiscoveredItem("pearl"), "discovery recorded even on drop")
}

func TestSellItemCreditsMoney(t *testing.T) {
	r, state := newTestReducer(t)
	startMoney := state.Money

	state = r.Reduce(state, SellItem{Value: 120})
	assert.Equal(t, startMoney+120, state.Money)
}

func TestUnknownActivityExperienceIsNoOp(t *testing.T) {
	r, state := newTestReducer(t)
	before := state.Clone()

	state = r.Reduce(state, AddExperience{Activity: "spelunking", Amount: 100})
	assert.Equal(t, before, state)
}

func TestDiscoveryIsIdempotent(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, DiscoverRecipe{RecipeID: "dough"})
	state = r.Reduce(state, DiscoverRecipe{RecipeID: "dough"})
	assert.Equal(t, []string{"dough"}, state.DiscoveredRecipes)

	state = r.Reduce(state, DiscoverItem{ItemID: "ruby"})
	state = r.Reduce(state, DiscoverItem{ItemID: "ruby"})
	assert.Equal(t, 1, countOf(state.DiscoveredItems, "ruby"))
}

func countOf(list []string, id string) int {
	n := 0
	for _, entry := range list {
		if entry == id {
			n++
		}
	}
	return n
}

func TestEquipUnequipRoundTrip(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddItem{Item: mustItem(t, "iron_helmet"), Quantity: 1})
	held := state.FindItem("iron_helmet")
	require.NotNil(t, held)

	state = r.Reduce(state, EquipItem{Item: *held, Slot: domain.SlotHead})
	require.Nil(t, state.FindItem("iron_helmet"))
	equipped := state.Equipment.Get(domain.SlotHead)
	require.NotNil(t, equipped)
	assert.Equal(t, "iron_helmet", equipped.ID)

	state = r.Reduce(state, UnequipItem{Slot: domain.SlotHead})
	assert.Nil(t, state.Equipment.Get(domain.SlotHead))
	returned := state.FindItem("iron_helmet")
	require.NotNil(t, returned)
	assert.Equal(t, held.Item, returned.Item)
}

func TestEquipSwapsPreviousItemBack(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddItem{Item: mustItem(t, "wooden_helmet"), Quantity: 1})
	state = r.Reduce(state, AddItem{Item: mustItem(t, "iron_helmet"), Quantity: 1})

	first := state.FindItem("wooden_helmet")
	require.NotNil(t, first)
	state = r.Reduce(state, EquipItem{Item: *first, Slot: domain.SlotHead})

	second := state.FindItem("iron_helmet")
	require.NotNil(t, second)
	state = r.Reduce(state, EquipItem{Item: *second, Slot: domain.SlotHead})

	equipped := state.Equipment.Get(domain.SlotHead)
	require.NotNil(t, equipped)
	assert.Equal(t, "iron_helmet", equipped.ID)
	assert.NotNil(t, state.FindItem("wooden_helmet"), "displaced helmet returned to inventory")
}

func TestUnequipRefusesOnFullInventory(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, AddItem{Item: mustItem(t, "iron_helmet"), Quantity: 1})
	held := state.FindItem("iron_helmet")
	require.NotNil(t, held)
	state = r.Reduce(state, EquipItem{Item: *held, Slot: domain.SlotHead})

	filler := mustItem(t, "wooden_boots")
	for i := range state.Inventory {
		if state.Inventory[i] == nil {
			placed := domain.NewInventoryItem(filler, 1)
			placed.SlotID = i
			state.Inventory[i] = &placed
		}
	}

	state = r.Reduce(state, UnequipItem{Slot: domain.SlotHead})

	equipped := state.Equipment.Get(domain.SlotHead)
	require.NotNil(t, equipped, "item is not destroyed on refusal")
	assert.Equal(t, "iron_helmet", equipped.ID)
	require.NotNil(t, state.Notice)
	assert.Equal(t, domain.SeverityError, state.Notice.Severity)
}

func TestUpgradeToolRewritesNameFromBaseName(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, UpgradeTool{ToolID: "pickaxe", NewTier: domain.TierCopper})
	pickaxe := state.FindItem("pickaxe")
	require.NotNil(t, pickaxe)
	assert.Equal(t, domain.TierCopper, pickaxe.Tier)
	assert.Equal(t, "Copper Pickaxe", pickaxe.Name)

	state = r.Reduce(state, UpgradeTool{ToolID: "pickaxe", NewTier: domain.TierTungsten})
	pickaxe = state.FindItem("pickaxe")
	assert.Equal(t, "Tungsten Pickaxe", pickaxe.Name)
	assert.Equal(t, "Pickaxe", pickaxe.BaseName)
}

func TestUnknownActionReturnsStateUnchanged(t *testing.T) {
	r, state := newTestReducer(t)
	before := state.Clone()

	state = r.Reduce(state, unknownAction{})
	assert.Equal(t, before, state)
}

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestNotificationLifecycle(t *testing.T) {
	r, state := newTestReducer(t)

	state = r.Reduce(state, ShowNotification{Notice: domain.Notification{
		Title: "Saved", Message: "Game saved.", Severity: domain.SeveritySuccess,
	}})
	require.NotNil(t, state.Notice)
	assert.Equal(t, "Saved", state.Notice.Title)

	state = r.Reduce(state, ClearNotification{})
	assert.Nil(t, state.Notice)
}
