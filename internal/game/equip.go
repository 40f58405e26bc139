package game

import "github.com/oakvale/homestead/internal/domain"

// equipItem places the item into the named equipment slot. The source
// inventory slot is vacated first, then any previously equipped item
// moves to the first empty inventory slot; with that ordering the
// vacated source slot is available for the displaced item, so a swap
// on a full inventory still succeeds.
func equipItem(state *domain.GameState, item domain.InventoryItem, slot domain.EquipSlot) {
	if !slot.Valid() {
		return
	}
	if item.SlotID < 0 || item.SlotID >= len(state.Inventory) {
		return
	}
	held := state.Inventory[item.SlotID]
	if held == nil || held.ID != item.ID {
		return
	}

	state.Inventory[item.SlotID] = nil

	if previous := state.Equipment.Get(slot); previous != nil {
		if empty := state.FirstEmptySlot(); empty >= 0 {
			previous.SlotID = empty
			state.Inventory[empty] = previous
		}
	}

	equipped := *held
	equipped.SlotID = domain.UnplacedSlot
	state.Equipment.Set(slot, &equipped)
}

// unequipItem returns the equipped item to the first empty inventory
// slot. With a full inventory it refuses rather than drop the item.
func unequipItem(state *domain.GameState, slot domain.EquipSlot) {
	equipped := state.Equipment.Get(slot)
	if equipped == nil {
		return
	}

	empty := state.FirstEmptySlot()
	if empty < 0 {
		setError(state, "Inventory Full", "No room to unequip "+equipped.Name+".")
		return
	}

	returned := *equipped
	returned.SlotID = empty
	state.Inventory[empty] = &returned
	state.Equipment.Set(slot, nil)
}
