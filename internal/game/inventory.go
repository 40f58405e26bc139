package game

import "github.com/oakvale/homestead/internal/domain"

// addToInventory inserts quantity units of item first-fit: existing
// stacks of the same id are topped up in index order, then remaining
// units open new stacks at the first empty indices. Units beyond
// capacity are dropped silently. Discovery is recorded even when
// everything was dropped.
func addToInventory(state *domain.GameState, item domain.Item, quantity int) {
	state.DiscoveredItems = appendUnique(state.DiscoveredItems, item.ID)

	if quantity <= 0 {
		return
	}

	remaining := quantity

	if item.Stackable {
		for _, held := range state.Inventory {
			if remaining == 0 {
				break
			}
			if held == nil || held.ID != item.ID || held.Quantity >= held.MaxStackSize {
				continue
			}
			space := held.MaxStackSize - held.Quantity
			take := min(space, remaining)
			held.Quantity += take
			remaining -= take
		}
	}

	for remaining > 0 {
		slot := state.FirstEmptySlot()
		if slot < 0 {
			return
		}
		stack := remaining
		if item.Stackable {
			stack = min(stack, item.MaxStackSize)
		} else {
			stack = 1
		}
		placed := domain.NewInventoryItem(item, stack)
		placed.SlotID = slot
		state.Inventory[slot] = &placed
		remaining -= stack
	}
}

// removeFromSlot decrements the stack in slotID, clearing the slot at
// zero. An empty or out-of-range slot is a no-op.
func removeFromSlot(state *domain.GameState, slotID, quantity int) {
	if slotID < 0 || slotID >= len(state.Inventory) {
		return
	}
	held := state.Inventory[slotID]
	if held == nil {
		return
	}
	held.Quantity -= quantity
	if held.Quantity <= 0 {
		state.Inventory[slotID] = nil
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
