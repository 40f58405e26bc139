package domain

// SkillBonus grants experience toward a single skill when a consumable
// is used.
type SkillBonus struct {
	Skill  Activity `json:"skill"`
	Amount int      `json:"amount"`
}

// ItemEffects is the declarative effect data carried by consumables.
// Effects are interpreted by the engine when the item is used; nothing
// executable lives in state.
type ItemEffects struct {
	Energy     int         `json:"energy,omitempty"`
	Experience int         `json:"experience,omitempty"`
	SkillBonus *SkillBonus `json:"skillBonus,omitempty"`
}

// EquipmentStats are the passive stat bonuses on wearable equipment.
type EquipmentStats struct {
	Farming  int `json:"farming,omitempty"`
	Fishing  int `json:"fishing,omitempty"`
	Mining   int `json:"mining,omitempty"`
	Foraging int `json:"foraging,omitempty"`
	Cooking  int `json:"cooking,omitempty"`
	Energy   int `json:"energy,omitempty"`
	Speed    int `json:"speed,omitempty"`
	Luck     int `json:"luck,omitempty"`
}

// Item is a static catalog definition. For tools the BaseName field is
// the immutable un-tiered name ("Pickaxe"); Name is the derived display
// name ("Copper Pickaxe") and is rewritten on tier upgrades without
// ever parsing it back.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BaseName     string          `json:"baseName,omitempty"`
	Description  string          `json:"description,omitempty"`
	Type         ItemType        `json:"type"`
	Value        int             `json:"value"`
	Rarity       Rarity          `json:"rarity"`
	Stackable    bool            `json:"stackable"`
	MaxStackSize int             `json:"maxStackSize"`
	GrowthDays   int             `json:"growthDays,omitempty"`
	Tier         ToolTier        `json:"tier,omitempty"`
	EquipSlot    EquipSlot       `json:"equipmentSlot,omitempty"`
	Stats        *EquipmentStats `json:"stats,omitempty"`
	Effects      *ItemEffects    `json:"effects,omitempty"`
}

// UnplacedSlot is the SlotID sentinel for an item not yet placed in the
// inventory; the reducer resolves it on insertion.
const UnplacedSlot = -1

// InventoryItem is an Item instance held in the inventory, with a
// quantity and the index of the slot it occupies.
type InventoryItem struct {
	Item
	Quantity int `json:"quantity"`
	SlotID   int `json:"slotId"`
}

// NewInventoryItem wraps a catalog item for insertion.
func NewInventoryItem(item Item, quantity int) InventoryItem {
	return InventoryItem{Item: item, Quantity: quantity, SlotID: UnplacedSlot}
}
