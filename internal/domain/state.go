package domain

// Default session configuration. InventorySize and PlotCount are fixed
// for the life of a session.
const (
	DefaultInventorySize = 16
	DefaultPlotCount     = 12
	DefaultMaxEnergy     = 100
	DefaultStartMoney    = 500
)

// Skill tracks one activity's progression. Level is always a pure
// function of Experience. AvailablePerks holds the two frozen perk ids
// of a pending level-up choice and is cleared when the choice commits.
type Skill struct {
	Level          int      `json:"level"`
	Experience     int      `json:"experience"`
	Perks          []string `json:"perks"`
	AvailablePerks []string `json:"availablePerks,omitempty"`
}

// HasPerk reports whether the skill holds the given perk id.
func (s Skill) HasPerk(perkID string) bool {
	for _, id := range s.Perks {
		if id == perkID {
			return true
		}
	}
	return false
}

// Plot is a single farmable ground unit. SeedID, PlantedDay and
// DaysToMature are meaningful only in the seeded/growing/mature states
// and are cleared everywhere else.
type Plot struct {
	ID           int       `json:"id"`
	State        PlotState `json:"state"`
	SeedID       string    `json:"seedId,omitempty"`
	PlantedDay   int       `json:"plantedDay,omitempty"`
	DaysToMature int       `json:"daysToMature,omitempty"`
	WaterLevel   int       `json:"waterLevel"`
	Fertilized   bool      `json:"fertilized"`
}

// ClearCrop resets the seed metadata, returning the plot to untilled.
func (p *Plot) ClearCrop() {
	p.State = PlotUntilled
	p.SeedID = ""
	p.PlantedDay = 0
	p.DaysToMature = 0
	p.WaterLevel = 0
	p.Fertilized = false
}

// Equipment is the nine fixed wearable slots. An item referenced here
// is never simultaneously present in the inventory.
type Equipment struct {
	Head      *InventoryItem `json:"head"`
	Torso     *InventoryItem `json:"torso"`
	Belt      *InventoryItem `json:"belt"`
	Legs      *InventoryItem `json:"legs"`
	Boots     *InventoryItem `json:"boots"`
	Hands     *InventoryItem `json:"hands"`
	RingLeft  *InventoryItem `json:"ring_left"`
	RingRight *InventoryItem `json:"ring_right"`
	Amulet    *InventoryItem `json:"amulet"`
}

// Get returns the item equipped in the named slot, or nil.
func (e *Equipment) Get(slot EquipSlot) *InventoryItem {
	if p := e.slotRef(slot); p != nil {
		return *p
	}
	return nil
}

// Set places item (possibly nil) into the named slot. Unknown slot
// names are ignored.
func (e *Equipment) Set(slot EquipSlot, item *InventoryItem) {
	if p := e.slotRef(slot); p != nil {
		*p = item
	}
}

func (e *Equipment) slotRef(slot EquipSlot) **InventoryItem {
	switch slot {
	case SlotHead:
		return &e.Head
	case SlotTorso:
		return &e.Torso
	case SlotBelt:
		return &e.Belt
	case SlotLegs:
		return &e.Legs
	case SlotBoots:
		return &e.Boots
	case SlotHands:
		return &e.Hands
	case SlotRingLeft:
		return &e.RingLeft
	case SlotRingRight:
		return &e.RingRight
	case SlotAmulet:
		return &e.Amulet
	}
	return nil
}

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is the single pending user-facing message. New
// notifications overwrite, never queue.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}

// GameState is the single authoritative aggregate. Only the reducer
// produces new instances; everything else works on read-only references
// or clones. The whole tree is plain serializable data.
type GameState struct {
	Day       int     `json:"day"`
	Season    Season  `json:"season"`
	Year      int     `json:"year"`
	Time      int     `json:"time"`
	Energy    int     `json:"energy"`
	MaxEnergy int     `json:"maxEnergy"`
	Money     int     `json:"money"`
	Weather   Weather `json:"weather"`

	Inventory     []*InventoryItem `json:"inventory"`
	InventorySize int              `json:"inventorySize"`

	ActiveActivity *Activity          `json:"activeActivity"`
	Skills         map[Activity]Skill `json:"skills"`

	// ShowPerkSelection and CurrentSkillLevelUp flag a pending level-up
	// perk choice; both clear when SELECT_PERK commits.
	ShowPerkSelection   bool      `json:"showPerkSelection"`
	CurrentSkillLevelUp *Activity `json:"currentSkillLevelUp"`

	Plots     []Plot        `json:"plots"`
	Equipment Equipment     `json:"equipment"`
	Notice    *Notification `json:"notification"`

	DiscoveredRecipes []string `json:"discoveredRecipes"`
	DiscoveredItems   []string `json:"discoveredItems"`
}

// Clone returns a deep copy. Reductions mutate only the clone so the
// caller's state stays untouched, which keeps snapshots and undo
// semantics sound.
func (gs *GameState) Clone() *GameState {
	out := *gs

	out.Inventory = make([]*InventoryItem, len(gs.Inventory))
	for i, item := range gs.Inventory {
		if item != nil {
			copied := *item
			out.Inventory[i] = &copied
		}
	}

	out.Skills = make(map[Activity]Skill, len(gs.Skills))
	for activity, skill := range gs.Skills {
		skill.Perks = append([]string(nil), skill.Perks...)
		skill.AvailablePerks = append([]string(nil), skill.AvailablePerks...)
		out.Skills[activity] = skill
	}

	out.Plots = append([]Plot(nil), gs.Plots...)

	if gs.ActiveActivity != nil {
		active := *gs.ActiveActivity
		out.ActiveActivity = &active
	}
	if gs.CurrentSkillLevelUp != nil {
		pending := *gs.CurrentSkillLevelUp
		out.CurrentSkillLevelUp = &pending
	}
	if gs.Notice != nil {
		notice := *gs.Notice
		out.Notice = &notice
	}

	for _, slot := range EquipSlots {
		if item := gs.Equipment.Get(slot); item != nil {
			copied := *item
			out.Equipment.Set(slot, &copied)
		}
	}

	out.DiscoveredRecipes = append([]string(nil), gs.DiscoveredRecipes...)
	out.DiscoveredItems = append([]string(nil), gs.DiscoveredItems...)

	return &out
}

// FirstEmptySlot returns the lowest empty inventory index, or -1 when
// the inventory is full.
func (gs *GameState) FirstEmptySlot() int {
	for i, item := range gs.Inventory {
		if item == nil {
			return i
		}
	}
	return -1
}

// FindItem returns the first inventory item with the given catalog id,
// or nil. Scan order is index-ascending.
func (gs *GameState) FindItem(itemID string) *InventoryItem {
	for _, item := range gs.Inventory {
		if item != nil && item.ID == itemID {
			return item
		}
	}
	return nil
}

// HasDiscoveredItem reports whether the item id has been recorded.
func (gs *GameState) HasDiscoveredItem(itemID string) bool {
	for _, id := range gs.DiscoveredItems {
		if id == itemID {
			return true
		}
	}
	return false
}
