package domain

import "errors"

// Sentinel errors shared across packages. The reducer itself never
// returns errors (failures surface through the notification field);
// these belong to the service and transport layers around it.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrPlotNotFound     = errors.New("plot not found")

	ErrNotEnoughEnergy    = errors.New("not enough energy")
	ErrMissingTool        = errors.New("required tool not in inventory")
	ErrActivityInProgress = errors.New("an activity is already in progress")
	ErrInvalidPlotState   = errors.New("plot is not in a valid state for this action")
	ErrNotInInventory     = errors.New("item not in inventory")
	ErrInsufficientItems  = errors.New("insufficient items")
	ErrMaxTier            = errors.New("tool is already at the highest tier")
	ErrNoPendingPerk      = errors.New("no pending perk choice")

	ErrSnapshotNotFound = errors.New("snapshot not found")
)
