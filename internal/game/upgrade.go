package game

import "github.com/oakvale/homestead/internal/domain"

// upgradeTool replaces a tool's tier and rebuilds its display name
// from the immutable base name. The name is derived, never parsed.
func (r *Reducer) upgradeTool(state *domain.GameState, toolID string, newTier domain.ToolTier) {
	tool := state.FindItem(toolID)
	if tool == nil || tool.Type != domain.ItemTypeTool {
		return
	}

	upgrade, ok := r.catalog.UpgradeForTier(newTier)
	if !ok {
		return
	}

	tool.Tier = newTier
	if tool.BaseName != "" {
		tool.Name = upgrade.Name + " " + tool.BaseName
	}
}
