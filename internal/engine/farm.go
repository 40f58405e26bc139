package engine

import (
	"context"
	"fmt"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
	"github.com/oakvale/homestead/internal/logger"
)

func (e *Engine) findPlot(plotID int) (*domain.Plot, error) {
	for i := range e.state.Plots {
		if e.state.Plots[i].ID == plotID {
			return &e.state.Plots[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
}

// TillPlot turns an untilled plot. Costs energy unless the tiller
// mastery is held with a tungsten hoe.
func (e *Engine) TillPlot(ctx context.Context, plotID int) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plot, err := e.findPlot(plotID)
	if err != nil {
		return nil, err
	}
	if plot.State != domain.PlotUntilled {
		return nil, fmt.Errorf("%w: plot %d is %s", domain.ErrInvalidPlotState, plotID, plot.State)
	}
	hoe := e.state.FindItem(hoeItemID)
	if hoe == nil {
		return nil, fmt.Errorf("%w: tilling requires a hoe", domain.ErrMissingTool)
	}

	cost := tillEnergyCost
	if _, ok := hasEffect(e.heldPerks(e.state.Skills[domain.ActivityFarming]), domain.PerkMasteryTillFree); ok && hoe.Tier == domain.TierTungsten {
		cost = 0
	}
	if e.state.Energy < cost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrNotEnoughEnergy, cost, e.state.Energy)
	}

	e.dispatch(game.UseEnergy{Amount: cost})
	e.dispatch(game.TillPlot{PlotID: plotID})
	e.dispatch(game.AddExperience{Activity: domain.ActivityFarming, Amount: tillExperience})

	return e.state.Clone(), nil
}

// WaterPlot waters one planted plot, or every planted plot for the
// same single action cost when the irrigator mastery is held with a
// tungsten can.
func (e *Engine) WaterPlot(ctx context.Context, plotID int) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plot, err := e.findPlot(plotID)
	if err != nil {
		return nil, err
	}
	if plot.State != domain.PlotSeeded && plot.State != domain.PlotGrowing {
		return nil, fmt.Errorf("%w: plot %d is %s", domain.ErrInvalidPlotState, plotID, plot.State)
	}
	can := e.state.FindItem(wateringCanItemID)
	if can == nil {
		return nil, fmt.Errorf("%w: watering requires a watering can", domain.ErrMissingTool)
	}
	if e.state.Energy < waterEnergyCost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrNotEnoughEnergy, waterEnergyCost, e.state.Energy)
	}

	_, waterAll := hasEffect(e.heldPerks(e.state.Skills[domain.ActivityFarming]), domain.PerkMasteryWaterAll)
	waterAll = waterAll && can.Tier == domain.TierTungsten

	e.dispatch(game.UseEnergy{Amount: waterEnergyCost})
	if waterAll {
		for i := range e.state.Plots {
			target := e.state.Plots[i]
			if target.State == domain.PlotSeeded || target.State == domain.PlotGrowing {
				e.dispatch(game.WaterPlot{PlotID: target.ID})
			}
		}
	} else {
		e.dispatch(game.WaterPlot{PlotID: plotID})
	}
	e.dispatch(game.AddExperience{Activity: domain.ActivityFarming, Amount: waterExperience})

	return e.state.Clone(), nil
}

// PlantSeed sows the seed held in an inventory slot into a tilled
// plot, consuming one seed.
func (e *Engine) PlantSeed(ctx context.Context, plotID, slotID int) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plot, err := e.findPlot(plotID)
	if err != nil {
		return nil, err
	}
	if plot.State != domain.PlotTilled {
		return nil, fmt.Errorf("%w: plot %d is %s", domain.ErrInvalidPlotState, plotID, plot.State)
	}

	if slotID < 0 || slotID >= len(e.state.Inventory) || e.state.Inventory[slotID] == nil {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrNotInInventory, slotID)
	}
	seed := e.state.Inventory[slotID]
	if seed.Type != domain.ItemTypeSeed {
		return nil, fmt.Errorf("%w: %s is not a seed", domain.ErrItemNotFound, seed.ID)
	}

	e.dispatch(game.PlantSeed{
		PlotID:       plotID,
		SeedID:       seed.ID,
		DaysToMature: seed.GrowthDays,
		PlantedDay:   e.state.Day,
	})
	e.dispatch(game.RemoveItem{SlotID: slotID, Quantity: 1})
	e.dispatch(game.AddExperience{Activity: domain.ActivityFarming, Amount: plantExperience})

	return e.state.Clone(), nil
}

// HarvestPlot reaps a mature plot.
func (e *Engine) HarvestPlot(ctx context.Context, plotID int) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	plot, err := e.findPlot(plotID)
	if err != nil {
		return nil, err
	}
	if plot.State != domain.PlotMature {
		return nil, fmt.Errorf("%w: plot %d is %s", domain.ErrInvalidPlotState, plotID, plot.State)
	}

	seedID := plot.SeedID
	e.dispatch(game.HarvestPlot{PlotID: plotID})
	e.dispatch(game.AddExperience{Activity: domain.ActivityFarming, Amount: harvestExperience})

	log.Info("plot harvested", "plot", plotID, "seed", seedID)
	return e.state.Clone(), nil
}

// ClearDeadPlot hoes out a dead plot, returning it to untilled.
func (e *Engine) ClearDeadPlot(ctx context.Context, plotID int) (*domain.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plot, err := e.findPlot(plotID)
	if err != nil {
		return nil, err
	}
	if plot.State != domain.PlotDead {
		return nil, fmt.Errorf("%w: plot %d is %s", domain.ErrInvalidPlotState, plotID, plot.State)
	}
	if e.state.FindItem(hoeItemID) == nil {
		return nil, fmt.Errorf("%w: clearing requires a hoe", domain.ErrMissingTool)
	}
	if e.state.Energy < clearEnergyCost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrNotEnoughEnergy, clearEnergyCost, e.state.Energy)
	}

	e.dispatch(game.UseEnergy{Amount: clearEnergyCost})
	e.dispatch(game.ClearDeadPlot{PlotID: plotID})
	e.dispatch(game.AddExperience{Activity: domain.ActivityFarming, Amount: clearExperience})
	return e.state.Clone(), nil
}
