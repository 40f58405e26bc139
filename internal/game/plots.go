package game

import "github.com/oakvale/homestead/internal/domain"

func plotAt(state *domain.GameState, plotID int) *domain.Plot {
	for i := range state.Plots {
		if state.Plots[i].ID == plotID {
			return &state.Plots[i]
		}
	}
	return nil
}

func tillPlot(state *domain.GameState, plotID int) {
	plot := plotAt(state, plotID)
	if plot == nil || plot.State != domain.PlotUntilled {
		return
	}
	plot.State = domain.PlotTilled
}

// waterPlot only raises the water level. Growth happens exclusively at
// day rollover.
func waterPlot(state *domain.GameState, plotID int) {
	plot := plotAt(state, plotID)
	if plot == nil {
		return
	}
	switch plot.State {
	case domain.PlotSeeded, domain.PlotGrowing:
		plot.WaterLevel = 1
	}
}

// defaultDaysToMature applies when a seed definition carries no growth
// time.
const defaultDaysToMature = 4

func plantSeed(state *domain.GameState, action PlantSeed) {
	plot := plotAt(state, action.PlotID)
	if plot == nil || plot.State != domain.PlotTilled {
		return
	}

	days := action.DaysToMature
	if days <= 0 {
		days = defaultDaysToMature
	}

	plot.State = domain.PlotSeeded
	plot.SeedID = action.SeedID
	plot.PlantedDay = action.PlantedDay
	plot.DaysToMature = days
	plot.WaterLevel = 0
}

func clearDeadPlot(state *domain.GameState, plotID int) {
	plot := plotAt(state, plotID)
	if plot == nil || plot.State != domain.PlotDead {
		return
	}
	plot.ClearCrop()
}
