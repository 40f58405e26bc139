package game

import "github.com/oakvale/homestead/internal/domain"

// rollover runs the end-of-day procedure: calendar advance, new
// weather, crop growth or death, and the morning reset.
func (r *Reducer) rollover(state *domain.GameState) {
	state.Day++

	if state.Day%domain.SeasonLength == 1 {
		state.Season = state.Season.Next()
		if state.Season == domain.SeasonSpring {
			state.Year++
		}
	}

	allowed := domain.SeasonWeather[state.Season]
	if len(allowed) > 0 {
		state.Weather = allowed[r.rng.Intn(len(allowed))]
	}
	rain := state.Weather.Rain()

	for i := range state.Plots {
		plot := &state.Plots[i]
		switch plot.State {
		case domain.PlotSeeded, domain.PlotGrowing:
			if state.Season == domain.SeasonWinter {
				plot.State = domain.PlotDead
				plot.WaterLevel = 0
				continue
			}
			if plot.WaterLevel == 0 && !rain {
				plot.State = domain.PlotDead
				continue
			}
			if state.Day-plot.PlantedDay >= plot.DaysToMature {
				plot.State = domain.PlotMature
				plot.WaterLevel = 0
				continue
			}
			plot.State = domain.PlotGrowing
			if rain {
				plot.WaterLevel = 1
			} else {
				plot.WaterLevel = 0
			}
		default:
			plot.WaterLevel = 0
		}
	}

	state.Time = domain.DayStart
	state.Energy = state.MaxEnergy
	state.ActiveActivity = nil
}
