package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/engine"
	"github.com/oakvale/homestead/internal/logger"
)

// plotIDParam extracts and parses the {plotID} URL parameter.
func plotIDParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	plotID, err := strconv.Atoi(chi.URLParam(r, "plotID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return 0, false
	}
	return plotID, true
}

// handlePlotAction wraps the shared shape of the single-plot endpoints.
func handlePlotAction(name string, action func(ctx context.Context, plotID int) (*domain.GameState, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		plotID, ok := plotIDParam(r, w)
		if !ok {
			return
		}

		state, err := action(r.Context(), plotID)
		if err != nil {
			log.Warn(name+" failed", "plot", plotID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

// HandleTillPlot tills an untilled plot.
func HandleTillPlot(svc engine.Service) http.HandlerFunc {
	return handlePlotAction("Till", svc.TillPlot)
}

// HandleWaterPlot waters a planted plot.
func HandleWaterPlot(svc engine.Service) http.HandlerFunc {
	return handlePlotAction("Water", svc.WaterPlot)
}

// HandleHarvestPlot harvests a mature plot.
func HandleHarvestPlot(svc engine.Service) http.HandlerFunc {
	return handlePlotAction("Harvest", svc.HarvestPlot)
}

// HandleClearDeadPlot clears a dead plot back to untilled ground.
func HandleClearDeadPlot(svc engine.Service) http.HandlerFunc {
	return handlePlotAction("Clear plot", svc.ClearDeadPlot)
}

type PlantSeedRequest struct {
	SlotID int `json:"slotId" validate:"gte=0"`
}

// HandlePlantSeed sows a seed from an inventory slot into a plot.
func HandlePlantSeed(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		plotID, ok := plotIDParam(r, w)
		if !ok {
			return
		}

		var req PlantSeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
			return
		}

		state, err := svc.PlantSeed(r.Context(), plotID, req.SlotID)
		if err != nil {
			log.Warn("Plant failed", "plot", plotID, "slot", req.SlotID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}
