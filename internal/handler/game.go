package handler

import (
	"net/http"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/engine"
	"github.com/oakvale/homestead/internal/logger"
)

// HandleGetState returns the full current game state.
func HandleGetState(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StateResponse{State: svc.State()})
	}
}

type PerformActivityRequest struct {
	Activity string `json:"activity" validate:"required,activity"`
}

// HandlePerformActivity runs one round of a skill activity.
func HandlePerformActivity(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PerformActivityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Perform activity"); err != nil {
			return
		}

		state, err := svc.PerformActivity(r.Context(), domain.Activity(req.Activity))
		if err != nil {
			log.Warn("Activity failed", "activity", req.Activity, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

// HandleClearActivity releases the activity lockout.
func HandleClearActivity(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StateResponse{State: svc.ClearActivity(r.Context())})
	}
}

type SelectPerkRequest struct {
	Activity string `json:"activity" validate:"required,activity"`
	PerkID   string `json:"perkId" validate:"required"`
}

// HandleSelectPerk commits a pending level-up perk choice.
func HandleSelectPerk(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SelectPerkRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Select perk"); err != nil {
			return
		}

		state, err := svc.SelectPerk(r.Context(), domain.Activity(req.Activity), req.PerkID)
		if err != nil {
			log.Warn("Perk selection failed", "activity", req.Activity, "perk", req.PerkID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

// HandleEndDay sleeps through to the next morning.
func HandleEndDay(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StateResponse{State: svc.EndDay(r.Context())})
	}
}

// HandleClearNotification acknowledges the pending notification.
func HandleClearNotification(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StateResponse{State: svc.ClearNotification(r.Context())})
	}
}

// HandleSave persists the session to the snapshot store.
func HandleSave(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Save(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		respondJSON(w, http.StatusOK, StateResponse{Message: "Game saved", State: state})
	}
}

// HandleLoad restores the session from the snapshot store.
func HandleLoad(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Load(r.Context())
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}
		respondJSON(w, http.StatusOK, StateResponse{Message: "Game loaded", State: state})
	}
}
