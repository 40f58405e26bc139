package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/engine"
	"github.com/oakvale/homestead/internal/logger"
)

type CraftItemRequest struct {
	SlotA int `json:"slotA" validate:"gte=0"`
	SlotB int `json:"slotB" validate:"gte=0"`
}

// HandleCraftItem combines the items in two inventory slots.
func HandleCraftItem(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft item"); err != nil {
			return
		}

		state, err := svc.CraftItem(r.Context(), req.SlotA, req.SlotB)
		if err != nil {
			log.Warn("Craft failed", "slotA", req.SlotA, "slotB", req.SlotB, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

type SellItemRequest struct {
	SlotID   int `json:"slotId" validate:"gte=0"`
	Quantity int `json:"quantity" validate:"min=1,max=999"`
}

// HandleSellItem sells items from an inventory slot at catalog value.
func HandleSellItem(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		state, err := svc.SellItem(r.Context(), req.SlotID, req.Quantity)
		if err != nil {
			log.Warn("Sell failed", "slot", req.SlotID, "quantity", req.Quantity, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

type UseItemRequest struct {
	SlotID int `json:"slotId" validate:"gte=0"`
}

// HandleUseItem consumes one unit of a usable item.
func HandleUseItem(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		state, err := svc.UseItem(r.Context(), req.SlotID)
		if err != nil {
			log.Warn("Use failed", "slot", req.SlotID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

type EquipItemRequest struct {
	SlotID int    `json:"slotId" validate:"gte=0"`
	Slot   string `json:"slot" validate:"required,equipslot"`
}

// HandleEquipItem moves equipment from the inventory onto the body.
func HandleEquipItem(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		state, err := svc.EquipItem(r.Context(), req.SlotID, domain.EquipSlot(req.Slot))
		if err != nil {
			log.Warn("Equip failed", "slot", req.SlotID, "equipSlot", req.Slot, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

type UnequipItemRequest struct {
	Slot string `json:"slot" validate:"required,equipslot"`
}

// HandleUnequipItem returns an equipped item to the inventory.
func HandleUnequipItem(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnequipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
			return
		}

		state, err := svc.UnequipItem(r.Context(), domain.EquipSlot(req.Slot))
		if err != nil {
			log.Warn("Unequip failed", "equipSlot", req.Slot, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}

// HandleUpgradeTool advances the named tool to its next tier.
func HandleUpgradeTool(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		toolID := chi.URLParam(r, "toolID")
		if toolID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		state, err := svc.UpgradeTool(r.Context(), toolID)
		if err != nil {
			log.Warn("Upgrade failed", "tool", toolID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{State: state})
	}
}
