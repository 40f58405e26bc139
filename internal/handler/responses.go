package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/engine"
)

// encodeBuffers are reused across responses so the hot state endpoint
// does not allocate a fresh buffer per request.
var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// StateResponse wraps the game state for action endpoints.
type StateResponse struct {
	Message string            `json:"message,omitempty"`
	State   *domain.GameState `json:"state"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgActivityNotFoundError   = "Unknown activity"
	ErrMsgRecipeNotFoundError     = "Those items don't combine into anything"
	ErrMsgPlotNotFoundError       = "Plot not found"
	ErrMsgNotEnoughEnergyError    = "Not enough energy"
	ErrMsgMissingToolError        = "You don't have the right tool"
	ErrMsgActivityInProgressError = "Finish the current activity first"
	ErrMsgInvalidPlotStateError   = "The plot isn't ready for that"
	ErrMsgNotInInventoryError     = "You don't have that item"
	ErrMsgInsufficientItemsError  = "Not enough items"
	ErrMsgMaxTierError            = "That tool is already fully upgraded"
	ErrMsgNoPendingPerkError      = "There is no perk choice to make"
	ErrMsgNotUsableError          = "That item can't be used"
	ErrMsgNoSaveFoundError        = "No saved game found"
)

// mapServiceErrorToUserMessage converts service errors to HTTP status
// codes and messages a player can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusBadRequest, ErrMsgActivityNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusBadRequest, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrPlotNotFound):
		return http.StatusBadRequest, ErrMsgPlotNotFoundError
	case errors.Is(err, domain.ErrNotEnoughEnergy):
		return http.StatusConflict, ErrMsgNotEnoughEnergyError
	case errors.Is(err, domain.ErrMissingTool):
		return http.StatusConflict, ErrMsgMissingToolError
	case errors.Is(err, domain.ErrActivityInProgress):
		return http.StatusConflict, ErrMsgActivityInProgressError
	case errors.Is(err, domain.ErrInvalidPlotState):
		return http.StatusConflict, ErrMsgInvalidPlotStateError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInsufficientItems):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrMaxTier):
		return http.StatusConflict, ErrMsgMaxTierError
	case errors.Is(err, domain.ErrNoPendingPerk):
		return http.StatusConflict, ErrMsgNoPendingPerkError
	case errors.Is(err, engine.ErrNotUsable):
		return http.StatusBadRequest, ErrMsgNotUsableError
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound, ErrMsgNoSaveFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
