package engine

import (
	"context"
	"fmt"

	"github.com/oakvale/homestead/internal/domain"
	"github.com/oakvale/homestead/internal/game"
	"github.com/oakvale/homestead/internal/logger"
	"github.com/oakvale/homestead/internal/metrics"
)

// Save snapshots the current state into the engine's save slot.
func (e *Engine) Save(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.SaveSnapshot(ctx, e.slot, e.state); err != nil {
		metrics.SnapshotOperations.WithLabelValues("save", "error").Inc()
		e.dispatch(game.ShowNotification{Notice: domain.Notification{
			Title:    "Save Failed",
			Message:  "Could not save the game.",
			Severity: domain.SeverityError,
		}})
		log.Error("failed to save snapshot", "slot", e.slot, "error", err)
		return e.state.Clone(), fmt.Errorf("failed to save snapshot: %w", err)
	}

	metrics.SnapshotOperations.WithLabelValues("save", "success").Inc()
	e.dispatch(game.ShowNotification{Notice: domain.Notification{
		Title:    "Game Saved",
		Message:  "Your progress has been saved.",
		Severity: domain.SeveritySuccess,
	}})
	return e.state.Clone(), nil
}

// Load restores the snapshot from the engine's save slot. A failed
// restore is all-or-nothing: the in-memory state stays untouched and
// the failure surfaces as an error notification.
func (e *Engine) Load(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	restored, err := e.store.LoadSnapshot(ctx, e.slot)
	if err != nil {
		metrics.SnapshotOperations.WithLabelValues("load", "error").Inc()
		e.dispatch(game.ShowNotification{Notice: domain.Notification{
			Title:    "Load Failed",
			Message:  "No saved game could be restored.",
			Severity: domain.SeverityError,
		}})
		log.Error("failed to load snapshot", "slot", e.slot, "error", err)
		return e.state.Clone(), fmt.Errorf("failed to load snapshot: %w", err)
	}

	e.state = restored
	metrics.SnapshotOperations.WithLabelValues("load", "success").Inc()
	e.dispatch(game.ShowNotification{Notice: domain.Notification{
		Title:    "Game Loaded",
		Message:  "Your saved progress has been restored.",
		Severity: domain.SeveritySuccess,
	}})
	return e.state.Clone(), nil
}
