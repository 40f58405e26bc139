package storage

import (
	"context"

	"github.com/oakvale/homestead/internal/domain"
)

// Store persists game state snapshots by save slot. A snapshot is the
// whole GameState, structurally serialized; restore is all-or-nothing.
type Store interface {
	SaveSnapshot(ctx context.Context, slot string, state *domain.GameState) error
	LoadSnapshot(ctx context.Context, slot string) (*domain.GameState, error)
	Ping(ctx context.Context) error
	Close() error
}
