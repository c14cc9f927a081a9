package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/hayate891/naev/pkg/mission"
	"github.com/hayate891/naev/pkg/state"
)

// Storage defines a unified interface for all storage operations:
// session persistence (Redis) plus static mission-catalog loading
// (filesystem). The bar registry itself is never persisted; it is rebuilt
// on every landing.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations (Redis-backed)
	SaveSession(ctx context.Context, s *state.Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// Mission catalog operations (filesystem-backed)
	ListMissions(ctx context.Context) ([]*mission.Data, error)
	GetMission(ctx context.Context, filename string) (*mission.Data, error)
}
