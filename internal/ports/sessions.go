package ports

import (
	"context"
	"errors"

	"github.com/randomtoy/pairs-go/internal/domain"
)

var ErrGameNotFound = errors.New("game not found")

// SessionStore owns live game sessions keyed by game ID.
type SessionStore interface {
	Save(ctx context.Context, gameID string, s *domain.Session) error
	// Get returns ErrGameNotFound for unknown IDs.
	Get(ctx context.Context, gameID string) (*domain.Session, error)
	Delete(ctx context.Context, gameID string) error
}
