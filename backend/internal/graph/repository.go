package graph

import (
	"context"

	"go.uber.org/zap"

	"gamegraph/backend/pkg/logger"
)

// Repository handles all graph operations for the catalog: game search and
// writes, taxonomy listings, users and likes, and recommendations. It talks
// to Neo4j exclusively through the Store.
type Repository struct {
	store  *Store
	logger *zap.Logger
}

// NewRepository creates a new catalog repository over the given store
func NewRepository(store *Store) *Repository {
	return &Repository{
		store:  store,
		logger: logger.Get(),
	}
}

// Close closes the underlying store
func (r *Repository) Close(ctx context.Context) error {
	return r.store.Close(ctx)
}
