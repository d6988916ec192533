package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperrors "gamegraph/backend/pkg/errors"
	"gamegraph/backend/pkg/logger"
)

// Store owns the Neo4j connection pool. Every operation in this package
// goes through ExecuteRead/ExecuteWrite: a session is acquired per call and
// released on completion, rows come back as plain column-name -> value maps.
type Store struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewStore creates a store backed by a Neo4j driver. The driver holds the
// process-wide connection pool; call VerifyConnectivity before serving.
func NewStore(uri, username, password string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}

	return &Store{
		driver: driver,
		logger: logger.Get(),
	}, nil
}

// VerifyConnectivity checks that the database is reachable
func (s *Store) VerifyConnectivity(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return apperrors.NewGraphConnectionFailed(s.driver.Target().Host, err)
	}
	return nil
}

// Close closes the Neo4j driver connection
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// ExecuteRead runs a read-only Cypher query and returns the result rows
func (s *Store) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	rows, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return runAndCollect(ctx, tx, cypher, params)
	})
	if err != nil {
		s.logger.Error("Read query failed", zap.String("query", cypher), zap.Error(err))
		return nil, apperrors.NewGraphQueryFailed(cypher, err)
	}

	return rows.([]map[string]any), nil
}

// ExecuteWrite runs a mutating Cypher query and returns the result rows
func (s *Store) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	rows, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return runAndCollect(ctx, tx, cypher, params)
	})
	if err != nil {
		s.logger.Error("Write query failed", zap.String("query", cypher), zap.Error(err))
		return nil, apperrors.NewGraphQueryFailed(cypher, err)
	}

	return rows.([]map[string]any), nil
}

func runAndCollect(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) ([]map[string]any, error) {
	result, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	rows := []map[string]any{}
	for result.Next(ctx) {
		record := result.Record()
		row := make(map[string]any, len(record.Keys))
		for _, key := range record.Keys {
			value, _ := record.Get(key)
			// Flatten nodes to their property maps
			if node, ok := value.(neo4j.Node); ok {
				row[key] = node.GetProperties()
			} else {
				row[key] = value
			}
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
