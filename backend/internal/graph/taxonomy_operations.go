package graph

import (
	"context"
)

// ============================================================================
// Taxonomy Operations
// ============================================================================

// ListGenres returns every known genre name, ascending
func (r *Repository) ListGenres(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `MATCH (g:Genre) RETURN g.name AS name ORDER BY name`)
}

// ListDevelopers returns every known developer name, ascending
func (r *Repository) ListDevelopers(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `MATCH (d:Developer) RETURN d.name AS name ORDER BY name`)
}

// ListMechanics returns every known mechanic name, ascending
func (r *Repository) ListMechanics(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `MATCH (m:Mechanic) RETURN m.name AS name ORDER BY name`)
}

func (r *Repository) listNames(ctx context.Context, query string) ([]string, error) {
	rows, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, getStringFromRow(row, "name"))
	}
	return names, nil
}
