package graph

import (
	"context"
)

// ============================================================================
// Recommendation Operations
// ============================================================================

// DefaultRecommendationLimit caps a recommendation list when the caller
// passes no explicit limit.
const DefaultRecommendationLimit = 10

// Recommend ranks games the user has not liked by how many attributes they
// share with the user's liked games. Every liked-game -> feature ->
// candidate path contributes a weight keyed by the edge type on the
// candidate side: 3 for a shared mechanic, 2 for a shared developer, 1 for
// a shared genre. Paths are not deduplicated per feature, so a feature
// reached from several liked games counts once per path. A user with no
// likes gets an empty list.
func (r *Repository) Recommend(ctx context.Context, username string, limit int) ([]Game, error) {
	if limit < 1 {
		limit = DefaultRecommendationLimit
	}

	query := `
		MATCH (u:User {username: $username})-[:LIKES]->(liked:Game)
		MATCH (liked)-[:HAS_GENRE|HAS_MECHANIC|DEVELOPED_BY]->(feature)<-[shared:HAS_GENRE|HAS_MECHANIC|DEVELOPED_BY]-(candidate:Game)
		WHERE NOT (u)-[:LIKES]->(candidate)
		WITH candidate,
		     sum(CASE type(shared)
		         WHEN 'HAS_MECHANIC' THEN 3
		         WHEN 'DEVELOPED_BY' THEN 2
		         WHEN 'HAS_GENRE'    THEN 1
		         ELSE 1
		     END) AS similarityScore
		ORDER BY similarityScore DESC, candidate.title ASC
		LIMIT $limit
		OPTIONAL MATCH (candidate)-[:HAS_GENRE]->(gen:Genre)
		OPTIONAL MATCH (candidate)-[:DEVELOPED_BY]->(dev:Developer)
		OPTIONAL MATCH (candidate)-[:HAS_MECHANIC]->(mech:Mechanic)
		WITH candidate, similarityScore,
		     collect(DISTINCT gen.name) AS genres,
		     collect(DISTINCT dev.name) AS developers,
		     collect(DISTINCT mech.name) AS mechanics
		RETURN candidate { .id, .title, .releaseYear, .about, .imagePath } AS game,
		       genres, developers, mechanics, similarityScore
		ORDER BY similarityScore DESC, game.title ASC
	`

	rows, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"username": username,
		"limit":    limit,
	})
	if err != nil {
		return nil, err
	}

	games := make([]Game, 0, len(rows))
	for _, row := range rows {
		game := mapGameRow(row)
		game.SimilarityScore = getIntFromRow(row, "similarityScore")
		games = append(games, game)
	}
	return games, nil
}
