package graph

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// User Operations
// ============================================================================

// ListUsers returns all users ordered by username
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	query := `
		MATCH (u:User)
		RETURN u.username AS username, u.role AS role
		ORDER BY username
	`

	rows, err := r.store.ExecuteRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, User{
			Username: getStringFromRow(row, "username"),
			Role:     getStringFromRow(row, "role"),
		})
	}
	return users, nil
}

// GetUserLikes returns the ids of the games a user likes, ordered by the
// liked game's title. An unknown username yields an empty list.
func (r *Repository) GetUserLikes(ctx context.Context, username string) ([]int, error) {
	query := `
		MATCH (u:User {username: $username})-[:LIKES]->(g:Game)
		RETURN g.id AS id
		ORDER BY g.title
	`

	rows, err := r.store.ExecuteRead(ctx, query, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, getIntFromRow(row, "id"))
	}
	return ids, nil
}

// AddLike creates the LIKES edge from a user to a game. The MERGE keeps it
// idempotent; if either node is missing, nothing matches and the call is a
// silent no-op.
func (r *Repository) AddLike(ctx context.Context, username string, gameID int) error {
	query := `
		MATCH (u:User {username: $username})
		MATCH (g:Game {id: $gameId})
		MERGE (u)-[:LIKES]->(g)
	`

	if _, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"username": username,
		"gameId":   gameID,
	}); err != nil {
		return err
	}

	r.logger.Debug("Like added",
		zap.String("username", username),
		zap.Int("game_id", gameID),
	)
	return nil
}

// RemoveLike deletes the LIKES edge from a user to a game. Removing an
// absent edge is a no-op, not an error.
func (r *Repository) RemoveLike(ctx context.Context, username string, gameID int) error {
	query := `
		MATCH (u:User {username: $username})-[like:LIKES]->(g:Game {id: $gameId})
		DELETE like
	`

	if _, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"username": username,
		"gameId":   gameID,
	}); err != nil {
		return err
	}

	r.logger.Debug("Like removed",
		zap.String("username", username),
		zap.Int("game_id", gameID),
	)
	return nil
}
