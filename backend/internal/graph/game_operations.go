package graph

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	apperrors "gamegraph/backend/pkg/errors"
)

// ============================================================================
// Game Operations
// ============================================================================

const (
	defaultSearchLimit = 30
	defaultListLimit   = 50
)

// gameProjection selects the scalar game properties plus the aggregated
// attribute name lists; every read path returns this shape.
const gameProjection = `
	OPTIONAL MATCH (g)-[:HAS_GENRE]->(gen:Genre)
	OPTIONAL MATCH (g)-[:DEVELOPED_BY]->(dev:Developer)
	OPTIONAL MATCH (g)-[:HAS_MECHANIC]->(mech:Mechanic)
	WITH g, collect(DISTINCT gen.name) AS genres,
	     collect(DISTINCT dev.name) AS developers,
	     collect(DISTINCT mech.name) AS mechanics
	RETURN g { .id, .title, .releaseYear, .about, .imagePath } AS game,
	       genres, developers, mechanics
`

// SearchGames returns games matching all supplied filters. Each filter group
// is an AND across its values (a game must carry every requested genre,
// developer and mechanic); an empty group imposes no constraint. The title
// match is a case-insensitive substring test. Results carry the full
// attribute name sets regardless of what was filtered on.
func (r *Repository) SearchGames(ctx context.Context, searchText string, genres, developers, mechanics []string, maxResults int) ([]Game, error) {
	if maxResults < 1 {
		maxResults = defaultSearchLimit
	}

	query := `
		MATCH (g:Game)
		WHERE ($searchText = '' OR toLower(g.title) CONTAINS toLower($searchText))
		  AND (size($genres) = 0 OR all(genreName IN $genres WHERE EXISTS { (g)-[:HAS_GENRE]->(:Genre {name: genreName}) }))
		  AND (size($developers) = 0 OR all(devName IN $developers WHERE EXISTS { (g)-[:DEVELOPED_BY]->(:Developer {name: devName}) }))
		  AND (size($mechanics) = 0 OR all(mechName IN $mechanics WHERE EXISTS { (g)-[:HAS_MECHANIC]->(:Mechanic {name: mechName}) }))
	` + gameProjection + `
		ORDER BY game.title ASC
		LIMIT $limit
	`

	rows, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"searchText": strings.TrimSpace(searchText),
		"genres":     nonNil(genres),
		"developers": nonNil(developers),
		"mechanics":  nonNil(mechanics),
		"limit":      maxResults,
	})
	if err != nil {
		return nil, err
	}

	games := make([]Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, mapGameRow(row))
	}
	return games, nil
}

// GetGameByID returns a single game with its full attribute sets
func (r *Repository) GetGameByID(ctx context.Context, id int) (*Game, error) {
	query := `
		MATCH (g:Game {id: $id})
	` + gameProjection

	rows, err := r.store.ExecuteRead(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewGameNotFound(id)
	}

	game := mapGameRow(rows[0])
	return &game, nil
}

// GetAllGames returns every game ordered by title, capped at maxResults
func (r *Repository) GetAllGames(ctx context.Context, maxResults int) ([]Game, error) {
	if maxResults < 1 {
		maxResults = defaultListLimit
	}

	query := `
		MATCH (g:Game)
	` + gameProjection + `
		ORDER BY game.title ASC
		LIMIT $limit
	`

	rows, err := r.store.ExecuteRead(ctx, query, map[string]any{"limit": maxResults})
	if err != nil {
		return nil, err
	}

	games := make([]Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, mapGameRow(row))
	}
	return games, nil
}

// UpsertGame creates or updates a game and replaces its attribute edges.
// The scalar properties are overwritten unconditionally and every outgoing
// DEVELOPED_BY/HAS_GENRE/HAS_MECHANIC edge is removed before the supplied
// developer, genres and mechanics are linked, so the edge set always
// reflects exactly this call's inputs. Only admins may call this.
func (r *Repository) UpsertGame(ctx context.Context, game Game, developerName string, genreNames, mechanicNames []string, performedBy string) (*Game, error) {
	isAdmin, err := r.isAdmin(ctx, performedBy)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, apperrors.NewForbidden(performedBy)
	}

	// The whole write is one compound query: the edge replacement is never
	// observable half-applied across requests.
	query := `
		MERGE (g:Game {id: $gameId})
		SET g.title = $title,
		    g.releaseYear = $releaseYear,
		    g.about = $about,
		    g.imagePath = $imagePath
		WITH g
		OPTIONAL MATCH (g)-[old:DEVELOPED_BY|HAS_GENRE|HAS_MECHANIC]->()
		DELETE old
		WITH DISTINCT g
		FOREACH (devName IN CASE WHEN $developerName = '' THEN [] ELSE [$developerName] END |
			MERGE (dev:Developer {name: devName})
			MERGE (g)-[:DEVELOPED_BY]->(dev)
		)
		FOREACH (genreName IN $genreNames |
			MERGE (gen:Genre {name: genreName})
			MERGE (g)-[:HAS_GENRE]->(gen)
		)
		FOREACH (mechName IN $mechanicNames |
			MERGE (mech:Mechanic {name: mechName})
			MERGE (g)-[:HAS_MECHANIC]->(mech)
		)
		WITH g
	` + gameProjection + `
		LIMIT 1
	`

	var about any
	if game.About != "" {
		about = game.About
	}
	var imagePath any
	if normalized := normalizeImagePath(game.ImagePath); normalized != "" {
		imagePath = normalized
	}

	rows, err := r.store.ExecuteWrite(ctx, query, map[string]any{
		"gameId":        game.ID,
		"title":         game.Title,
		"releaseYear":   game.ReleaseYear,
		"about":         about,
		"imagePath":     imagePath,
		"developerName": strings.TrimSpace(developerName),
		"genreNames":    nonNil(genreNames),
		"mechanicNames": nonNil(mechanicNames),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewGameNotFound(game.ID)
	}

	r.logger.Info("Game upserted",
		zap.Int("game_id", game.ID),
		zap.String("title", game.Title),
		zap.String("performed_by", performedBy),
	)

	result := mapGameRow(rows[0])
	return &result, nil
}

// DeleteGame removes a game and every edge touching it. Deleting a missing
// id is a no-op success. Only admins may call this.
func (r *Repository) DeleteGame(ctx context.Context, id int, performedBy string) error {
	isAdmin, err := r.isAdmin(ctx, performedBy)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.NewForbidden(performedBy)
	}

	query := `
		MATCH (g:Game {id: $id})
		DETACH DELETE g
	`

	if _, err := r.store.ExecuteWrite(ctx, query, map[string]any{"id": id}); err != nil {
		return err
	}

	r.logger.Info("Game deleted",
		zap.Int("game_id", id),
		zap.String("performed_by", performedBy),
	)
	return nil
}

// isAdmin reports whether the username belongs to an admin user. A missing
// user counts as non-admin.
func (r *Repository) isAdmin(ctx context.Context, username string) (bool, error) {
	query := `
		MATCH (u:User {username: $username})
		RETURN u.role = $adminRole AS isAdmin
	`

	rows, err := r.store.ExecuteRead(ctx, query, map[string]any{
		"username":  username,
		"adminRole": RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}

	isAdmin, _ := rows[0]["isAdmin"].(bool)
	return isAdmin, nil
}

// mapGameRow maps a projection row into a Game
func mapGameRow(row map[string]any) Game {
	props := getMapFromRow(row, "game")
	return Game{
		ID:          getIntFromRow(props, "id"),
		Title:       getStringFromRow(props, "title"),
		ReleaseYear: getIntFromRow(props, "releaseYear"),
		About:       getStringFromRow(props, "about"),
		ImagePath:   getStringFromRow(props, "imagePath"),
		Genres:      getStringSliceFromRow(row, "genres"),
		Developers:  getStringSliceFromRow(row, "developers"),
		Mechanics:   getStringSliceFromRow(row, "mechanics"),
	}
}

// normalizeImagePath canonicalizes a stored cover image path: whitespace is
// trimmed, an absolute URL is reduced to its path, a leading "Images"
// segment (any case) becomes "images", and the result always starts with a
// single "/". An empty input stays empty (stored as null).
func normalizeImagePath(raw string) string {
	p := strings.TrimSpace(raw)
	if p == "" {
		return ""
	}

	if u, err := url.Parse(p); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}

	p = "/" + strings.TrimLeft(p, "/")

	first := p[1:]
	rest := ""
	if i := strings.IndexByte(first, '/'); i >= 0 {
		first, rest = first[:i], first[i:]
	}
	if strings.EqualFold(first, "images") {
		first = "images"
	}

	return "/" + first + rest
}
