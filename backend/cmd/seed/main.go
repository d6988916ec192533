package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"gamegraph/backend/internal/graph"
	"gamegraph/backend/pkg/config"
	"gamegraph/backend/pkg/logger"
)

type seedGame struct {
	game      graph.Game
	developer string
	genres    []string
	mechanics []string
}

func main() {
	force := flag.Bool("force", false, "Reseed even if the catalog already has games")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	store, err := graph.NewStore(cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Fatal("Failed to create graph store", zap.Error(err))
	}
	defer store.Close(context.Background())

	ctx := context.Background()
	if err := store.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	repo := graph.NewRepository(store)

	log.Info("Creating constraints...")
	if err := createConstraints(ctx, store); err != nil {
		log.Warn("Failed to create some constraints (may already exist)", zap.Error(err))
	}

	existing, err := repo.GetAllGames(ctx, 1)
	if err != nil {
		log.Fatal("Failed to inspect catalog", zap.Error(err))
	}
	if len(existing) > 0 && !*force {
		log.Info("Catalog already seeded, skipping (use -force to reseed)")
		os.Exit(0)
	}
	if len(existing) > 0 {
		log.Info("Wiping existing catalog...")
		if err := wipeCatalog(ctx, store); err != nil {
			log.Fatal("Failed to wipe catalog", zap.Error(err))
		}
	}

	log.Info("Creating users...")
	if err := seedUsers(ctx, store); err != nil {
		log.Fatal("Failed to seed users", zap.Error(err))
	}

	log.Info("Creating games...")
	// Games go through the real write path, performed by the seeded admin
	for _, s := range sampleGames() {
		if _, err := repo.UpsertGame(ctx, s.game, s.developer, s.genres, s.mechanics, "root"); err != nil {
			log.Fatal("Failed to seed game", zap.Int("game_id", s.game.ID), zap.Error(err))
		}
	}

	log.Info("Creating likes...")
	for username, gameIDs := range sampleLikes() {
		for _, id := range gameIDs {
			if err := repo.AddLike(ctx, username, id); err != nil {
				log.Fatal("Failed to seed like", zap.String("username", username), zap.Error(err))
			}
		}
	}

	log.Info("Seeding complete")
}

func createConstraints(ctx context.Context, store *graph.Store) error {
	constraints := []string{
		`CREATE CONSTRAINT game_id IF NOT EXISTS FOR (g:Game) REQUIRE g.id IS UNIQUE`,
		`CREATE CONSTRAINT genre_name IF NOT EXISTS FOR (g:Genre) REQUIRE g.name IS UNIQUE`,
		`CREATE CONSTRAINT developer_name IF NOT EXISTS FOR (d:Developer) REQUIRE d.name IS UNIQUE`,
		`CREATE CONSTRAINT mechanic_name IF NOT EXISTS FOR (m:Mechanic) REQUIRE m.name IS UNIQUE`,
		`CREATE CONSTRAINT user_username IF NOT EXISTS FOR (u:User) REQUIRE u.username IS UNIQUE`,
	}
	for _, c := range constraints {
		if _, err := store.ExecuteWrite(ctx, c, nil); err != nil {
			return err
		}
	}
	return nil
}

func wipeCatalog(ctx context.Context, store *graph.Store) error {
	query := `
		MATCH (n)
		WHERE n:Game OR n:Genre OR n:Developer OR n:Mechanic
		DETACH DELETE n
	`
	_, err := store.ExecuteWrite(ctx, query, nil)
	return err
}

func seedUsers(ctx context.Context, store *graph.Store) error {
	users := []graph.User{
		{Username: "root", Role: graph.RoleAdmin},
		{Username: "alice", Role: graph.RoleUser},
		{Username: "bob", Role: graph.RoleUser},
	}
	for _, u := range users {
		query := `
			MERGE (u:User {username: $username})
			SET u.role = $role
		`
		if _, err := store.ExecuteWrite(ctx, query, map[string]any{
			"username": u.Username,
			"role":     u.Role,
		}); err != nil {
			return err
		}
	}
	return nil
}

func sampleGames() []seedGame {
	return []seedGame{
		{
			game:      graph.Game{ID: 1, Title: "The Witcher 3: Wild Hunt", ReleaseYear: 2015, About: "Open-world fantasy RPG.", ImagePath: "/images/witcher3.jpg"},
			developer: "CD Projekt Red",
			genres:    []string{"RPG", "Adventure"},
			mechanics: []string{"Open World", "Dialogue Choices"},
		},
		{
			game:      graph.Game{ID: 2, Title: "Cyberpunk 2077", ReleaseYear: 2020, About: "Open-world sci-fi RPG.", ImagePath: "/images/cyberpunk2077.jpg"},
			developer: "CD Projekt Red",
			genres:    []string{"RPG", "Action"},
			mechanics: []string{"Open World", "Dialogue Choices", "Shooting"},
		},
		{
			game:      graph.Game{ID: 3, Title: "Stardew Valley", ReleaseYear: 2016, About: "Farming and life simulation.", ImagePath: "/images/stardew.jpg"},
			developer: "ConcernedApe",
			genres:    []string{"Simulation", "RPG"},
			mechanics: []string{"Crafting", "Farming"},
		},
		{
			game:      graph.Game{ID: 4, Title: "Hades", ReleaseYear: 2020, About: "Rogue-like dungeon crawler.", ImagePath: "/images/hades.jpg"},
			developer: "Supergiant Games",
			genres:    []string{"Action", "Roguelike"},
			mechanics: []string{"Permadeath", "Dialogue Choices"},
		},
		{
			game:      graph.Game{ID: 5, Title: "Civilization VI", ReleaseYear: 2016, About: "Turn-based 4X strategy.", ImagePath: "/images/civ6.jpg"},
			developer: "Firaxis Games",
			genres:    []string{"Strategy"},
			mechanics: []string{"Turn-Based", "City Building"},
		},
		{
			game:      graph.Game{ID: 6, Title: "Baldur's Gate 3", ReleaseYear: 2023, About: "Party-based RPG set in the Forgotten Realms.", ImagePath: "/images/bg3.jpg"},
			developer: "Larian Studios",
			genres:    []string{"RPG", "Adventure"},
			mechanics: []string{"Turn-Based", "Dialogue Choices"},
		},
	}
}

func sampleLikes() map[string][]int {
	return map[string][]int{
		"alice": {1, 6},
		"bob":   {4, 5},
	}
}
