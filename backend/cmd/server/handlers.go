package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gamegraph/backend/internal/graph"
	apperrors "gamegraph/backend/pkg/errors"
)

// gameUpsertRequest is the create-game payload: the game's scalar fields
// plus the attribute names to link
type gameUpsertRequest struct {
	Game          graph.Game `json:"game"`
	DeveloperName string     `json:"developerName"`
	GenreNames    []string   `json:"genreNames"`
	MechanicNames []string   `json:"mechanicNames"`
}

func registerGameRoutes(api *gin.RouterGroup, repo *graph.Repository, log *zap.Logger) {
	games := api.Group("/games")

	games.GET("/search", func(c *gin.Context) {
		results, err := repo.SearchGames(
			c.Request.Context(),
			c.Query("searchText"),
			c.QueryArray("genres"),
			c.QueryArray("developers"),
			c.QueryArray("mechanics"),
			intQuery(c, "maxResults", 0),
		)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, results)
	})

	games.GET("/all", func(c *gin.Context) {
		results, err := repo.GetAllGames(c.Request.Context(), intQuery(c, "maxResults", 1000))
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, results)
	})

	games.GET("/filters", func(c *gin.Context) {
		// Three independent distinct-name queries; run them concurrently
		g, ctx := errgroup.WithContext(c.Request.Context())

		var genres, mechanics, developers []string
		g.Go(func() error {
			var err error
			genres, err = repo.ListGenres(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			mechanics, err = repo.ListMechanics(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			developers, err = repo.ListDevelopers(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"genres":     genres,
			"mechanics":  mechanics,
			"developers": developers,
		})
	})

	games.GET("/users", func(c *gin.Context) {
		users, err := repo.ListUsers(c.Request.Context())
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, users)
	})

	games.GET("/users/:username/likes", func(c *gin.Context) {
		likes, err := repo.GetUserLikes(c.Request.Context(), c.Param("username"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, likes)
	})

	games.GET("/recommendations/:username", func(c *gin.Context) {
		recs, err := repo.Recommend(c.Request.Context(), c.Param("username"), graph.DefaultRecommendationLimit)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, recs)
	})

	games.GET("/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
			return
		}

		game, err := repo.GetGameByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, game)
	})

	games.POST("/create", func(c *gin.Context) {
		var req gameUpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := repo.UpsertGame(
			c.Request.Context(),
			req.Game,
			req.DeveloperName,
			req.GenreNames,
			req.MechanicNames,
			c.Query("performedBy"),
		)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	games.PUT("/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
			return
		}

		var update graph.Game
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// An update is the same write as a create: the id comes from the
		// path and omitted attribute lists mean "replace with empty".
		update.ID = id
		developerName := ""
		if len(update.Developers) > 0 {
			developerName = update.Developers[0]
		}

		updated, err := repo.UpsertGame(
			c.Request.Context(),
			update,
			developerName,
			update.Genres,
			update.Mechanics,
			c.Query("performedBy"),
		)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	games.DELETE("/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
			return
		}

		if err := repo.DeleteGame(c.Request.Context(), id, c.Query("performedBy")); err != nil {
			writeError(c, log, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	games.POST("/wishlist/:gameId", func(c *gin.Context) {
		gameID, err := strconv.Atoi(c.Param("gameId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
			return
		}

		if err := repo.AddLike(c.Request.Context(), c.Query("username"), gameID); err != nil {
			writeError(c, log, err)
			return
		}
		c.Status(http.StatusOK)
	})

	games.DELETE("/wishlist/:gameId", func(c *gin.Context) {
		gameID, err := strconv.Atoi(c.Param("gameId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
			return
		}

		if err := repo.RemoveLike(c.Request.Context(), c.Query("username"), gameID); err != nil {
			writeError(c, log, err)
			return
		}
		c.Status(http.StatusOK)
	})
}

// writeError maps repository errors onto HTTP statuses
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var forbidden *apperrors.ErrForbidden
	if errors.As(err, &forbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}

	var notFound *apperrors.ErrGameNotFound
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	log.Error("Request failed",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func intQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
