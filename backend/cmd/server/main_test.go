package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authMiddleware("secret123"))
	router.GET("/api/games/all", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"correct key", "secret123", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/games/all", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(corsMiddleware())
	router.GET("/api/games/all", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/games/all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestIntQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeContext := func(rawQuery string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest("GET", "/?"+rawQuery, nil)
		return c
	}

	assert.Equal(t, 30, intQuery(makeContext(""), "maxResults", 30))
	assert.Equal(t, 5, intQuery(makeContext("maxResults=5"), "maxResults", 30))
	assert.Equal(t, 30, intQuery(makeContext("maxResults=abc"), "maxResults", 30))
}

func TestUpsertRequestBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/games/create", func(c *gin.Context) {
		var req gameUpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, req)
	})

	body := `{
		"game": {"id": 1, "title": "Alpha", "releaseYear": 2020},
		"developerName": "Acme",
		"genreNames": ["RPG"],
		"mechanicNames": []
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/games/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var parsed gameUpsertRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Equal(t, 1, parsed.Game.ID)
	assert.Equal(t, "Alpha", parsed.Game.Title)
	assert.Equal(t, "Acme", parsed.DeveloperName)
	assert.Equal(t, []string{"RPG"}, parsed.GenreNames)
}
