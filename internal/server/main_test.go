package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		Env:                  "test",
		Port:                 "0",
		IndexCacheTTLSeconds: 20,
	}
}

// setupTestServer builds a Server on an in-memory database with the real
// route table. redisClient may be nil; the page cache then renders live.
func setupTestServer(t *testing.T, redisClient *redis.Client) (*Server, *fiber.App) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	s, err := NewServerWithDeps(testConfig(), db, redisClient)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return s, app
}

// setupTestServerWithRedis wires a miniredis instance as the cache backend.
func setupTestServerWithRedis(t *testing.T) (*Server, *fiber.App, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s, app := setupTestServer(t, client)
	return s, app, mr
}

func registerUser(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	user, err := s.userService.Register(context.Background(), username,
		fmt.Sprintf("%s@example.com", username), "password123")
	require.NoError(t, err)
	return user
}

func bearerFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return "Bearer " + token
}

func createPost(t *testing.T, s *Server, authorID uint, text string, groupID *uint) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: authorID, GroupID: groupID}
	require.NoError(t, s.postRepo.Create(context.Background(), post))
	return post
}

func createGroup(t *testing.T, s *Server, title, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: title, Slug: slug}
	require.NoError(t, s.groupRepo.Create(context.Background(), group))
	return group
}

func doRequest(t *testing.T, app *fiber.App, method, target, auth string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, int(10*time.Second/time.Millisecond))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
