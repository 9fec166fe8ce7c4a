//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres"
	exerciserepo "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/exercise"
	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/user"
	wordrepo "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/stepspeak-backend/internal/adapter/provider/genapi"
	authpkg "github.com/heartmarshall/stepspeak-backend/internal/auth"
	"github.com/heartmarshall/stepspeak-backend/internal/config"
	authsvc "github.com/heartmarshall/stepspeak-backend/internal/service/auth"
	exercisesvc "github.com/heartmarshall/stepspeak-backend/internal/service/exercise"
	statssvc "github.com/heartmarshall/stepspeak-backend/internal/service/stats"
	usersvc "github.com/heartmarshall/stepspeak-backend/internal/service/user"
	wordssvc "github.com/heartmarshall/stepspeak-backend/internal/service/words"
	"github.com/heartmarshall/stepspeak-backend/internal/transport/rest"
)

// testServer wraps the full application stack over a real database.
// The generation provider runs without an API key, so enrichment
// degrades to placeholders and /api/words/generate fails upstream.
type testServer struct {
	URL    string
	Client *http.Client
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := userrepo.New(pool)
	words := wordrepo.New(pool)
	exercises := exerciserepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := authpkg.NewJWTManager("e2e-test-secret-at-least-32-characters", "stepspeak", time.Hour)
	generator := genapi.NewClient("", logger)

	authCfg := config.AuthConfig{PasswordHashCost: 4}
	genCfg := config.GeneratorConfig{
		EnrichTimeout:   5 * time.Second,
		GenerateTimeout: 5 * time.Second,
		MaxConcurrent:   4,
		DefaultCount:    15,
	}
	limits := config.LimitsConfig{SessionSize: 5, MaxDistractor: 3, WordsPageSize: 10}

	router := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authsvc.NewService(logger, users, words, jwt, tx, authCfg), logger),
		Users:     rest.NewUsersHandler(usersvc.NewService(logger, users, words), logger),
		Words:     rest.NewWordsHandler(wordssvc.NewService(logger, words, users, generator, tx, genCfg, limits), logger),
		Exercises: rest.NewExercisesHandler(exercisesvc.NewService(logger, users, words, exercises, tx, limits), logger),
		Stats:     rest.NewStatsHandler(statssvc.NewService(logger, users, words, exercises), logger),
		Health:    rest.NewHealthHandler(pool, "e2e"),
		Logger:    logger,
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowedHeaders: "Content-Type,X-User-Id"},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// doJSON performs a request with an optional JSON body and optional
// X-User-Id header, decoding the JSON response into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path, userID string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

// registerUser creates a fresh user and returns its id.
func (ts *testServer) registerUser(t *testing.T, email string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "secret1",
		"name":     "E2E",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "register response missing user: %v", body)
	id, _ := user["id"].(string)
	require.NotEmpty(t, id)
	return id
}
