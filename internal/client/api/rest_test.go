package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rentora/rentora/internal/client/models"
	"github.com/rentora/rentora/internal/client/repositories/metadata"
	"github.com/rentora/rentora/internal/logging"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return metadata.NewSQLiteRepository(db)
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestREST(t *testing.T, handler http.Handler) (*REST, metadata.Repository) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := setupStore(t)
	c := NewREST(Options{BaseURL: srv.URL, Timeout: 5 * time.Second}, store, discardLogger())
	return c, store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLogin_ParsesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "demo", body.Username)
		require.Equal(t, "demo123", body.Password)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			AccessToken: "tok-123",
			TokenType:   "Bearer",
			User:        models.User{ID: 7, Username: "demo"},
		})
	})

	c, _ := newTestREST(t, mux)

	out, err := c.Login(context.Background(), models.LoginRequest{Username: "demo", Password: "demo123"})
	require.NoError(t, err)
	require.Equal(t, "tok-123", out.AccessToken)
	require.Equal(t, "Bearer", out.TokenType)
	require.Equal(t, int64(7), out.User.ID)
}

func TestAttachCredential_SetsBearerHeader(t *testing.T) {
	var gotAuth, gotDevice string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDevice = r.Header.Get("X-Device-Id")
		writeJSON(t, w, http.StatusOK, models.User{ID: 1, Username: "demo"})
	})

	c, store := newTestREST(t, mux)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyAccessToken, []byte("tok-abc")))
	require.NoError(t, store.Set(ctx, KeyDeviceID, []byte("dev-1")))

	_, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-abc", gotAuth)
	require.Equal(t, "dev-1", gotDevice)
}

func TestAttachCredential_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	sawHeader := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		writeJSON(t, w, http.StatusOK, models.User{})
	})

	c, _ := newTestREST(t, mux)

	_, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.False(t, sawHeader)
}

func TestUnauthorized_ClearsPersistedSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	c, store := newTestREST(t, mux)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyAccessToken, []byte("stale")))
	require.NoError(t, store.Set(ctx, KeyTokenType, []byte("Bearer")))
	require.NoError(t, store.Set(ctx, KeyUserData, []byte(`{"id":1}`)))
	require.NoError(t, store.Set(ctx, KeyDeviceID, []byte("dev-1")))

	_, err := c.CurrentUser(ctx)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, KindServer, apiErr.Kind)
	require.Equal(t, 401, apiErr.Status)
	require.Equal(t, "401", apiErr.Code)
	require.Equal(t, "Invalid credentials", apiErr.Message)

	for _, key := range []string{KeyAccessToken, KeyTokenType, KeyUserData} {
		v, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v, "key %s must be cleared after a 401", key)
	}

	// The device identity is not part of the session.
	v, err := store.Get(ctx, KeyDeviceID)
	require.NoError(t, err)
	require.Equal(t, []byte("dev-1"), v)
}

func TestServerError_FallbackMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vehicles", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c, _ := newTestREST(t, mux)

	_, err := c.Vehicles(context.Background(), nil)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, "Server error occurred", apiErr.Message)
	require.Equal(t, "500", apiErr.Code)
}

func TestNetworkError_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	store := setupStore(t)
	c := NewREST(Options{BaseURL: srv.URL, Timeout: time.Second}, store, discardLogger())
	srv.Close() // nothing is listening anymore

	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	require.True(t, IsNetworkError(err))

	apiErr, _ := AsError(err)
	require.Equal(t, CodeNetworkError, apiErr.Code)
	require.Equal(t, "Network error - please check your connection", apiErr.Message)
}

func TestVehicles_SendsFilters(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /vehicles", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(t, w, http.StatusOK, []models.Vehicle{{ID: 1, Brand: "Toyota"}})
	})

	c, _ := newTestREST(t, mux)

	out, err := c.Vehicles(context.Background(), &models.VehicleFilters{
		Category: "SUV",
		MaxPrice: 120.5,
		MinSeats: 5,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Toyota", out[0].Brand)

	require.Equal(t, []string{"SUV"}, gotQuery["category"])
	require.Equal(t, []string{"120.5"}, gotQuery["maxPrice"])
	require.Equal(t, []string{"5"}, gotQuery["minSeats"])
	require.NotContains(t, gotQuery, "minPrice")
}

func TestEnsureDeviceID_StableAcrossCalls(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, err := EnsureDeviceID(ctx, store)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := EnsureDeviceID(ctx, store)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
