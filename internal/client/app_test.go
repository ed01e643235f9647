package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/config"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/store"
)

const (
	testFallbackToken = "fallback-token"
	testSessionToken  = "session-token"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{FallbackToken: testFallbackToken},
		Adapter: config.ClientAdapter{BaseURL: baseURL, RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{Backend: config.BackendMemory},
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig, kv store.KeyValueStore) *App {
	t.Helper()
	if kv == nil {
		kv = store.NewMemoryStore()
	}
	app, err := newApp(cfg, kv, logger.Nop())
	require.NoError(t, err)
	app.status = io.Discard
	return app
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// newBackend serves a small slice of the backend API under /api.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello/echo/{msg}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"code":0,"data":"`+chi.URLParam(r, "msg")+`"}`)
		})
		r.Post("/user/login", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Authorization", "Bearer "+testSessionToken)
			writeJSON(w, http.StatusOK, `{"code":0,"msg":"ok"}`)
		})
		r.Get("/user/me", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testSessionToken {
				writeJSON(w, http.StatusOK, `{"code":401,"msg":"not logged in"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"code":0,"data":{"name":"alice"}}`)
		})
		r.Post("/user/logout", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"code":0}`)
		})
		r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusTeapot, `{"msg":"short and stout"}`)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewApp_DefaultBaseURL(t *testing.T) {
	app := newTestApp(t, testConfig(""), nil)

	want, err := config.NormalizeBaseURL(config.DefaultBaseURL)
	require.NoError(t, err)
	assert.Equal(t, want, app.BaseURL())
}

func TestNewApp_ExplicitBeatsPersisted(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(store.BaseURLKey, []byte("http://persisted.test/api")))

	app := newTestApp(t, testConfig("http://explicit.test/api/"), kv)
	assert.Equal(t, "http://explicit.test/api", app.BaseURL())

	app = newTestApp(t, testConfig(""), kv)
	assert.Equal(t, "http://persisted.test/api", app.BaseURL())
}

func TestNewApp_InvalidPersistedBaseURL(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(store.BaseURLKey, []byte("ftp://persisted.test")))

	app := newTestApp(t, testConfig(""), kv)

	want, err := config.NormalizeBaseURL(config.DefaultBaseURL)
	require.NoError(t, err)
	assert.Equal(t, want, app.BaseURL())
}

func TestNewApp_InvalidExplicitBaseURL(t *testing.T) {
	app, err := newApp(testConfig("ftp://explicit.test"), store.NewMemoryStore(), logger.Nop())
	require.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
	assert.Nil(t, app)
}

func TestNewApp_SeedsFallbackToken(t *testing.T) {
	app := newTestApp(t, testConfig("http://backend.test"), nil)
	assert.Equal(t, testFallbackToken, app.Token())

	// уже сохранённый токен не перезаписывается
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(store.TokenKey, []byte("stored")))
	app = newTestApp(t, testConfig("http://backend.test"), kv)
	assert.Equal(t, "stored", app.Token())
}

func TestNewApp_FileBackendPersistsAcrossRestarts(t *testing.T) {
	srv := newBackend(t)
	cfg := testConfig("")
	cfg.Storage = config.ClientStorage{Backend: config.BackendFile, Dir: t.TempDir()}

	app, err := NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.SetBaseURL(srv.URL+"/api/"))
	app.SetToken("Bearer kept")
	require.NoError(t, app.Close())

	app, err = NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, srv.URL+"/api", app.BaseURL())
	assert.Equal(t, "kept", app.Token())
}

func TestNewApp_UnknownBackend(t *testing.T) {
	cfg := testConfig("")
	cfg.Storage.Backend = "tape"

	app, err := NewApp(context.Background(), cfg, logger.Nop())
	require.ErrorIs(t, err, store.ErrUnknownBackend)
	assert.Nil(t, app)
}

// ── Base URL ─────────────────────────────────────────────────────────────────

func TestApp_SetBaseURL(t *testing.T) {
	kv := store.NewMemoryStore()
	app := newTestApp(t, testConfig("http://old.test/api"), kv)

	t.Run("empty input is ignored", func(t *testing.T) {
		require.NoError(t, app.SetBaseURL("   "))
		assert.Equal(t, "http://old.test/api", app.BaseURL())

		_, err := kv.Get(store.BaseURLKey)
		assert.ErrorIs(t, err, store.ErrNoSuchKey)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		err := app.SetBaseURL("ftp://new.test")
		require.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
		assert.Equal(t, "http://old.test/api", app.BaseURL())
	})

	t.Run("valid input is persisted and applied", func(t *testing.T) {
		require.NoError(t, app.SetBaseURL("new.test/api//"))
		assert.Equal(t, "http://new.test/api", app.BaseURL())

		value, err := kv.Get(store.BaseURLKey)
		require.NoError(t, err)
		assert.Equal(t, "http://new.test/api", string(value))
	})
}

func TestApp_SetBaseURL_RetargetsRequestsAndCookie(t *testing.T) {
	var gotAuth string
	var gotCookie *http.Cookie

	r := chi.NewRouter()
	r.Get("/v2/hello/echo/{msg}", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCookie, _ = r.Cookie(store.TokenCookieName)
		writeJSON(w, http.StatusOK, `{"code":0,"data":"pong"}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	app := newTestApp(t, testConfig("http://old.test/api"), nil)
	app.SetToken("moved")
	require.NoError(t, app.SetBaseURL(srv.URL+"/v2"))

	payload, err := app.Services().EchoService.Echo(context.Background(), "ping")
	require.NoError(t, err)

	var data string
	require.NoError(t, payload.DecodeData(&data))
	assert.Equal(t, "pong", data)
	assert.Equal(t, "Bearer moved", gotAuth)
	require.NotNil(t, gotCookie)
	assert.Equal(t, "moved", gotCookie.Value)
}

// ── Token accessors ──────────────────────────────────────────────────────────

func TestApp_TokenAccessors(t *testing.T) {
	app := newTestApp(t, testConfig("http://backend.test"), nil)

	app.SetToken("  Bearer abc  ")
	assert.Equal(t, "abc", app.Token())

	app.SetToken("bearer ")
	assert.Empty(t, app.Token(), "an empty credential clears the store")

	app.SetToken("xyz")
	app.ClearToken()
	assert.Empty(t, app.Token())
}

func TestApp_InspectToken(t *testing.T) {
	cfg := testConfig("http://backend.test")
	cfg.App.FallbackToken = config.DefaultFallbackToken
	app := newTestApp(t, cfg, nil)

	info, err := app.InspectToken()
	require.NoError(t, err)
	assert.Equal(t, "1988197886547525633", info.Subject)
	assert.Equal(t, "RS256", info.Algorithm)

	// без сохранённого токена проверяется запасной
	app.ClearToken()
	info, err = app.InspectToken()
	require.NoError(t, err)
	assert.Equal(t, "1988197886547525633", info.Subject)

	app.SetToken("not-a-jwt")
	_, err = app.InspectToken()
	assert.Error(t, err)
}

func TestApp_Request(t *testing.T) {
	srv := newBackend(t)
	app := newTestApp(t, testConfig(srv.URL+"/api"), nil)

	_, err := app.Request(context.Background(), "/teapot", adapter.RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, "short and stout", err.Error())
}

func TestApp_Close(t *testing.T) {
	app := newTestApp(t, testConfig("http://backend.test"), nil)
	assert.NoError(t, app.Close())
}
