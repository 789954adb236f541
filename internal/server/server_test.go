package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/config"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/middleware"
	"github.com/ridwanfathin/whatsapp-billing/internal/model"
	"github.com/ridwanfathin/whatsapp-billing/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoHandler struct{}

func (echoHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.SessionIDFrom(c))
	})
}

func (echoHandler) RegisterPublicRoutes(router gin.IRouter) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong%s", middleware.SessionIDFrom(c))
	})
}

func newTestServer(t *testing.T) (*Server, *session.Store) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CNP.jpg"), []byte("not really a jpeg"), 0o644))

	cfg := &config.Config{
		Host:       "127.0.0.1",
		Port:       0,
		GinMode:    gin.TestMode,
		SessionTTL: time.Hour,
		StaticDir:  dir,
	}
	store := session.NewStore(session.Config{TTL: cfg.SessionTTL}, func() *editor.Editor { return editor.New() }, nil)
	return NewServer(cfg, zap.NewNop(), store, echoHandler{}), store
}

func TestHealth(t *testing.T) {
	srv, store := newTestServer(t)
	store.Create()

	rec := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var health model.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.Sessions)
	assert.Empty(t, rec.Header().Get(middleware.SessionHeader))
}

func TestHandlersRunInsideSession(t *testing.T) {
	srv, store := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Header().Get(middleware.SessionHeader), rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, 1, store.Len())
}

func TestStaticFallback(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/CNP.jpg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not really a jpeg", rec.Body.String())

	rec = httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIDocsRedirect(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api-docs/index.html", rec.Header().Get("Location"))
}

func TestPublicRoutesSkipSession(t *testing.T) {
	srv, store := newTestServer(t)

	for i := 0; i < 1000; i++ {
		rec := httptest.NewRecorder()
		srv.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
		assert.Empty(t, rec.Header().Get(middleware.SessionHeader))
		assert.Empty(t, rec.Result().Cookies())
	}
	assert.Zero(t, store.Len())
}

func TestServerBindsLoopbackByDefault(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	cfg := config.FromEnv()
	cfg.GinMode = gin.TestMode
	store := session.NewStore(session.Config{}, func() *editor.Editor { return editor.New() }, nil)

	srv := NewServer(cfg, zap.NewNop(), store)
	assert.Equal(t, "127.0.0.1:8080", srv.httpServer.Addr)
}

func TestCrossOriginRequestsGetNoCORSGrant(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
