package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/logo"
	"github.com/ridwanfathin/whatsapp-billing/internal/middleware"
	"github.com/ridwanfathin/whatsapp-billing/internal/session"
	"github.com/ridwanfathin/whatsapp-billing/internal/view"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testToday = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

type testApp struct {
	t         *testing.T
	router    *gin.Engine
	store     *session.Store
	sessionID string
}

func newTestApp(t *testing.T, staticDir string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(session.Config{TTL: time.Hour}, func() *editor.Editor {
		n := 0
		return editor.New(
			editor.WithClock(func() time.Time { return testToday }),
			editor.WithIDGenerator(func() string {
				n++
				return fmt.Sprintf("item-%d", n)
			}),
		)
	}, nil)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	invoiceHandler := NewInvoiceHandler(zap.NewNop())
	pageHandler := NewPageHandler(renderer, logo.NewProber(logo.Config{StaticDir: staticDir}), zap.NewNop())

	router := gin.New()
	invoiceHandler.RegisterPublicRoutes(router)
	pageHandler.RegisterPublicRoutes(router)

	app := router.Group("/")
	app.Use(middleware.Session(middleware.SessionConfig{Store: store}))
	invoiceHandler.RegisterRoutes(app)
	pageHandler.RegisterRoutes(app)

	return &testApp{t: t, router: router, store: store}
}

// do sends a request inside the app's session, starting one on first use
func (a *testApp) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if a.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, a.sessionID)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	if a.sessionID == "" {
		a.sessionID = rec.Header().Get(middleware.SessionHeader)
	}
	return rec
}

func (a *testApp) json(method, target string, payload interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(a.t, err)
		body = bytes.NewReader(raw)
	}
	return a.do(method, target, body, "application/json")
}

func (a *testApp) form(target string, values url.Values) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.do(http.MethodPost, target, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
