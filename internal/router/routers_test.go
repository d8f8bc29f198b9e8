package router

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/handler"
	"github.com/primebox/storefront/internal/middleware"
	"github.com/primebox/storefront/internal/service"
)

// newTestRouter wires handlers over zero-value services; route
// registration never touches them.
func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessionCfg := config.SessionConfig{
		Secret:     "test-secret-key",
		TokenTTL:   time.Hour,
		CookieName: "prime_session",
	}
	sessions := service.NewSessionService(sessionCfg)
	sessionMw := middleware.NewSessionMiddleware(sessions, nil, sessionCfg)

	return NewRouter(
		handler.NewStorefrontHandler(nil, nil, nil, nil),
		handler.NewAuthHandler(nil, sessionCfg),
		handler.NewFileHandler(nil),
		handler.NewCareerHandler(nil),
		handler.NewHealthHandler(nil),
		handler.NewPanelProductHandler(nil, nil),
		handler.NewPanelCategoryHandler(nil, nil),
		handler.NewPanelPlanHandler(nil),
		handler.NewPanelOrderHandler(nil),
		handler.NewPanelUserHandler(nil),
		sessionMw,
		&config.Config{},
	)
}

func hasRoute(routes gin.RoutesInfo, method, path string) bool {
	for _, route := range routes {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

func TestSetupRoutes_RegistersPublicSurface(t *testing.T) {
	engine := newTestRouter(t).SetupRoutes()
	routes := engine.Routes()

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/files/images/:name"},
		{http.MethodGet, "/shop"},
		{http.MethodGet, "/shop/:slug"},
		{http.MethodPost, "/quote"},
		{http.MethodPost, "/checkout"},
		{http.MethodPost, "/auth/login"},
		{http.MethodGet, "/panel/orders"},
		{http.MethodGet, "/panel/staff"},
	}
	for _, want := range expected {
		if !hasRoute(routes, want.method, want.path) {
			t.Errorf("Expected route %s %s to be registered", want.method, want.path)
		}
	}
}
