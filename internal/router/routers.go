package router

import (
	"github.com/gin-gonic/gin"
	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/handler"
	"github.com/primebox/storefront/internal/middleware"
)

// Router wires handlers and middleware into the HTTP surface: the
// public storefront, the auth endpoints and the session-gated panel.
type Router struct {
	storefrontHandler *handler.StorefrontHandler
	authHandler       *handler.AuthHandler
	fileHandler       *handler.FileHandler
	careerHandler     *handler.CareerHandler
	healthHandler     *handler.HealthHandler

	productHandler  *handler.PanelProductHandler
	categoryHandler *handler.PanelCategoryHandler
	planHandler     *handler.PanelPlanHandler
	orderHandler    *handler.PanelOrderHandler
	userHandler     *handler.PanelUserHandler

	sessionMw *middleware.SessionMiddleware
	config    *config.Config
}

func NewRouter(
	storefront *handler.StorefrontHandler,
	auth *handler.AuthHandler,
	files *handler.FileHandler,
	career *handler.CareerHandler,
	health *handler.HealthHandler,
	products *handler.PanelProductHandler,
	categories *handler.PanelCategoryHandler,
	plans *handler.PanelPlanHandler,
	orders *handler.PanelOrderHandler,
	users *handler.PanelUserHandler,
	sessionMw *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		storefrontHandler: storefront,
		authHandler:       auth,
		fileHandler:       files,
		careerHandler:     career,
		healthHandler:     health,
		productHandler:    products,
		categoryHandler:   categories,
		planHandler:       plans,
		orderHandler:      orders,
		userHandler:       users,
		sessionMw:         sessionMw,
		config:            cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if !r.config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	router.GET("/health", r.healthHandler.HealthCheck)
	router.GET("/files/images/:name", r.fileHandler.ServeImage)

	r.storefrontRoutes(router)
	r.authRoutes(router)
	r.panelRoutes(router)

	return router
}
