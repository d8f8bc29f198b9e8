package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/primebox/storefront/config"
	"github.com/primebox/storefront/internal/handler"
	"github.com/primebox/storefront/internal/middleware"
	"github.com/primebox/storefront/internal/repository"
	"github.com/primebox/storefront/internal/router"
	"github.com/primebox/storefront/internal/service"
	"github.com/primebox/storefront/pkg/database"
	"github.com/primebox/storefront/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	db, err := database.NewPostgresDB(database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed data may already exist; a failed seed is not fatal.
	if err := database.Seed(db); err != nil {
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	planRepo := repository.NewRentalPlanRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	careerRepo := repository.NewCareerRepository(db)

	// Services
	fileService, err := service.NewFileService(cfg.Uploads)
	if err != nil {
		logger.GetLogger().Fatal("Failed to prepare upload directories", zap.Error(err))
	}
	sessionService := service.NewSessionService(cfg.Session)
	userService := service.NewUserService(userRepo, sessionService)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	planService := service.NewRentalPlanService(planRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, cfg.Orders.LeadMaxAge)
	careerService := service.NewCareerService(careerRepo, fileService)

	// Handlers
	storefrontHandler := handler.NewStorefrontHandler(productService, categoryService, planService, orderService)
	authHandler := handler.NewAuthHandler(userService, cfg.Session)
	fileHandler := handler.NewFileHandler(fileService)
	careerHandler := handler.NewCareerHandler(careerService)
	healthHandler := handler.NewHealthHandler(db)
	panelProductHandler := handler.NewPanelProductHandler(productService, fileService)
	panelCategoryHandler := handler.NewPanelCategoryHandler(categoryService, fileService)
	panelPlanHandler := handler.NewPanelPlanHandler(planService)
	panelOrderHandler := handler.NewPanelOrderHandler(orderService)
	panelUserHandler := handler.NewPanelUserHandler(userService)

	sessionMiddleware := middleware.NewSessionMiddleware(sessionService, userService, cfg.Session)

	r := router.NewRouter(
		storefrontHandler,
		authHandler,
		fileHandler,
		careerHandler,
		healthHandler,
		panelProductHandler,
		panelCategoryHandler,
		panelPlanHandler,
		panelOrderHandler,
		panelUserHandler,
		sessionMiddleware,
		cfg,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", cfg.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + cfg.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", cfg.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
