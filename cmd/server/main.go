package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rajeshpandey9807/radhira-pos-backend/config"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/controller"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/db"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/router"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting RADHIRA POS Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"dialect":     cfg.Database.Dialect,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (no-op against externally managed schemas)
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Resolve the dialect adapter once; every dialect-sensitive code
	// path goes through it.
	adapter, err := dialect.Resolve(db.GetDB())
	if err != nil {
		logger.Fatal("Failed to resolve database dialect", err)
	}

	// Initialize repositories
	businessTypeRepo := repository.NewLookupRepository[model.BusinessType, *model.BusinessType](db.GetDB(), "business_type")
	industryTypeRepo := repository.NewLookupRepository[model.IndustryType, *model.IndustryType](db.GetDB(), "industry_type")
	registrationTypeRepo := repository.NewLookupRepository[model.RegistrationType, *model.RegistrationType](db.GetDB(), "registration_type")
	stateRepo := repository.NewLookupRepository[model.State, *model.State](db.GetDB(), "state")
	categoryRepo := repository.NewLookupRepository[model.Category, *model.Category](db.GetDB(), "category")
	roleRepo := repository.NewRoleRepository(db.GetDB())
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	partyRepo := repository.NewPartyRepository(db.GetDB())
	profileRepo := repository.NewBusinessProfileRepository(db.GetDB(), adapter)
	saleRepo := repository.NewSaleRepository(db.GetDB())
	dashboardRepo := repository.NewDashboardRepository(db.GetDB(), adapter)

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.Session.Secret,
		cfg.Session.DefaultExpiry,
		cfg.Session.RememberExpiry,
	)
	businessTypeService := service.NewLookupService[model.BusinessType, *model.BusinessType](businessTypeRepo, adapter, "business_type")
	industryTypeService := service.NewLookupService[model.IndustryType, *model.IndustryType](industryTypeRepo, adapter, "industry_type")
	registrationTypeService := service.NewLookupService[model.RegistrationType, *model.RegistrationType](registrationTypeRepo, adapter, "registration_type")
	stateService := service.NewLookupService[model.State, *model.State](stateRepo, adapter, "state")
	categoryService := service.NewLookupService[model.Category, *model.Category](categoryRepo, adapter, "category")
	roleService := service.NewRoleService(roleRepo, adapter)
	userService := service.NewUserService(userRepo, adapter)
	productService := service.NewProductService(productRepo, adapter)
	partyService := service.NewPartyService(partyRepo, adapter)
	profileService := service.NewBusinessProfileService(profileRepo)
	saleService := service.NewSaleService(saleRepo, adapter)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.Session)
	lookups := router.LookupControllers{
		BusinessTypes:     controller.NewLookupController(businessTypeService, "Business type"),
		IndustryTypes:     controller.NewLookupController(industryTypeService, "Industry type"),
		RegistrationTypes: controller.NewLookupController(registrationTypeService, "Registration type"),
		States:            controller.NewLookupController(stateService, "State"),
		Categories:        controller.NewLookupController(categoryService, "Category"),
		Roles:             controller.NewRoleController(roleService),
	}
	userController := controller.NewUserController(userService)
	productController := controller.NewProductController(productService)
	partyController := controller.NewPartyController(partyService)
	profileController := controller.NewBusinessProfileController(profileService)
	saleController := controller.NewSaleController(saleService)
	dashboardController := controller.NewDashboardController(dashboardService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Session.Secret, cfg.Session.CookieName)

	// Setup router
	r := router.NewRouter(
		authController,
		lookups,
		userController,
		productController,
		partyController,
		profileController,
		saleController,
		dashboardController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
