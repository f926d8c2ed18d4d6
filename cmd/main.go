package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"leasing-service/internal/blob"
	"leasing-service/internal/converter"
	"leasing-service/internal/handler"
	"leasing-service/internal/identity"
	"leasing-service/internal/lookup"
	"leasing-service/internal/middleware"
	"leasing-service/internal/model"
	"leasing-service/internal/repository"
	"leasing-service/internal/service"
	"leasing-service/pkg/config"
	"leasing-service/pkg/database"
	"leasing-service/pkg/jwtutil"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("leasing")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	// Initialize database connection
	db, err := database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database")
	}

	// Run migrations for leasing models
	err = database.MigrateModels(db,
		&model.User{},
		&model.Owner{},
		&model.Lessee{},
		&model.PropertyType{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Contract{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database models")
	}

	// Initialize JWT utility
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})

	// Initialize image storage
	images, err := blob.NewDiskStore(conf.Storage.ImageDir, conf.Storage.ImageBaseURL)
	if err != nil {
		log.Fatal("Failed to initialize image storage")
	}

	// Repositories
	ownerRepo := repository.NewOwnerRepository(db)
	lesseeRepo := repository.NewLesseeRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	propertyTypeRepo := repository.NewPropertyTypeRepository(db)
	propertyImageRepo := repository.NewPropertyImageRepository(db)
	contractRepo := repository.NewContractRepository(db)

	// Services
	provider := identity.NewGormProvider(db, jwt)
	lookups := lookup.NewService(lesseeRepo, propertyTypeRepo)
	conv := converter.NewService(ownerRepo, lesseeRepo, propertyRepo, propertyTypeRepo, lookups)
	ownerService := service.NewOwnerService(db, ownerRepo, provider)
	lesseeService := service.NewLesseeService(db, lesseeRepo, provider)
	propertyService := service.NewPropertyService(db, propertyRepo, propertyImageRepo, conv, images)
	propertyTypeService := service.NewPropertyTypeService(propertyTypeRepo)
	contractService := service.NewContractService(db, contractRepo, propertyRepo, conv, lookups)

	// Handlers
	authHandler := handler.NewAuthHandler(provider)
	ownerHandler := handler.NewOwnerHandler(ownerService)
	lesseeHandler := handler.NewLesseeHandler(lesseeService, lookups)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	propertyTypeHandler := handler.NewPropertyTypeHandler(propertyTypeService, lookups)
	contractHandler := handler.NewContractHandler(contractService)

	// Initialize Echo framework
	e := echo.New()

	// Apply middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Metrics and health endpoints
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.GET("/health", handler.HealthCheck)

	// Uploaded property images
	e.Static(conf.Storage.ImageBaseURL, conf.Storage.ImageDir)

	// Public routes
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// Management routes - require the Manager role
	api := e.Group("")
	api.Use(middleware.JWTAuthMiddleware(jwt))
	api.Use(middleware.RequireRole(identity.RoleManager))

	api.GET("/owners", ownerHandler.List)
	api.POST("/owners", ownerHandler.Register)
	api.GET("/owners/:id", ownerHandler.Details)
	api.PUT("/owners/:id", ownerHandler.Edit)
	api.DELETE("/owners/:id", ownerHandler.Delete)

	api.GET("/lessees", lesseeHandler.List)
	api.POST("/lessees", lesseeHandler.Register)
	api.GET("/lessees/options", lesseeHandler.Options)
	api.GET("/lessees/:id", lesseeHandler.Details)
	api.PUT("/lessees/:id", lesseeHandler.Edit)
	api.DELETE("/lessees/:id", lesseeHandler.Delete)

	api.GET("/property-types", propertyTypeHandler.List)
	api.POST("/property-types", propertyTypeHandler.Add)
	api.GET("/property-types/options", propertyTypeHandler.Options)
	api.PUT("/property-types/:id", propertyTypeHandler.Edit)
	api.DELETE("/property-types/:id", propertyTypeHandler.Delete)

	api.POST("/properties", propertyHandler.Add)
	api.GET("/properties/:id", propertyHandler.Details)
	api.GET("/properties/:id/view", propertyHandler.View)
	api.PUT("/properties/:id", propertyHandler.Edit)
	api.DELETE("/properties/:id", propertyHandler.Delete)
	api.POST("/properties/:id/images", propertyHandler.AddImage)
	api.DELETE("/images/:id", propertyHandler.DeleteImage)

	api.GET("/contracts", contractHandler.List)
	api.GET("/properties/:id/contracts/new", contractHandler.NewForm)
	api.POST("/properties/:id/contracts", contractHandler.Add)
	api.GET("/contracts/:id", contractHandler.Details)
	api.GET("/contracts/:id/view", contractHandler.View)
	api.PUT("/contracts/:id", contractHandler.Edit)
	api.DELETE("/contracts/:id", contractHandler.Delete)

	// Start server
	log.Info("Starting leasing-service on port " + conf.Server.Port)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
