package main

import (
	"fmt"
	"log"
	"net/http"

	"roadtrip/internal/config"
	"roadtrip/internal/handlers"
	"roadtrip/internal/middleware"
	"roadtrip/internal/repositories/mongodb"
	"roadtrip/internal/services"
	"roadtrip/pkg/database"
	"roadtrip/pkg/logger"
	"roadtrip/pkg/maps"
	"roadtrip/pkg/media"
	"roadtrip/pkg/storage"
	"roadtrip/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env when present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database)
	tripRepo := mongodb.NewTripRepository(db.Database)
	groupRepo := mongodb.NewGroupRepository(db.Database)
	postRepo := mongodb.NewPostRepository(db.Database)

	// External providers
	routeProvider := maps.NewOSRMProvider(cfg.Maps.OSRM.BaseURL)
	poiProvider := maps.NewOverpassProvider(cfg.Maps.Overpass.BaseURL)

	var geocoder maps.Geocoder
	if cfg.Maps.GoogleMaps.APIKey != "" {
		geocoder, err = maps.NewGoogleGeocoder(cfg.Maps.GoogleMaps.APIKey)
		if err != nil {
			log.Fatalf("Failed to initialize geocoder: %v", err)
		}
	}

	store, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	var assembler media.Assembler
	switch cfg.Media.Provider {
	case "off":
		assembler = media.Unavailable{}
	default:
		assembler = media.NewFFmpegAssembler(cfg.Media.FrameRate)
	}

	// Services
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, cfg.Security.JWTAccessTokenTTL, appLogger)
	tripService := services.NewTripService(tripRepo)
	plannerService := services.NewPlannerService(tripRepo, routeProvider, poiProvider, geocoder, appLogger)
	vlogService := services.NewVlogService(tripRepo, store, assembler, appLogger)
	groupService := services.NewGroupService(groupRepo, postRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	tripHandler := handlers.NewTripHandler(tripService)
	plannerHandler := handlers.NewPlannerHandler(plannerService)
	vlogHandler := handlers.NewVlogHandler(vlogService)
	groupHandler := handlers.NewGroupHandler(groupService)

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler)
		routes.SetupTripRoutes(v1, tripHandler, plannerHandler, cfg.Security.JWTSecret)
		routes.SetupVlogRoutes(v1, vlogHandler, cfg.Security.JWTSecret)
		routes.SetupGroupRoutes(v1, groupHandler, cfg.Security.JWTSecret)
	}
	routes.SetupVideoRoutes(router, vlogHandler)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func buildStorage(cfg *config.Config) (storage.StorageProvider, error) {
	switch cfg.Storage.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
	}
}
