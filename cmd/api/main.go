package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/betselot-m/kindcart/internal/handler/http"
	redisclient "github.com/betselot-m/kindcart/internal/infrastructure/cache"
	"github.com/betselot-m/kindcart/internal/infrastructure/config"
	"github.com/betselot-m/kindcart/internal/infrastructure/database"
	"github.com/betselot-m/kindcart/internal/infrastructure/jwt"
	"github.com/betselot-m/kindcart/internal/infrastructure/logger"
	"github.com/betselot-m/kindcart/internal/infrastructure/repository/mongodb"
	"github.com/betselot-m/kindcart/internal/infrastructure/store"
	"github.com/betselot-m/kindcart/internal/infrastructure/uuidgen"
	"github.com/betselot-m/kindcart/internal/infrastructure/validator"
	"github.com/betselot-m/kindcart/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(appConfig.MongoDBName)
	productRepo := mongodb.NewProductRepository(db)
	likeStore := mongodb.NewLikeStore(mongoClient.Client, db)

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	uuidGenerator := uuidgen.NewGenerator()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret)

	// Dependency Injection: Usecases
	productService := usecase.NewProductService(productRepo, uuidGenerator, appLogger)
	likeService := usecase.NewLikeService(likeStore, likeStore, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		productCache := store.NewProductCacheStore(rdb)
		productService.SetProductCache(productCache)
		likeService.SetProductCache(productCache)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(productService, likeService, jwtManager, appConfig.RateLimit)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
