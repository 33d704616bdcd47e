package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/improvemycity/portal-go/config"
	"github.com/improvemycity/portal-go/db"
	"github.com/improvemycity/portal-go/internal/api/handlers"
	"github.com/improvemycity/portal-go/internal/api/middleware"
	"github.com/improvemycity/portal-go/internal/api/routes"
	"github.com/improvemycity/portal-go/internal/application"
	"github.com/improvemycity/portal-go/internal/events"
	"github.com/improvemycity/portal-go/internal/otp"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Initialize object storage for complaint photos
	storage.Init()

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
	otpStore := otp.NewRedisStore(rdb, time.Duration(config.OtpTTLMinutes)*time.Minute)

	hub := events.NewHub()
	repos := repository.New(db.DB)
	services := application.New(repos, hub, otpStore)
	h := handlers.New(services, hub)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, h)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
