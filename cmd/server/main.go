package main

import (
	"context"                   // context package is needed for Redis operations
	"log"                       // log package is needed for logging
	"medtrack/internal/api"     // Custom package for API handlers
	"medtrack/internal/config"  // Custom package for configuration
	"medtrack/internal/notify"  // Custom package for booking notifications
	"medtrack/internal/session" // Custom package for session revocation
	"medtrack/internal/store"   // Custom package for persistence

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The session signing secret is mandatory
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Booking notifications go to Kafka when brokers are configured,
	// otherwise to the application log
	var notifier notify.Notifier = notify.LogNotifier{}
	if len(cfg.KafkaBrokers) > 0 {
		pub, err := notify.NewKafkaPublisher(cfg.KafkaBrokers)
		if err != nil {
			logrus.Fatalf("failed to connect to Kafka: %v", err)
		}
		p := notify.NewPublisher(pub, cfg.NotifyTopic)
		defer p.Close()
		notifier = p
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin with the full route table
	r := api.NewRouter(api.Deps{
		Users:        store.NewUsers(db),                  // Credential store
		Appointments: store.NewAppointments(db),           // Appointment store
		Notifier:     notifier,                            // Booking notifications
		Revocations:  session.NewRevocations(redisClient), // Logged-out sessions
		JWTSecret:    cfg.JWTSecret,                       // Session signing secret
		Templates:    "web/templates/*.html",              // Page templates
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
