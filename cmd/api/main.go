package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/kwheeler7/license_seats/internal/adapter/handler"
	natsnotifier "github.com/kwheeler7/license_seats/internal/adapter/notifier/nats"
	"github.com/kwheeler7/license_seats/internal/adapter/repository/postgres"
	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/services"
	"github.com/kwheeler7/license_seats/internal/platform/database"
)

func loadEnv(filepath string) {
	file, err := os.Open(filepath)

	if err != nil {
		log.Println("No .env file found, using OS environment variables.")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read .env file: %v\n", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func main() {
	loadEnv(".env")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbConfig := database.Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", ""),
		DBName:   envOr("DB_NAME", "license_seats"),
	}

	db, err := database.NewPostgresDB(dbConfig)

	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	redisHost := envOr("REDIS_HOST", "localhost")
	redisPort := envOr("REDIS_PORT", "6379")

	log.Printf("Connecting to Redis at %s:%s...", redisHost, redisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	publisher, err := natsnotifier.NewPublisher(envOr("NATS_URL", "nats://localhost:4222"), logger)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer publisher.Close()

	maxSeats := envIntOr("MAX_SEATS", 100)
	thresholds := domain.UsageThresholds{
		WarningPct:  envFloatOr("SEAT_WARNING_PCT", domain.DefaultThresholds().WarningPct),
		CriticalPct: envFloatOr("SEAT_CRITICAL_PCT", domain.DefaultThresholds().CriticalPct),
	}

	licenseRepo := postgres.NewLicenseRepository(db)
	giftRepo := postgres.NewGiftRepository(db)
	userRepo := postgres.NewUserRepository(db)
	usageRepo := postgres.NewUsageRepository(db)

	allocationService := services.NewAllocationService(
		licenseRepo, giftRepo, userRepo, usageRepo, publisher, redisClient, maxSeats, logger)

	usageService := services.NewUsageService(usageRepo, publisher, redisClient, thresholds, logger)

	licenseHandler := handler.NewLicenseHandler(allocationService, usageService, maxSeats)

	mux := http.NewServeMux()

	mux.HandleFunc("/licenses/assign", licenseHandler.AssignLicense)

	mux.HandleFunc("/gifts/redeem", licenseHandler.RedeemGift)

	mux.HandleFunc("/usage", licenseHandler.GetUsage)

	mux.HandleFunc("/healthz", licenseHandler.Health)

	mux.Handle("/metrics", promhttp.Handler())

	port := envOr("PORT", "8080")

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
