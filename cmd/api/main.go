package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/brirusapps/waterpic-core/internal/adapters/cache"
	adapterHTTP "github.com/brirusapps/waterpic-core/internal/adapters/handler/http"
	"github.com/brirusapps/waterpic-core/internal/adapters/repository"
	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/services"
	"github.com/brirusapps/waterpic-core/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")

	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}
	jwtIssuer := getEnv("JWT_ISSUER", "waterpic-core")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rdb, err := cache.NewRedisClient(
		getEnv("REDIS_HOST", "localhost"),
		getEnv("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		redisDB,
	)
	if err != nil {
		log.Printf("Warning: Redis unavailable, running degraded (no cache, no widget pub/sub): %v", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	userRepo := repository.NewPostgresUserRepository(db)
	intakeRepo := repository.NewPostgresIntakeRepository(db)

	var settingsRepo domain.SettingsRepository = repository.NewPostgresSettingsRepository(db)
	var snapshotStore domain.SnapshotStore = repository.NewInMemorySnapshotStore()
	var publisher domain.RefreshPublisher

	if rdb != nil {
		settingsRepo = repository.NewCachedSettingsRepository(settingsRepo, rdb)
		snapshotStore = cache.NewRedisSnapshotStore(rdb)
		publisher = cache.NewRedisRefreshPublisher(rdb)
	}

	saver := workers.NewSnapshotSaver(intakeRepo, settingsRepo, snapshotStore, workers.DefaultSaveDelay)
	defer saver.Stop()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	refresher := workers.NewRefresher(publisher)
	refresher.Start(workerCtx)

	clock := domain.UTCClock{}

	tokenService := services.NewTokenService(jwtSecret, jwtIssuer, 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	intakeService := services.NewIntakeService(intakeRepo, settingsRepo, clock, saver, refresher)
	settingsService := services.NewSettingsService(settingsRepo, saver, refresher)
	statsService := services.NewStatsService(intakeRepo, settingsRepo, snapshotStore, clock)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService),
		IntakeHandler:   adapterHTTP.NewIntakeHandler(intakeService),
		SettingsHandler: adapterHTTP.NewSettingsHandler(settingsService),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService),
		TokenService:    tokenService,
		DB:              db,
		Redis:           rdb,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("WaterPic core running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
