package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/iskandars/NBS-apps/internal/config"
	"github.com/iskandars/NBS-apps/internal/database/postgres"
	"github.com/iskandars/NBS-apps/internal/database/redis"
	"github.com/iskandars/NBS-apps/internal/event"
	"github.com/iskandars/NBS-apps/internal/handlers"
	"github.com/iskandars/NBS-apps/internal/storage"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("log", "nbs_dashboard")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func buildStores(cfg *config.Config) (*storage.Stores, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStores(), nil
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisCfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStores(client), nil
	case config.BackendPostgres:
		db, err := postgres.Connect(cfg.PostgresCfg)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStores(db)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	log.Printf("starting NBS dashboard backend with %s storage", cfg.Backend)

	stores, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to build storage: %v", err)
	}

	if cfg.SeedOnStart {
		if err := storage.Seed(context.Background(), stores); err != nil {
			log.Fatalf("Failed to seed storage: %v", err)
		}
		log.Printf("storage seeded")
	}

	var publisher *event.AlertPublisher
	if cfg.EventsEnabled {
		conn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
		if err != nil {
			log.Printf("alert eventing disabled, RabbitMQ unavailable: %v", err)
		} else {
			defer conn.Close()
			publisher = event.NewAlertPublisher(conn)
		}
	}

	router := handlers.NewRouter(stores, publisher, cfg.RBACEnforce)

	log.Printf("listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
