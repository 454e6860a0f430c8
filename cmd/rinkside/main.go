package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/rinkside/internal/api/rest"
	"github.com/fortuna/rinkside/internal/api/websocket"
	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"github.com/fortuna/rinkside/internal/service"
	"github.com/joho/godotenv"
)

const (
	serviceName    = "rinkside"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NHL stats views service", serviceName, serviceVersion)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	config := loadConfig()

	client := nhl.New(config.NHLAPIBase)
	teamService := service.NewTeamService(client)
	gameService := service.NewGameService(client)
	statsService := service.NewStatsService(client)

	registry := service.BuildRegistry(teamService, gameService, statsService)
	log.Printf("✓ Registered %d tools", len(registry.List()))

	restServer := rest.NewServer(config.RESTPort, registry, serviceVersion)
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ REST API server listening on :%s", config.RESTPort)

	wsServer := websocket.NewServer(gameService, config.PollInterval)
	go func() {
		log.Printf("Starting WebSocket server on port %s", config.WSPort)
		if err := wsServer.Start(config.WSPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	log.Printf("✓ WebSocket server listening on :%s", config.WSPort)
	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%s", config.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Printf("Shutting down %s gracefully...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

type Config struct {
	NHLAPIBase   string
	RESTPort     string
	WSPort       string
	PollInterval time.Duration
}

func loadConfig() Config {
	return Config{
		NHLAPIBase:   getEnv("NHL_API_BASE", nhl.BaseURL),
		RESTPort:     getEnv("REST_PORT", "8080"),
		WSPort:       getEnv("WS_PORT", "8081"),
		PollInterval: getDurationEnv("SCOREBOARD_POLL_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration in %s, using default %v", key, defaultValue)
	}
	return defaultValue
}
