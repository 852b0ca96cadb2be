package main

import (
	"log"
	"os"

	"data-streams/internal/app"
	"data-streams/internal/config"
	"data-streams/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(os.Stderr, cfg.LogLevel, cfg.JSONLogs)

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
