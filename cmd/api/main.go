package main

import (
	"context"
	"log"
	"net/http"

	"showcase/internal"
	"showcase/internal/api"
	"showcase/internal/config"
	"showcase/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger = internal.NewLogger(appConfig.Logging.Level)

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	if err := appContainer.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	addr := ":" + appConfig.Server.Port
	log.Printf("🚀 Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, api.NewRouter(appContainer.Showcase)); err != nil {
		log.Printf("❌ API server stopped: %v", err)
	}
}
