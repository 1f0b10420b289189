package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Rin0913/healthping/internal/app/server"
	"github.com/Rin0913/healthping/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	if err := server.Run(ctx, cfg, http.DefaultClient); err != nil {
		log.Fatalf("[ERROR] server exited with error: %v", err)
	}

	log.Println("[INFO] See you!")
}
