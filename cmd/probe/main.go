package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rin0913/healthping/internal/app/probe"
	"github.com/Rin0913/healthping/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	if err := probe.Run(ctx, cfg, http.DefaultClient, os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		stop()
		os.Exit(1)
	}
}
