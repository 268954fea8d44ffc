package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receivables_api/internal/config"
	"receivables_api/internal/handlers"
	"receivables_api/internal/repository/receivables"
	"receivables_api/internal/server"
	"receivables_api/internal/transport/webhook"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("connection check failed: %v", err)
	}
	fmt.Println("all connections OK")

	store := receivables.NewStore(cfg.Mongo)
	h := handlers.New(store, cfg.Mongo, cfg.S3)
	notifier := webhook.NewNotifier(cfg.WebhookURL, &http.Client{})

	srv := server.NewServer(cfg.Port, h, notifier)

	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := cfg.Mongo.Close(closeCtx); err != nil {
		log.Printf("mongo close: %v", err)
	}
}
