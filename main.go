package main

import (
	"context"
	"errors"
	"log"
	oshttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/http"
	"storefront/internal/stubs"
	"storefront/internal/views"
	"storefront/internal/ws"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	renderer, err := views.NewRenderer(stubs.UserData())
	if err != nil {
		return err
	}

	hub := ws.NewHub(ctx, renderer, ws.HubConfig{
		SessionTTL:         cfg.SessionTTL,
		TransitionDuration: cfg.TransitionDuration,
	})

	wsServer := ws.NewServer(ctx, hub, cfg.DefaultLanguage)
	apiHandlers := api.New(hub, renderer, cfg.DefaultLanguage)
	apiServer := http.NewAPIServer(apiHandlers, wsServer, cfg.Addr)

	g, gCtx := errgroup.WithContext(ctx)

	// Start API Server
	g.Go(func() error {
		log.Printf("Storefront available at %s", cfg.BaseURL)
		err := apiServer.Start()
		if err != nil && err != oshttp.ErrServerClosed {
			return err
		}
		return nil
	})

	// Wait for context cancellation (signal)
	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
		return nil
	})

	return g.Wait()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Application error: %v", err)
	}
}
