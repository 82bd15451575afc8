package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"comedy-houston/internal/clicks"
	"comedy-houston/internal/config"
	"comedy-houston/internal/feed"
	"comedy-houston/internal/feedapi"
	"comedy-houston/internal/logger"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting feed service initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	cache := connectCache(cfg, log)

	if err := os.MkdirAll(filepath.Dir(cfg.Clicks.DBPath), 0755); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to create data directory: %v", err))
	}
	clickDB, err := clicks.OpenDB(cfg.Clicks.DBPath)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open click log: %v", err))
	}
	defer clickDB.Close()
	log.Info("DATABASE", fmt.Sprintf("Click log ready at %s", cfg.Clicks.DBPath))

	handler := feedapi.NewHandler(
		feed.NewStore(cfg.Output.EventsJSONPath),
		cache,
		clicks.NewClickService(clickDB),
		log,
		cfg.Region.WindowDays,
	)

	r := chi.NewRouter()
	r.Get("/healthz", handler.Health)
	r.Get("/events.json", handler.ServeFeed)
	r.Get("/api/events", handler.ListEvents)
	r.Get("/api/stats/clicks", handler.ClickStats)
	r.Get("/shows", handler.ShowsPage)
	r.Get("/go/{id}", handler.RedirectTicket)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("APP", fmt.Sprintf("Feed service listening on %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("APP", fmt.Sprintf("Server error: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("APP", "Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("APP", fmt.Sprintf("Shutdown error: %v", err))
	}
}

func connectCache(cfg *config.Config, log *logger.Logger) *feed.Cache {
	if !cfg.Redis.Enabled {
		log.Info("REDIS", "Feed cache disabled")
		return feed.NewCache(nil, 0)
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("REDIS", fmt.Sprintf("Cache not reachable, serving uncached: %v", err))
		client.Close()
		return feed.NewCache(nil, 0)
	}

	log.Info("REDIS", fmt.Sprintf("Feed cache connected to %s", cfg.Redis.Addr))
	return feed.NewCache(client, cfg.Redis.CacheTTL)
}
