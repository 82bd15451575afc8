package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"comedy-houston/internal/config"
	"comedy-houston/internal/feed"
	"comedy-houston/internal/logger"
	"comedy-houston/internal/pipeline"
	"comedy-houston/internal/providers"
	"comedy-houston/internal/render"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "=== Comedy Houston — Event Fetcher ===")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	runner := pipeline.NewRunner([]providers.Provider{
		providers.NewTicketmasterClient(cfg.Ticketmaster, log),
		providers.NewEventbriteClient(cfg.Eventbrite, log),
	}, cfg.Region, log)

	result := runner.Run(ctx)

	if err := render.WriteFeedJSON(cfg.Output.EventsJSONPath, result); err != nil {
		log.Fatal("OUTPUT", fmt.Sprintf("Feed write failed: %v", err))
	}
	log.Info("OUTPUT", fmt.Sprintf("Wrote %s (%d events)", cfg.Output.EventsJSONPath, result.TotalEvents))

	// The static page is best-effort; a template problem never rolls
	// back the feed that is already on disk.
	if err := render.GeneratePage(cfg.Output.TemplatePath, cfg.Output.IndexHTMLPath, result.Events, result.LastUpdated); err != nil {
		log.Error("OUTPUT", fmt.Sprintf("HTML generation failed: %v", err))
		log.Info("OUTPUT", "Page will load events.json at runtime instead")
	} else {
		log.Info("OUTPUT", fmt.Sprintf("Wrote %s", cfg.Output.IndexHTMLPath))
	}

	invalidateCache(cfg, log)

	log.Info("APP", "Done")
}

// invalidateCache drops the served-feed cache so the feed service picks
// up this run immediately. Redis being down is not a fetch failure.
func invalidateCache(cfg *config.Config, log *logger.Logger) {
	if !cfg.Redis.Enabled {
		return
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("REDIS", fmt.Sprintf("Cache not reachable, skipping invalidation: %v", err))
		return
	}

	feed.NewCache(client, cfg.Redis.CacheTTL).Invalidate()
	log.Info("REDIS", "Feed cache invalidated")
}
