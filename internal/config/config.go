package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server       ServerConfig
	Ticketmaster TicketmasterConfig
	Eventbrite   EventbriteConfig
	Region       RegionConfig
	Redis        RedisConfig
	Clicks       ClicksConfig
	Output       OutputConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type TicketmasterConfig struct {
	APIKey   string
	BaseURL  string
	DMAID    string
	VenueIDs []VenueRef
	PageSize int
}

type EventbriteConfig struct {
	Token      string
	BaseURL    string
	Organizers []OrganizerRef
	MaxPages   int
}

// VenueRef names a Ticketmaster venue searched in addition to the DMA sweep.
type VenueRef struct {
	ID   string
	Name string
}

// OrganizerRef names an Eventbrite organizer whose listings are pulled.
type OrganizerRef struct {
	ID   string
	Name string
}

type RegionConfig struct {
	CenterLat   float64
	CenterLon   float64
	RadiusMiles float64
	WindowDays  int
}

type RedisConfig struct {
	Addr     string
	Enabled  bool
	CacheTTL time.Duration
}

type ClicksConfig struct {
	DBPath string
}

type OutputConfig struct {
	EventsJSONPath string
	IndexHTMLPath  string
	TemplatePath   string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Ticketmaster: TicketmasterConfig{
			APIKey:  getEnv("TICKETMASTER_API_KEY", ""),
			BaseURL: getEnv("TM_BASE_URL", "https://app.ticketmaster.com/discovery/v2/events.json"),
			DMAID:   getEnv("TM_DMA_ID", "324"),
			VenueIDs: []VenueRef{
				{ID: getEnv("TM_VENUE_ID_IMPROV", "KovZpZAJledA"), Name: "Houston Improv"},
			},
			PageSize: getEnvInt("TM_PAGE_SIZE", 200),
		},
		Eventbrite: EventbriteConfig{
			Token:   getEnv("EVENTBRITE_TOKEN", ""),
			BaseURL: getEnv("EB_BASE_URL", "https://www.eventbriteapi.com/v3"),
			Organizers: []OrganizerRef{
				{ID: getEnv("EB_ORGANIZER_RIOT", "29979960920"), Name: "The Riot Comedy Club"},
				{ID: getEnv("EB_ORGANIZER_SECRET_GROUP", "20138725138"), Name: "The Secret Group"},
			},
			MaxPages: getEnvInt("EB_MAX_PAGES", 10),
		},
		Region: RegionConfig{
			CenterLat:   getEnvFloat("REGION_CENTER_LAT", 29.7604),
			CenterLon:   getEnvFloat("REGION_CENTER_LON", -95.3698),
			RadiusMiles: getEnvFloat("REGION_RADIUS_MILES", 100),
			WindowDays:  getEnvInt("EVENT_WINDOW_DAYS", 90),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			CacheTTL: time.Duration(getEnvInt("FEED_CACHE_TTL_MINUTES", 10)) * time.Minute,
		},
		Clicks: ClicksConfig{
			DBPath: getEnv("CLICKS_DB_PATH", "data/clicks.db"),
		},
		Output: OutputConfig{
			EventsJSONPath: getEnv("EVENTS_JSON_PATH", "events.json"),
			IndexHTMLPath:  getEnv("INDEX_HTML_PATH", "web/index.html"),
			TemplatePath:   getEnv("TEMPLATE_PATH", "web/index.html"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
