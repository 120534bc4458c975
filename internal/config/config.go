package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Graph    GraphConfig
	Keys     APIKeys
	Ai       AIConfig
	Styling  StylingConfig
	Breaker  BreakerConfig
}

type AppConfig struct {
	Name               string
	Version            string
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	CacheDriver        string // "memory" or "redis"
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Connection  string
	AutoMigrate bool
}

type GraphConfig struct {
	URI      string
	User     string
	Password string
	Database string
}

type APIKeys struct {
	GoogleGemini       string
	WardrobeEmbedTopic string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	ImageProvider     string // "gemini" or "disabled"
	ImageModel        string
	PlaceholderImage  string
}

type StylingConfig struct {
	TopK             int
	SimilarityWeight float64
	TagWeight        float64
	RequestTimeout   time.Duration
	GraphTimeout     time.Duration
	VectorTimeout    time.Duration
	ImageTimeout     time.Duration
	TrendCacheTTL    time.Duration
}

type BreakerConfig struct {
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenRequests int
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Name:               getEnv("APP_NAME", "style-weaver"),
			Version:            getEnv("APP_VERSION", "1.0.0"),
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			CacheDriver:        getEnv("CACHE_DRIVER", "memory"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Graph: GraphConfig{
			URI:      getEnv("NEO4J_URI", "bolt://localhost:7687"),
			User:     getEnv("NEO4J_USER", "neo4j"),
			Password: getEnv("NEO4J_PASSWORD", ""),
			Database: getEnv("NEO4J_DATABASE", ""),
		},
		Keys: APIKeys{
			GoogleGemini:       getEnv("GOOGLE_GEMINI_API_KEY", getEnv("GEMINI_API_KEY", "")),
			WardrobeEmbedTopic: getEnv("EMBED_WARDROBE_ITEM_TOPIC_NAME", "EMBED_WARDROBE_ITEM"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			ImageProvider:     getEnv("IMAGE_PROVIDER", "gemini"),
			ImageModel:        getEnv("IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),
			PlaceholderImage:  getEnv("PLACEHOLDER_IMAGE_URL", "https://via.placeholder.com/400x600/f8f9fa/333333?text=Generated+Outfit+Image"),
		},
		Styling: StylingConfig{
			TopK:             getEnvAsInt("STYLE_TOP_K", 5),
			SimilarityWeight: getEnvAsFloat("STYLE_SIMILARITY_WEIGHT", 0.7),
			TagWeight:        getEnvAsFloat("STYLE_TAG_WEIGHT", 0.3),
			RequestTimeout:   getEnvAsDuration("STYLE_REQUEST_TIMEOUT", 60*time.Second),
			GraphTimeout:     getEnvAsDuration("STYLE_GRAPH_TIMEOUT", 3*time.Second),
			VectorTimeout:    getEnvAsDuration("STYLE_VECTOR_TIMEOUT", 5*time.Second),
			ImageTimeout:     getEnvAsDuration("STYLE_IMAGE_TIMEOUT", 30*time.Second),
			TrendCacheTTL:    getEnvAsDuration("STYLE_TREND_CACHE_TTL", 10*time.Minute),
		},
		Breaker: BreakerConfig{
			FailureThreshold: getEnvAsInt("BREAKER_FAILURE_THRESHOLD", 5),
			OpenTimeout:      getEnvAsDuration("BREAKER_OPEN_TIMEOUT", 30*time.Second),
			HalfOpenRequests: getEnvAsInt("BREAKER_HALF_OPEN_REQUESTS", 1),
		},
	}
}

// Validate checks values the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error

	s := c.Styling
	if s.TopK <= 0 {
		errs = append(errs, fmt.Errorf("STYLE_TOP_K must be positive, got %d", s.TopK))
	}
	if s.SimilarityWeight < 0 || s.TagWeight < 0 {
		errs = append(errs, errors.New("style weights must be non-negative"))
	}
	if diff := s.SimilarityWeight + s.TagWeight - 1; diff > 1e-6 || diff < -1e-6 {
		errs = append(errs, fmt.Errorf("style weights must sum to 1, got %v", s.SimilarityWeight+s.TagWeight))
	}
	if s.SimilarityWeight <= s.TagWeight {
		errs = append(errs, errors.New("STYLE_SIMILARITY_WEIGHT must be greater than STYLE_TAG_WEIGHT"))
	}
	for name, d := range map[string]time.Duration{
		"STYLE_REQUEST_TIMEOUT": s.RequestTimeout,
		"STYLE_GRAPH_TIMEOUT":   s.GraphTimeout,
		"STYLE_VECTOR_TIMEOUT":  s.VectorTimeout,
		"STYLE_IMAGE_TIMEOUT":   s.ImageTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	if c.App.CacheDriver != "memory" && c.App.CacheDriver != "redis" {
		errs = append(errs, fmt.Errorf("CACHE_DRIVER must be memory or redis, got %q", c.App.CacheDriver))
	}
	if c.Breaker.FailureThreshold <= 0 {
		errs = append(errs, errors.New("BREAKER_FAILURE_THRESHOLD must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("5s") or plain seconds ("5").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
