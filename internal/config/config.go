package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort      string
	ShutdownTimeout time.Duration

	// Logging configuration
	LogLevel  slog.Level
	LogFormat string

	// Offline knowledge base; empty means the embedded corpus
	KnowledgePath string

	// OpenAI configuration
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIEmbedModel string

	// Qdrant configuration
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string

	// RAG configuration
	ChunkSize    int
	ChunkOverlap int
	SearchLimit  int
}

// LoadConfig loads configuration from environment variables and command-line flags.
// Flags take precedence over environment variables.
func LoadConfig() (*Config, error) {
	return Parse(flag.CommandLine, os.Args[1:])
}

// Parse defines the configuration flags on fs and parses args
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	serverPort := fs.String("server-port", getEnv("SERVER_PORT", "5001"), "Server port")
	shutdownTimeout := fs.Duration("shutdown-timeout", getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second), "Graceful shutdown timeout")
	logLevel := fs.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", getEnv("LOG_FORMAT", "text"), "Log format (text, json)")
	knowledgePath := fs.String("knowledge-path", getEnv("KNOWLEDGE_PATH", ""), "Offline knowledge base (.yaml or .db); embedded corpus when empty")
	openAIKey := fs.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := fs.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4.1-mini"), "OpenAI model for chat completions")
	openAIEmbedModel := fs.String("openai-embed-model", getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-large"), "OpenAI model for embeddings")
	qdrantHost := fs.String("qdrant-host", getEnv("QDRANT_HOST", "localhost"), "Qdrant host")
	qdrantPort := fs.Int("qdrant-port", getEnvAsInt("QDRANT_PORT", 6334), "Qdrant gRPC port (default: 6334)")
	qdrantCollection := fs.String("qdrant-collection", getEnv("QDRANT_COLLECTION", "study_material"), "Qdrant collection name")
	chunkSize := fs.Int("chunk-size", getEnvAsInt("CHUNK_SIZE", 1000), "Text chunk size in characters")
	chunkOverlap := fs.Int("chunk-overlap", getEnvAsInt("CHUNK_OVERLAP", 200), "Text chunk overlap in characters")
	searchLimit := fs.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 3), "Number of passages used for online answers")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	level, err := parseLevel(*logLevel)
	if err != nil {
		return nil, err
	}

	cfg.ServerPort = *serverPort
	cfg.ShutdownTimeout = *shutdownTimeout
	cfg.LogLevel = level
	cfg.LogFormat = strings.ToLower(*logFormat)
	cfg.KnowledgePath = *knowledgePath
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIEmbedModel = *openAIEmbedModel
	cfg.QdrantHost = *qdrantHost
	cfg.QdrantPort = *qdrantPort
	cfg.QdrantCollection = *qdrantCollection
	cfg.ChunkSize = *chunkSize
	cfg.ChunkOverlap = *chunkOverlap
	cfg.SearchLimit = *searchLimit

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required (set via environment variable or -openai-key flag)")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap must be in [0, %d), got %d", c.ChunkSize, c.ChunkOverlap)
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("search limit must be positive, got %d", c.SearchLimit)
	}
	return nil
}

// NewLogger creates the structured logger described by the configuration
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
