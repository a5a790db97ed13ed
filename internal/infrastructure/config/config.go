package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/profiledesk/profile-directory/internal/infrastructure/llm"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=3001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SessionStore string   `env:"SESSION_STORE,      default=memory"`
	CORSOrigins  []string `env:"CORS_ALLOW_ORIGINS, default=*"`

	Mongo MongoConfig
	Redis RedisConfig
	AI    AIConfig
}

type MongoConfig struct {
	URI        string        `env:"MONGODB_URI,        default=mongodb://localhost:27017"`
	Database   string        `env:"MONGODB_DB,         default=mcp_profiles"`
	Collection string        `env:"MONGODB_COLLECTION, default=profiles"`
	Timeout    time.Duration `env:"MONGODB_TIMEOUT,    default=10s"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL, default=redis://localhost:6379/0"`
}

// AIConfig configures the Ark model behind the chat classifier. Chat runs in
// "not configured" mode unless both APIKey and Model are set.
type AIConfig struct {
	APIKey      string  `env:"ARK_API_KEY"`
	Model       string  `env:"ARK_MODEL"`
	BaseURL     string  `env:"ARK_BASE_URL,    default=https://ark.cn-beijing.volces.com/api/v3"`
	Region      string  `env:"ARK_REGION,      default=cn-beijing"`
	Temperature float64 `env:"ARK_TEMPERATURE, default=0.1"`
	MaxTokens   int     `env:"ARK_MAX_TOKENS,  default=512"`
}

func (c AIConfig) Ark() llm.ArkConfig {
	return llm.ArkConfig{
		APIKey:      c.APIKey,
		Model:       c.Model,
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}

func (c AIConfig) Enabled() bool {
	return c.Ark().Enabled()
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("config: SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.SessionStore)
	}
	return nil
}
