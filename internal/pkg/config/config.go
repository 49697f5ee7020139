package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	BcryptCost int    `env:"BCRYPT_COST, default=10"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=todo_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=session_id"`
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
}

type RateLimitConfig struct {
	Limit  int64         `env:"RATE_LIMIT,        default=10"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
