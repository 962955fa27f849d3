package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// Store backends for saved games
const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
)

// appConfig is shared by every command. Flags default to TACTICS_*
// environment variables, which may come from a .env file.
type appConfig struct {
	LogLevel    string
	Seed        int64
	Store       string
	RedisAddr   string
	DatabaseURL string
	Theme       string
	Telemetry   bool
}

// Validate checks the combination of flags
func (c *appConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("store", c.Store, []string{storeMemory, storeRedis, storePostgres}, vb)
	errors.ValidateEnum("log-level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)

	if c.Store == storeRedis && c.RedisAddr == "" {
		vb.RequiredField("redis-addr")
	}
	if c.Store == storePostgres && c.DatabaseURL == "" {
		vb.RequiredField("database-url")
	}
	if c.Theme != "" && !entities.Theme(c.Theme).Valid() {
		vb.InvalidField("theme", "unknown theme "+c.Theme)
	}

	return vb.Build()
}

func (c *appConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var cfg = &appConfig{}

// bindFlags registers the persistent flags. Defaults are read when the
// command tree is built, after .env has been loaded.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", envString("TACTICS_LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	flags.Int64Var(&cfg.Seed, "seed", envInt("TACTICS_SEED", 0), "dice seed; 0 uses a random seed")
	flags.StringVar(&cfg.Store, "store", envString("TACTICS_STORE", storeMemory), "saved game store: memory, redis, postgres")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", envString("TACTICS_REDIS_ADDR", "localhost:6379"), "redis address")
	flags.StringVar(&cfg.DatabaseURL, "database-url", envString("TACTICS_DATABASE_URL", ""), "postgres connection string")
	flags.StringVar(&cfg.Theme, "theme", envString("TACTICS_THEME", string(entities.ThemePrairie)), "board theme")
	flags.BoolVar(&cfg.Telemetry, "telemetry", envBool("TACTICS_TELEMETRY", false), "export traces over OTLP")
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
