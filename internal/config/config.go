package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIURL     = "https://api.github.com"
	DefaultLogLevel   = "error"
	DefaultCacheTTL   = 60
	DefaultServerAddr = ":3000"
)

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// HistoryConfig enables the SQLite history store when Path is set.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// CacheConfig enables the Redis response cache when RedisAddr is set.
type CacheConfig struct {
	RedisAddr  string `toml:"redis_addr"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Config holds all github-activity configuration. The zero value plus
// defaults describes the plain interactive client with nothing persisted.
type Config struct {
	APIURL  string        `toml:"api_url"`
	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
}

// LoadFrom reads configuration from the given TOML file path.
// If the file does not exist, defaults are returned without error.
// Environment variables take precedence over file values:
//   - GITHUB_ACTIVITY_API_URL     overrides api_url
//   - GITHUB_ACTIVITY_LOG_LEVEL   overrides log.level
//   - GITHUB_ACTIVITY_LOG_FILE    overrides log.file
//   - GITHUB_ACTIVITY_HISTORY_DB  overrides history.path
//   - GITHUB_ACTIVITY_REDIS_ADDR  overrides cache.redis_addr
//   - GITHUB_ACTIVITY_CACHE_TTL   overrides cache.ttl_seconds
//   - GITHUB_ACTIVITY_SERVER_ADDR overrides server.addr
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

// DefaultConfigPath returns GITHUB_ACTIVITY_CONFIG if set, otherwise
// ~/.config/github-activity/config.toml.
func DefaultConfigPath() string {
	if v := os.Getenv("GITHUB_ACTIVITY_CONFIG"); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "github-activity", "config.toml")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GITHUB_ACTIVITY_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("GITHUB_ACTIVITY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GITHUB_ACTIVITY_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("GITHUB_ACTIVITY_HISTORY_DB"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("GITHUB_ACTIVITY_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("GITHUB_ACTIVITY_CACHE_TTL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLSeconds = n
		}
	}
	if v := os.Getenv("GITHUB_ACTIVITY_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Cache.TTLSeconds <= 0 {
		cfg.Cache.TTLSeconds = DefaultCacheTTL
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
}
