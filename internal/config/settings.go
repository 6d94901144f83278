package config

import (
	_ "embed"
	"encoding/json"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"netsum/internal/support"
)

type Config struct {
	Server struct {
		Port           int   `json:"port"`
		MaxConnections int   `json:"max_connections"`
		MaxBodyBytes   int64 `json:"max_body_bytes"`
	} `json:"server"`

	Auth struct {
		// PasswordHash is a bcrypt hash; login is disabled while empty.
		PasswordHash  string `json:"password_hash"`
		JWTSecret     string `json:"jwt_secret"`
		TokenTTLHours uint32 `json:"token_ttl_hours"`
	} `json:"auth"`

	GeoLite struct {
		// DBPath points at a GeoLite2 Country database; annotation is
		// disabled while empty.
		DBPath string `json:"db_path"`
	} `json:"geolite"`
}

var (
	//go:embed default_settings.json
	defaultConfig []byte

	configValue atomic.Value

	InProductionMode bool
)

func init() {
	configValue.Store(Config{})
}

// Load initializes the configuration from the embedded defaults and
// applies environment overrides on top.
func Load() {
	var cfg Config
	if err := json.Unmarshal(defaultConfig, &cfg); err != nil {
		log.Error("Error unmarshalling default settings", "error", err)
		return
	}

	cfg.Server.Port = support.GetEnvInt("PORT", cfg.Server.Port)
	cfg.Server.MaxConnections = support.GetEnvInt("MAX_CONNECTIONS", cfg.Server.MaxConnections)
	cfg.Auth.PasswordHash = support.GetEnv("AUTH_PASSWORD_HASH", cfg.Auth.PasswordHash)
	cfg.Auth.JWTSecret = support.GetEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.GeoLite.DBPath = support.GetEnv("GEOLITE_DB", cfg.GeoLite.DBPath)

	configValue.Store(cfg)
	log.Debug("Settings loaded")
}

// GetConfig returns the current configuration snapshot.
func GetConfig() Config {
	return configValue.Load().(Config)
}

// SetConfig replaces the current configuration snapshot.
func SetConfig(cfg Config) {
	configValue.Store(cfg)
}

func SetProductionMode(production bool) {
	InProductionMode = production
}

// AuthEnabled reports whether the summarize API requires a bearer
// token. Both the password hash and the signing secret must be set.
func AuthEnabled() bool {
	cfg := GetConfig()
	return cfg.Auth.PasswordHash != "" && cfg.Auth.JWTSecret != ""
}
