package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	DefaultConfigFile = "config.yaml"
	MinSecretKeyBytes = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"your_jwt_secret_key_here":                   {},
}

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	TimeZone string         `yaml:"timezone"`

	Location *time.Location `yaml:"-"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type AuthConfig struct {
	SecretKey string        `yaml:"secret_key"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Port: 5000, CORSOrigins: []string{"*"}},
		Auth:     AuthConfig{TokenTTL: 7 * 24 * time.Hour},
		Database: DatabaseConfig{Driver: DriverSQLite, Path: filepath.Join("data", "joydairy.db")},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		TimeZone: "UTC",
	}
}

// Load resolves configuration from defaults, an optional YAML file, a .env file
// and the process environment, in that order of precedence.
func Load(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	explicit := true
	if configFile == "" {
		configFile = os.Getenv("JOYDAIRY_CONFIG")
	}
	if configFile == "" {
		configFile = DefaultConfigFile
		explicit = false
	}
	if err := cfg.readFile(configFile, explicit); err != nil {
		return Config{}, err
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) applyEnv() error {
	envOverride(&cfg.Auth.SecretKey, "SECRET_KEY")
	envOverride(&cfg.Database.Driver, "DB_DRIVER")
	envOverride(&cfg.Database.Path, "DB_PATH")
	envOverride(&cfg.Database.DSN, "DB_DSN")
	envOverride(&cfg.TimeZone, "TZ")
	envOverride(&cfg.Log.Level, "LOG_LEVEL")
	envOverride(&cfg.Log.File, "LOG_FILE")

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		cfg.Server.Port = port
	}
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		cfg.Auth.TokenTTL = ttl
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		cfg.Server.CORSOrigins = splitList(raw)
	}
	return nil
}

// Validate checks the resolved values and loads the configured time zone.
func (cfg *Config) Validate() error {
	cfg.Auth.SecretKey = strings.TrimSpace(cfg.Auth.SecretKey)
	if cfg.Auth.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(cfg.Auth.SecretKey)]; insecure {
		return errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(cfg.Auth.SecretKey) < MinSecretKeyBytes {
		return fmt.Errorf("SECRET_KEY must be at least %d characters", MinSecretKeyBytes)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(cfg.Database.Path) == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverMySQL:
		if strings.TrimSpace(cfg.Database.DSN) == "" {
			return errors.New("DB_DSN is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("unsupported log level %q", cfg.Log.Level)
	}

	location, err := time.LoadLocation(strings.TrimSpace(cfg.TimeZone))
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = location
	return nil
}

func (cfg Config) Addr() string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}

func (cfg Config) CORSAllowOrigins() string {
	return strings.Join(cfg.Server.CORSOrigins, ",")
}

func envOverride(dst *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*dst = value
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
