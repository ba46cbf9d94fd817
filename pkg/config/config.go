package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var GlobalConfig *Config

// Config global configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Firestore FirestoreConfig `yaml:"firestore"`
	Redis     RedisConfig     `yaml:"redis"`
	Session   SessionConfig   `yaml:"session"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Port          int    `yaml:"port"`
	Mode          string `yaml:"mode"`           // debug, release
	AdminPassword string `yaml:"admin_password"` // shared secret for the login gate
}

// FirestoreConfig document store configuration
type FirestoreConfig struct {
	ProjectID       string            `yaml:"project_id"`
	CredentialsFile string            `yaml:"credentials_file"` // service account key file (optional)
	CredentialsJSON string            `yaml:"credentials_json"` // service account key as raw JSON (optional)
	Collections     CollectionsConfig `yaml:"collections"`
}

// CollectionsConfig collection names in the document store
type CollectionsConfig struct {
	Batches       string `yaml:"batches"`
	Cases         string `yaml:"cases"`
	OperatorStats string `yaml:"operator_stats"`
	Operators     string `yaml:"operators"` // sub-collection under each operator_stats/{date} document
}

// RedisConfig Redis configuration, empty addr keeps sessions in memory
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SessionConfig login session configuration
type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	Secure     bool   `yaml:"secure"` // set the Secure flag on the session cookie
}

// DashboardConfig dashboard presentation configuration
type DashboardConfig struct {
	Timezone string        `yaml:"timezone"` // anchors "today" for the daily window
	Groups   []GroupConfig `yaml:"groups"`   // group panels, in display order

	LiveRefreshSeconds int `yaml:"live_refresh_seconds"` // push interval of the live feed
}

// LiveRefresh push interval of the live dashboard feed
func (d DashboardConfig) LiveRefresh() time.Duration {
	return time.Duration(d.LiveRefreshSeconds) * time.Second
}

// GroupConfig one group panel
type GroupConfig struct {
	Name string `yaml:"name"`
	Flag string `yaml:"flag"`
}

// LoggerConfig logger configuration
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

// LoggerFileConfig logger file configuration
type LoggerFileConfig struct {
	Path string `yaml:"path"`
}

// Init initializes configuration
func Init() error {
	// .env is optional
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		return err
	}

	GlobalConfig = cfg
	return nil
}

// Load reads the YAML file at path (a missing file is not an error), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	validateAndApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Env vars override YAML values
func applyEnvOverrides(cfg *Config) {
	envOverride(&cfg.Server.AdminPassword, "ADMIN_PASSWORD")
	envOverrideInt(&cfg.Server.Port, "SERVER_PORT")
	envOverride(&cfg.Server.Mode, "GIN_MODE")
	envOverride(&cfg.Firestore.ProjectID, "FIRESTORE_PROJECT_ID")
	envOverride(&cfg.Firestore.CredentialsFile, "FIREBASE_CREDS_FILE")
	envOverride(&cfg.Firestore.CredentialsJSON, "FIREBASE_CREDS")
	envOverride(&cfg.Redis.Addr, "REDIS_ADDR")
	envOverride(&cfg.Redis.Password, "REDIS_PASSWORD")
	envOverride(&cfg.Dashboard.Timezone, "MONITOR_TIMEZONE")
	envOverride(&cfg.Logger.Level, "LOG_LEVEL")
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func validateAndApplyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}

	c := &cfg.Firestore.Collections
	if c.Batches == "" {
		c.Batches = "ew_batches"
	}
	if c.Cases == "" {
		c.Cases = "ew_cases"
	}
	if c.OperatorStats == "" {
		c.OperatorStats = "ew_operator_stats"
	}
	if c.Operators == "" {
		c.Operators = "operators"
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "monitor_session"
	}

	if cfg.Dashboard.Timezone == "" {
		cfg.Dashboard.Timezone = "Europe/Warsaw"
	}
	if cfg.Dashboard.LiveRefreshSeconds <= 0 {
		cfg.Dashboard.LiveRefreshSeconds = 30
	}
	if len(cfg.Dashboard.Groups) == 0 {
		cfg.Dashboard.Groups = []GroupConfig{
			{Name: "DE", Flag: "🇩🇪"},
			{Name: "FR", Flag: "🇫🇷"},
			{Name: "UKPL", Flag: "🇬🇧"},
		}
	}

	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Output == "" {
		cfg.Logger.Output = "console"
	}
}

// Validate checks settings the service cannot start without
func (c *Config) Validate() error {
	if c.Server.AdminPassword == "" {
		return fmt.Errorf("server.admin_password (ADMIN_PASSWORD) is required")
	}
	if c.Firestore.ProjectID == "" && !c.Firestore.HasCredentials() {
		return fmt.Errorf("firestore.project_id (FIRESTORE_PROJECT_ID) is required without credentials")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if (c.Logger.Output == "file" || c.Logger.Output == "both") && c.Logger.File.Path == "" {
		return fmt.Errorf("logger.file.path is required for output %q", c.Logger.Output)
	}
	return nil
}

// HasCredentials reports whether an explicit service account key is configured
func (f FirestoreConfig) HasCredentials() bool {
	return f.CredentialsJSON != "" || f.CredentialsFile != ""
}

// Location returns the dashboard timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard.timezone %q: %w", c.Dashboard.Timezone, err)
	}
	return loc, nil
}
