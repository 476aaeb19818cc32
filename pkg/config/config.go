package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full cobranza.yaml file structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Users     []User          `yaml:"users"`
	PJUD      PJUDConfig      `yaml:"pjud"`
	DocIntel  DocIntelConfig  `yaml:"docintel"`
	Minio     MinioConfig     `yaml:"minio"`
	Log       LogConfig       `yaml:"log"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig holds JWT settings.
type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

// User is a locally provisioned account. The RUT doubles as the login name.
type User struct {
	RUT      string `yaml:"rut"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Group    string `yaml:"group"`
}

// PJUDConfig points the gateway client at the court e-filing service.
type PJUDConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured client timeout.
func (c PJUDConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DocIntelConfig points the gateway client at the document intelligence
// service used for extraction and analysis.
type DocIntelConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIToken       string `yaml:"api_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured client timeout.
func (c DocIntelConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MinioConfig holds the object storage settings for case documents.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RetentionConfig drives the background cleanup loop.
type RetentionConfig struct {
	// Finished cases older than this are soft-deleted.
	CaseRetentionDays int `yaml:"case_retention_days"`
	// Delivered events older than this are removed from the outbox.
	EventTTLHours int `yaml:"event_ttl_hours"`
	// How often the cleanup pass runs.
	IntervalMinutes int `yaml:"interval_minutes"`
}

// EventTTL returns the event retention as a duration.
func (c RetentionConfig) EventTTL() time.Duration {
	return time.Duration(c.EventTTLHours) * time.Hour
}

// Interval returns the cleanup cadence as a duration.
func (c RetentionConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// Load reads the YAML file at path, expands {{.ENV_VAR}} references,
// applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path, "users", len(cfg.Users))
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Auth.TokenExpireHours == 0 {
		c.Auth.TokenExpireHours = 24
	}
	if c.PJUD.TimeoutSeconds == 0 {
		c.PJUD.TimeoutSeconds = 30
	}
	if c.DocIntel.TimeoutSeconds == 0 {
		c.DocIntel.TimeoutSeconds = 120
	}
	if c.Minio.Bucket == "" {
		c.Minio.Bucket = "cobranza-documentos"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Retention.CaseRetentionDays == 0 {
		c.Retention.CaseRetentionDays = 365
	}
	if c.Retention.EventTTLHours == 0 {
		c.Retention.EventTTLHours = 72
	}
	if c.Retention.IntervalMinutes == 0 {
		c.Retention.IntervalMinutes = 360
	}
}

func (c *Config) validate() error {
	var problems []string
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret must be set")
	}
	if c.PJUD.BaseURL == "" {
		problems = append(problems, "pjud.base_url must be set")
	}
	if c.DocIntel.BaseURL == "" {
		problems = append(problems, "docintel.base_url must be set")
	}
	seen := make(map[string]bool, len(c.Users))
	for _, u := range c.Users {
		if u.RUT == "" || u.Password == "" {
			problems = append(problems, "every user needs a rut and a password")
			break
		}
		if seen[u.RUT] {
			problems = append(problems, fmt.Sprintf("duplicate user rut %q", u.RUT))
		}
		seen[u.RUT] = true
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// FindUser looks up a provisioned account by RUT.
func (c *Config) FindUser(rut string) *User {
	for i := range c.Users {
		if c.Users[i].RUT == rut {
			return &c.Users[i]
		}
	}
	return nil
}

// ValidationError collects every configuration problem so the operator
// sees the full list at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Problems)
}
