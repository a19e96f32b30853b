package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// ConfigPathEnvVar names the environment variable holding the YAML config path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config holds application configuration values.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Mongo  MongoConfig  `koanf:"mongo"`
	Redis  RedisConfig  `koanf:"redis"`
	JWT    JWTConfig    `koanf:"jwt"`
	Email  EmailConfig  `koanf:"email"`
	AMQP   AMQPConfig   `koanf:"amqp"`
	App    AppConfig    `koanf:"app"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Port            string        `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	// RateLimitRPS is the per-client request budget. Zero disables limiting.
	RateLimitRPS float64 `koanf:"rate_limit_rps"`
}

type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	// Transactions requires a replica set. Standalone servers must set it to false.
	Transactions bool `koanf:"transactions"`
}

// RedisConfig enables the article cache when URL is set.
type RedisConfig struct {
	URL string `koanf:"url"`
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
}

type EmailConfig struct {
	Host         string `koanf:"host"`
	Port         string `koanf:"port"`
	Username     string `koanf:"username"`
	AppPassword  string `koanf:"app_password"`
	From         string `koanf:"from"`
	AdminAddress string `koanf:"admin_address"`
}

// AMQPConfig routes notifications through RabbitMQ when URL is set.
type AMQPConfig struct {
	URL   string `koanf:"url"`
	Queue string `koanf:"queue"`
}

type AppConfig struct {
	BaseURL       string `koanf:"base_url"`
	FacebookAppID string `koanf:"facebook_app_id"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitRPS:    10,
		},
		Mongo: MongoConfig{
			Database:       "inkwell",
			ConnectTimeout: 10 * time.Second,
			Transactions:   true,
		},
		Email: EmailConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		AMQP: AMQPConfig{
			Queue: "inkwell.notifications",
		},
		App: AppConfig{
			BaseURL: "http://localhost:8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers defaults, the optional YAML file at path (or CONFIG_PATH) and
// the environment, in that order of increasing priority.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

var envMappings = map[string]string{
	"port":                 "server.port",
	"shutdown_timeout":     "server.shutdown_timeout",
	"cors_origins":         "server.cors_origins",
	"rate_limit_rps":       "server.rate_limit_rps",
	"mongodb_uri":          "mongo.uri",
	"mongodb_db_name":      "mongo.database",
	"mongodb_transactions": "mongo.transactions",
	"redis_url":            "redis.url",
	"jwt_secret":           "jwt.secret",
	"email_host":           "email.host",
	"email_port":           "email.port",
	"email_username":       "email.username",
	"email_app_password":   "email.app_password",
	"email_from":           "email.from",
	"admin_email":          "email.admin_address",
	"amqp_url":             "amqp.url",
	"amqp_queue":           "amqp.queue",
	"app_base_url":         "app.base_url",
	"facebook_app_id":      "app.facebook_app_id",
	"log_level":            "log.level",
	"log_format":           "log.format",
}

// envTransformFunc maps known environment variables to config paths.
// Unknown variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Mongo.URI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	if c.Mongo.Database == "" {
		errs = append(errs, errors.New("MONGODB_DB_NAME is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.Server.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.Server.RateLimitRPS))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// EmailEnabled reports whether SMTP delivery is configured.
func (c *Config) EmailEnabled() bool {
	return c.Email.Host != "" && c.Email.Username != "" && c.Email.AppPassword != ""
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.App.BaseURL
}

// GetAdminEmail returns the address that receives moderation alerts.
func (c *Config) GetAdminEmail() string {
	if c.Email.AdminAddress != "" {
		return c.Email.AdminAddress
	}
	return c.Email.From
}

func (c *Config) GetFacebookAppID() string {
	return c.App.FacebookAppID
}
