package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Google integrations
	Google   GoogleConfig
	Vertex   VertexConfig
	Calendar CalendarConfig

	// Request shaping
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleConfig locates the OAuth artifacts shared by Calendar and Gmail.
type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
}

// VertexConfig selects the Vertex AI project, region and model used for
// extraction.
type VertexConfig struct {
	ProjectID string
	Location  string
	Model     string
}

type CalendarConfig struct {
	CalendarID string
}

// RateLimitConfig bounds the model-backed HTTP endpoints.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google OAuth artifacts
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenPath = viper.GetString("google.token_path")
	if creds := viper.GetString("google_credentials_path"); creds != "" {
		cfg.Google.CredentialsPath = creds
	}
	if token := viper.GetString("google_token_path"); token != "" {
		cfg.Google.TokenPath = token
	}

	// Vertex AI
	cfg.Vertex.ProjectID = viper.GetString("vertex.project_id")
	cfg.Vertex.Location = viper.GetString("vertex.location")
	cfg.Vertex.Model = viper.GetString("vertex.model")
	if project := viper.GetString("google_cloud_project"); project != "" {
		cfg.Vertex.ProjectID = project
	}
	if location := viper.GetString("google_cloud_location"); location != "" {
		cfg.Vertex.Location = location
	}

	// Calendar
	cfg.Calendar.CalendarID = viper.GetString("calendar.calendar_id")

	// Rate limiting
	cfg.RateLimit.RPS = viper.GetFloat64("rate_limit.rps")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if cfg.Vertex.ProjectID == "" {
		return nil, fmt.Errorf("vertex.project_id is required (or set GOOGLE_CLOUD_PROJECT)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_path", "token.json")
	viper.SetDefault("vertex.location", "us-central1")
	viper.SetDefault("vertex.model", "gemini-2.0-flash-lite")
	viper.SetDefault("calendar.calendar_id", "primary")
	viper.SetDefault("rate_limit.rps", 1)
	viper.SetDefault("rate_limit.burst", 5)
}
