package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env         string            `yaml:"env"` // "dev" or "prod"
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Auth        AuthConfig        `yaml:"auth"`
	Site        SiteConfig        `yaml:"site"`
	Email       EmailConfig       `yaml:"email"`
	Contact     ContactConfig     `yaml:"contact"`
	Credentials CredentialsConfig `yaml:"credentials"`
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  string `yaml:"token_ttl"`
}

type SiteConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

type EmailConfig struct {
	Endpoint   string `yaml:"endpoint"`
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
	ToName     string `yaml:"to_name"`
	ToEmail    string `yaml:"to_email"`
}

type ContactConfig struct {
	RateLimit      int    `yaml:"rate_limit"`      // submissions per IP per hour
	AllowedOrigins string `yaml:"allowed_origins"` // comma-separated
}

type CredentialsConfig struct {
	Path string `yaml:"path"`
}

func Load() *Config {
	env := os.Getenv("PORTFOLIO_ENV")
	if env == "" {
		env = "dev" // Default to dev for safety
	}

	cfg := &Config{
		Env:      env,
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "_workspace/db/portfolio.db"},
		Log:      LogConfig{Level: "info"},
		Auth:     AuthConfig{TokenTTL: "1h"},
		Site:     SiteConfig{Name: "Pepe Ruiz", BaseURL: "https://peperuiz.dev"},
		Email:    EmailConfig{Endpoint: "https://api.emailjs.com/api/v1.0/email/send"},
		Contact:  ContactConfig{RateLimit: 5},
	}

	data, err := os.ReadFile("config.yaml")
	if err == nil {
		yaml.Unmarshal(data, cfg)
	}

	// Environment overrides (highest priority)
	if v := os.Getenv("PORTFOLIO_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PORTFOLIO_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("PORTFOLIO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORTFOLIO_AUTH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORTFOLIO_AUTH_TOKEN_TTL"); v != "" {
		cfg.Auth.TokenTTL = v
	}
	if v := os.Getenv("PORTFOLIO_SITE_BASE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := os.Getenv("EMAILJS_SERVICE_ID"); v != "" {
		cfg.Email.ServiceID = v
	}
	if v := os.Getenv("EMAILJS_TEMPLATE_ID"); v != "" {
		cfg.Email.TemplateID = v
	}
	if v := os.Getenv("EMAILJS_PUBLIC_KEY"); v != "" {
		cfg.Email.PublicKey = v
	}
	if v := os.Getenv("PORTFOLIO_CONTACT_ORIGINS"); v != "" {
		cfg.Contact.AllowedOrigins = v
	}
	if v := os.Getenv("PORTFOLIO_CREDENTIALS_PATH"); v != "" {
		cfg.Credentials.Path = v
	}

	return cfg
}
