package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Minio  MinioConfig  `yaml:"minio"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	App    AppConfig    `yaml:"app"`
	Users  []User       `yaml:"users"`
}

type StoreConfig struct {
	// MaxCases caps the in-memory session count, 0 = unlimited.
	MaxCases int `yaml:"max_cases"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// Per-minute request budgets: one for the API overall, a tighter
	// one for binder generation.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	ExportPerMinute   int `yaml:"export_per_minute"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig carries the fixed texts embedded into every export.
type AppConfig struct {
	Version          string `yaml:"version"`
	SupportEmail     string `yaml:"support_email"`
	LegalDisclaimer  string `yaml:"legal_disclaimer"`
	ExportDisclaimer string `yaml:"export_disclaimer"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Tenant   string `yaml:"tenant"`
}

// Default disclaimer texts. Overridable from config, but every
// generated document carries them.
const (
	DefaultVersion      = "2.4.0"
	DefaultSupportEmail = "support@claimpilot.example.com"

	DefaultLegalDisclaimer = "ClaimPilot is not a law firm and does not provide legal advice. " +
		"The documents in this package are self-help templates prepared from information " +
		"you entered. They have not been reviewed by an attorney, and using them does not " +
		"create an attorney-client relationship. For legal advice about your situation, " +
		"consult a licensed attorney in your state."

	DefaultExportDisclaimer = "This package was generated automatically from your intake " +
		"answers and has not been verified for accuracy or completeness. Court forms, " +
		"filing fees, and claim limits change; confirm all requirements with your local " +
		"court clerk before filing."
)

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RequestsPerMinute == 0 {
		cfg.Server.RequestsPerMinute = 100
	}
	if cfg.Server.ExportPerMinute == 0 {
		cfg.Server.ExportPerMinute = 10
	}
	if cfg.Minio.ExpireDays == 0 {
		cfg.Minio.ExpireDays = 7
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	ApplyAppDefaults(&cfg.App)

	GlobalConfig = &cfg
	return &cfg, nil
}

// ApplyAppDefaults fills empty app fields with the fixed defaults.
func ApplyAppDefaults(app *AppConfig) {
	if app.Version == "" {
		app.Version = DefaultVersion
	}
	if app.SupportEmail == "" {
		app.SupportEmail = DefaultSupportEmail
	}
	if app.LegalDisclaimer == "" {
		app.LegalDisclaimer = DefaultLegalDisclaimer
	}
	if app.ExportDisclaimer == "" {
		app.ExportDisclaimer = DefaultExportDisclaimer
	}
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
