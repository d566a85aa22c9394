// Package config loads runtime settings from a .env file and the process environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	StoreMemory = "memory"
	StoreRedis  = "redis"

	MailSMTP = "smtp"
	MailLog  = "log"
)

type Config struct {
	Port      string
	BodyLimit int

	DBDriver    string
	DatabaseURL string

	VerificationStore string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	VerificationCodeTTL   time.Duration
	VerificationSweepSpec string

	RequireVerifiedEmail  bool
	JWTSecret             string
	VerificationTicketTTL time.Duration

	StrictStatusTransitions bool
	BcryptCost              int

	// MailTransport is MailSMTP or MailLog. MailLog only writes messages to
	// the log and is meant for local development.
	MailTransport string
	SMTP          SMTPConfig

	Cloudinary CloudinaryConfig

	CORSOrigins    string
	LogLevel       string
	LogDevelopment bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Enabled reports whether enough settings are present to dial an SMTP server.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.Port != 0
}

type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Folder       string
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// Defaults returns the development configuration used before the environment is applied.
func Defaults() *Config {
	return &Config{
		Port:                  "3000",
		BodyLimit:             50 * 1024 * 1024,
		DBDriver:              DriverPostgres,
		VerificationStore:     StoreMemory,
		VerificationCodeTTL:   10 * time.Minute,
		VerificationSweepSpec: "@every 5m",
		VerificationTicketTTL: 15 * time.Minute,
		BcryptCost:            bcrypt.DefaultCost,
		MailTransport:         MailSMTP,
		CORSOrigins:           "*",
		LogLevel:              "info",
		Cloudinary:            CloudinaryConfig{Folder: "edumate/teachers"},
	}
}

// Load reads .env (if present) and overlays environment variables on the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from an arbitrary lookup function.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Defaults()
	p := parser{lookup: lookup}

	p.str("PORT", &cfg.Port)
	p.integer("BODY_LIMIT", &cfg.BodyLimit)
	p.str("DB_DRIVER", &cfg.DBDriver)
	p.str("DATABASE_URL", &cfg.DatabaseURL)
	p.str("VERIFICATION_STORE", &cfg.VerificationStore)
	p.str("REDIS_ADDR", &cfg.RedisAddr)
	p.str("REDIS_PASSWORD", &cfg.RedisPassword)
	p.integer("REDIS_DB", &cfg.RedisDB)
	p.duration("VERIFICATION_CODE_TTL", &cfg.VerificationCodeTTL)
	p.str("VERIFICATION_SWEEP_SPEC", &cfg.VerificationSweepSpec)
	p.boolean("REQUIRE_VERIFIED_EMAIL", &cfg.RequireVerifiedEmail)
	p.str("JWT_SECRET", &cfg.JWTSecret)
	p.duration("VERIFICATION_TICKET_TTL", &cfg.VerificationTicketTTL)
	p.boolean("STRICT_STATUS_TRANSITIONS", &cfg.StrictStatusTransitions)
	p.integer("BCRYPT_COST", &cfg.BcryptCost)
	p.str("MAIL_TRANSPORT", &cfg.MailTransport)
	p.str("SMTP_HOST", &cfg.SMTP.Host)
	p.integer("SMTP_PORT", &cfg.SMTP.Port)
	p.str("EMAIL_USER", &cfg.SMTP.User)
	p.str("EMAIL_PASS", &cfg.SMTP.Password)
	p.str("CLOUDINARY_CLOUD_NAME", &cfg.Cloudinary.CloudName)
	p.str("CLOUDINARY_API_KEY", &cfg.Cloudinary.APIKey)
	p.str("CLOUDINARY_API_SECRET", &cfg.Cloudinary.APISecret)
	p.str("CLOUDINARY_UPLOAD_PRESET", &cfg.Cloudinary.UploadPreset)
	p.str("CLOUDINARY_FOLDER", &cfg.Cloudinary.Folder)
	p.str("CORS_ORIGINS", &cfg.CORSOrigins)
	p.str("LOG_LEVEL", &cfg.LogLevel)
	p.boolean("LOG_DEVELOPMENT", &cfg.LogDevelopment)

	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.VerificationStore {
	case StoreMemory:
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis verification store")
		}
	default:
		return fmt.Errorf("unsupported VERIFICATION_STORE %q", c.VerificationStore)
	}
	switch c.MailTransport {
	case MailSMTP:
		if !c.SMTP.Enabled() {
			return fmt.Errorf("SMTP_HOST and SMTP_PORT are required unless MAIL_TRANSPORT=%s", MailLog)
		}
	case MailLog:
	default:
		return fmt.Errorf("unsupported MAIL_TRANSPORT %q", c.MailTransport)
	}
	if c.RequireVerifiedEmail && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when REQUIRE_VERIFIED_EMAIL is set")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.VerificationCodeTTL < 0 {
		return fmt.Errorf("VERIFICATION_CODE_TTL must not be negative")
	}
	return nil
}

type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) get(key string) (string, bool) {
	v, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (p *parser) str(key string, dst *string) {
	if v, ok := p.get(key); ok {
		*dst = v
	}
}

func (p *parser) integer(key string, dst *int) {
	v, ok := p.get(key)
	if !ok || p.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = n
}

func (p *parser) boolean(key string, dst *bool) {
	v, ok := p.get(key)
	if !ok || p.err != nil {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = b
}

func (p *parser) duration(key string, dst *time.Duration) {
	v, ok := p.get(key)
	if !ok || p.err != nil {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = d
}
