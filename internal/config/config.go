package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	AllowOrigins     string        `envconfig:"ALLOW_ORIGINS" default:"*"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	MaxTokenAttempts int           `envconfig:"MAX_TOKEN_ATTEMPTS" default:"5"`

	DB      Database `envconfig:"DB"`
	JWT     JWT      `envconfig:"JWT"`
	Redis   Redis    `envconfig:"REDIS"`
	Account Account  `envconfig:"ACCOUNT"`
	Log     Log      `envconfig:"LOG"`
}

type Database struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME" default:"banking"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

type JWT struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// Redis is optional; an empty Addr disables transfer event publishing.
type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
	Stream   string `envconfig:"STREAM" default:"transfers"`
}

// Account holds the presets applied to the default account opened at registration.
type Account struct {
	MinimumBalance decimal.Decimal `envconfig:"MINIMUM_BALANCE" default:"500"`
	OpeningBalance decimal.Decimal `envconfig:"OPENING_BALANCE" default:"5000"`
}

type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Load reads the given .env files (default ".env") when present and then
// decodes the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.MaxTokenAttempts < 1 {
		return nil, fmt.Errorf("MAX_TOKEN_ATTEMPTS must be positive, got %d", cfg.MaxTokenAttempts)
	}
	if cfg.Account.MinimumBalance.IsNegative() || cfg.Account.OpeningBalance.IsNegative() {
		return nil, errors.New("account balance presets must not be negative")
	}
	return &cfg, nil
}
