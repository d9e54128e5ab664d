package config

import (
	"fmt"
	"log"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	GinMode     string   `env:"GIN_MODE" envDefault:"debug"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`

	DB      DBConfig
	JWT     JWTConfig
	Redis   RedisConfig
	S3      S3Config
	Payroll PayrollConfig
	Admin   AdminConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"postgres"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN builds a postgres URL from the parts.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type JWTConfig struct {
	Secret          string        `env:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"24h"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
	SecureCookies   bool          `env:"SECURE_COOKIES" envDefault:"false"`
}

// Redis is optional: an empty Addr disables the rule cache.
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	MaxRetries  int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	Timeout     time.Duration `env:"REDIS_TIMEOUT" envDefault:"3s"`
	Prefix      string        `env:"REDIS_PREFIX" envDefault:"personnel_"`
}

// S3 is optional: an empty Endpoint makes exports stream directly to the client.
type S3Config struct {
	Endpoint        string        `env:"S3_ENDPOINT"`
	AccessKeyID     string        `env:"S3_ACCESS_KEY"`
	SecretAccessKey string        `env:"S3_SECRET_KEY"`
	Bucket          string        `env:"S3_BUCKET" envDefault:"payroll-exports"`
	Region          string        `env:"S3_REGION" envDefault:"us-east-1"`
	UseSSL          bool          `env:"S3_USE_SSL" envDefault:"false"`
	Prefix          string        `env:"S3_PREFIX" envDefault:"exports/"`
	URLTTL          time.Duration `env:"S3_URL_TTL" envDefault:"1h"`
}

type PayrollConfig struct {
	DefaultJurisdiction string        `env:"PAYROLL_DEFAULT_JURISDICTION" envDefault:"RU"`
	RuleCacheTTL        time.Duration `env:"PAYROLL_RULE_CACHE_TTL" envDefault:"5m"`
	ExportMaxRows       int           `env:"PAYROLL_EXPORT_MAX_ROWS" envDefault:"50000"`
	BatchMaxLines       int           `env:"PAYROLL_BATCH_MAX_LINES" envDefault:"500"`
}

// AdminConfig seeds the first administrator when no admin user exists yet.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configs/.env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWT.Secret == "" {
		if cfg.GinMode == "release" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in release mode")
		}
		cfg.JWT.Secret = "default_super_secret_key" // development fallback only
	}

	return &cfg, nil
}
