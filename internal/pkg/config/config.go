package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty credentials disable the matching integration (cache, SendGrid, Twilio) instead of failing
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
	Billing   BillingConfig
	Notifier  NotifierConfig
	SendGrid  SendGridConfig
	Twilio    TwilioConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`

	MaxConns int32 `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32 `envconfig:"DB_MIN_CONNS" default:"2"`

	// Transactions fail fast instead of blocking indefinitely on a held row.
	StatementTimeout         time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
	LockTimeout              time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"2s"`
	IdleInTransactionTimeout time.Duration `envconfig:"DB_IDLE_IN_TX_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"parkbuddy"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"1h"`
}

type CacheConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	Prefix        string        `envconfig:"CACHE_PREFIX" default:"parkbuddy:stats"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"300s"`
}

func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != "" && c.TTL > 0
}

type RateLimitConfig struct {
	RPS          float64       `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst        int           `envconfig:"RATE_LIMIT_BURST" default:"5"`
	IdleTTL      time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"15m"`
	CleanupEvery time.Duration `envconfig:"RATE_LIMIT_CLEANUP_EVERY" default:"2m"`
}

type TelemetryConfig struct {
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"parkbuddy"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	RuntimeMetrics bool   `envconfig:"METRICS_RUNTIME" default:"false"`
}

type BillingConfig struct {
	// minimum_hour (current policy) or proportional (pre-revision bills)
	Policy string `envconfig:"BILLING_POLICY" default:"minimum_hour"`
}

type NotifierConfig struct {
	ReminderSpec  string        `envconfig:"NOTIFIER_REMINDER_SPEC" default:"@daily"`
	ReportSpec    string        `envconfig:"NOTIFIER_REPORT_SPEC" default:"0 6 1 * *"`
	InactiveAfter time.Duration `envconfig:"NOTIFIER_INACTIVE_AFTER" default:"168h"`
	JobTimeout    time.Duration `envconfig:"NOTIFIER_JOB_TIMEOUT" default:"5m"`
	Location      string        `envconfig:"NOTIFIER_TIMEZONE" default:"UTC"`
}

type SendGridConfig struct {
	APIKey    string `envconfig:"SENDGRID_API_KEY"`
	FromEmail string `envconfig:"SENDGRID_FROM_EMAIL" default:"noreply@parkbuddy.local"`
	FromName  string `envconfig:"SENDGRID_FROM_NAME" default:"ParkBuddy"`
}

type TwilioConfig struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	FromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// BuildDSN also carries the session timeouts so that every pooled
// connection inherits them.
func (c *DBConfig) BuildDSN() string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("timezone", c.TimeZone)
	if c.StatementTimeout > 0 {
		q.Set("statement_timeout", fmt.Sprint(c.StatementTimeout.Milliseconds()))
	}
	if c.LockTimeout > 0 {
		q.Set("lock_timeout", fmt.Sprint(c.LockTimeout.Milliseconds()))
	}
	if c.IdleInTransactionTimeout > 0 {
		q.Set("idle_in_transaction_session_timeout", fmt.Sprint(c.IdleInTransactionTimeout.Milliseconds()))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:                     "localhost",
			Port:                     "15433", // Test DB port
			User:                     "test",
			Password:                 "test",
			DBName:                   "test_db",
			SSLMode:                  "disable",
			TimeZone:                 "UTC",
			MaxConns:                 40,
			MinConns:                 1,
			StatementTimeout:         5 * time.Second,
			LockTimeout:              2 * time.Second,
			IdleInTransactionTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-parkbuddy-tests",
			Issuer:   "parkbuddy-test",
			Duration: time.Hour,
		},
		Cache: CacheConfig{
			Prefix: "parkbuddy:test:stats",
			TTL:    300 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:          1000,
			Burst:        1000,
			IdleTTL:      time.Minute,
			CleanupEvery: 0,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "parkbuddy-test",
			MetricsEnabled: false,
		},
		Billing: BillingConfig{
			Policy: "minimum_hour",
		},
		Notifier: NotifierConfig{
			ReminderSpec:  "@daily",
			ReportSpec:    "0 6 1 * *",
			InactiveAfter: 7 * 24 * time.Hour,
			JobTimeout:    time.Minute,
			Location:      "UTC",
		},
	}
}
