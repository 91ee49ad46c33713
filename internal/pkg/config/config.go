package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// DBConfig is only consulted when Enabled is set; without a database the
// seeded availability generator and the accepting submitter are used.
type DBConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Chicago"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

// SessionConfig controls the visitor cookie. Keys are base64 encoded; empty
// keys are replaced with random ones at startup.
type SessionConfig struct {
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"little_lemon_session"`
	HashKey       string        `envconfig:"SESSION_HASH_KEY"`
	BlockKey      string        `envconfig:"SESSION_BLOCK_KEY"`
	Secure        bool          `envconfig:"SESSION_SECURE" default:"false"`
	SameSite      string        `envconfig:"SESSION_SAME_SITE" default:"Lax"`
	Domain        string        `envconfig:"SESSION_DOMAIN" default:""`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

type BookingConfig struct {
	TimeZone            string        `envconfig:"BOOKING_TIMEZONE" default:"America/Chicago"`
	SubmitTimeout       time.Duration `envconfig:"BOOKING_SUBMIT_TIMEOUT" default:"5s"`
	AvailabilityTimeout time.Duration `envconfig:"BOOKING_AVAILABILITY_TIMEOUT" default:"3s"`
	SlotCapacity        int           `envconfig:"BOOKING_SLOT_CAPACITY" default:"4"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.User == "" || c.DBName == "" {
		return fmt.Errorf("DB_USER and DB_NAME are required when DB_ENABLED is set")
	}
	return nil
}

// LoadLocation resolves TimeZone. Unknown names yield UTC together with the
// error so callers can warn without blocking startup.
func (c *BookingConfig) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC, fmt.Errorf("unknown BOOKING_TIME_ZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Location is LoadLocation without the error.
func (c *BookingConfig) Location() *time.Location {
	loc, _ := c.LoadLocation()
	return loc
}

// Keys decodes the configured cookie keys. Missing keys come back nil.
func (c *SessionConfig) Keys() (hashKey, blockKey []byte, err error) {
	if c.HashKey != "" {
		if hashKey, err = base64.StdEncoding.DecodeString(c.HashKey); err != nil {
			return nil, nil, fmt.Errorf("invalid SESSION_HASH_KEY: %w", err)
		}
	}
	if c.BlockKey != "" {
		if blockKey, err = base64.StdEncoding.DecodeString(c.BlockKey); err != nil {
			return nil, nil, fmt.Errorf("invalid SESSION_BLOCK_KEY: %w", err)
		}
		switch len(blockKey) {
		case 16, 24, 32:
		default:
			return nil, nil, fmt.Errorf("SESSION_BLOCK_KEY must decode to 16, 24 or 32 bytes, got %d", len(blockKey))
		}
	}
	return hashKey, blockKey, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Chicago",
			MaxConns: 4,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Chicago",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Session: SessionConfig{
			CookieName:    "little_lemon_session",
			SameSite:      "Lax",
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Booking: BookingConfig{
			TimeZone:            "America/Chicago",
			SubmitTimeout:       time.Second,
			AvailabilityTimeout: time.Second,
			SlotCapacity:        4,
		},
	}
}
