package config

import (
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
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Engine EngineConfig
	Redis  RedisConfig
	AMQP   AMQPConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// EngineConfig tunes allocation. TimeZone decides where the business day
// boundary falls for daily counters and claim code prefixes.
type EngineConfig struct {
	TimeZone        string        `envconfig:"ENGINE_TIMEZONE" default:"Asia/Tokyo"`
	CodeWidth       int           `envconfig:"ENGINE_CODE_WIDTH" default:"6"`
	CodeMaxAttempts int           `envconfig:"ENGINE_CODE_MAX_ATTEMPTS" default:"5"`
	ClaimRateLimit  int           `envconfig:"ENGINE_CLAIM_RATE_LIMIT" default:"10"`
	ClaimRateWindow time.Duration `envconfig:"ENGINE_CLAIM_RATE_WINDOW" default:"1m"`
	IdempotencyTTL  time.Duration `envconfig:"ENGINE_IDEMPOTENCY_TTL" default:"24h"`
	NotifyTimeout   time.Duration `envconfig:"ENGINE_NOTIFY_TIMEOUT" default:"5s"`
}

// Addr empty disables claim throttling.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// URL empty selects the notification job queue instead of the broker.
type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"grab.events"`
}

func (c EngineConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid engine timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Engine: EngineConfig{
			TimeZone:        "Asia/Tokyo",
			CodeWidth:       6,
			CodeMaxAttempts: 5,
			ClaimRateLimit:  10,
			ClaimRateWindow: time.Minute,
			IdempotencyTTL:  24 * time.Hour,
			NotifyTimeout:   time.Second,
		},
	}
}
