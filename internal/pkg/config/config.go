package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - per-service: PORT and DB_NAME default to the service's own port and name
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty URL/address: the optional integration (Redis, RabbitMQ) is disabled
// -----------------------------------------------------------------------------

const (
	ServiceCars     = "cars"
	ServicePayments = "payments"
	ServiceRentals  = "rentals"
	ServiceGateway  = "gateway"
)

var defaultPorts = map[string]string{
	ServiceCars:     "8070",
	ServicePayments: "8050",
	ServiceRentals:  "8060",
	ServiceGateway:  "8080",
}

type Config struct {
	Service  string `ignored:"true"`
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Broker   BrokerConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"program"`
	Password string `envconfig:"DB_PASSWORD" default:"test"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-Name,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotency-Replayed,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// UpstreamConfig tunes the gateway's calls to the cars, rentals and payments services.
type UpstreamConfig struct {
	CarsURL        string        `envconfig:"CARS_URL" default:"http://cars:8070"`
	RentalsURL     string        `envconfig:"RENTALS_URL" default:"http://rentals:8060"`
	PaymentsURL    string        `envconfig:"PAYMENTS_URL" default:"http://payments:8050"`
	Timeout        time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"2s"`
	MaxRetries     uint64        `envconfig:"UPSTREAM_MAX_RETRIES" default:"2"`
	RetryBaseDelay time.Duration `envconfig:"UPSTREAM_RETRY_BASE_DELAY" default:"100ms"`
	RetryMaxDelay  time.Duration `envconfig:"UPSTREAM_RETRY_MAX_DELAY" default:"1s"`
}

type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	// ProcessingTTL bounds how long a claimed key blocks retries when the
	// request never completes it.
	ProcessingTTL time.Duration `envconfig:"IDEMPOTENCY_PROCESSING_TTL" default:"1m"`
}

type BrokerConfig struct {
	URL      string `envconfig:"RABBITMQ_URL"`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"rental.events"`
	// PublishTimeout bounds one publish, dial and handshake included.
	PublishTimeout time.Duration `envconfig:"RABBITMQ_PUBLISH_TIMEOUT" default:"1s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *RedisConfig) Enabled() bool  { return c.Addr != "" }
func (c *BrokerConfig) Enabled() bool { return c.URL != "" }

// Loader returns the fx constructor for the named service's configuration.
func Loader(service string) func() (Config, error) {
	return func() (Config, error) {
		return LoadConfig(service)
	}
}

func LoadConfig(service string) (Config, error) {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	cfg.Service = service
	if cfg.Server.Port == "" {
		port, ok := defaultPorts[service]
		if !ok {
			return Config{}, fmt.Errorf("PORT is required for service %q", service)
		}
		cfg.Server.Port = port
	}
	if cfg.DB.DBName == "" {
		cfg.DB.DBName = service
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Service: "test",
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Upstream: UpstreamConfig{
			Timeout:        200 * time.Millisecond,
			MaxRetries:     2,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  5 * time.Millisecond,
		},
		Redis: RedisConfig{
			IdempotencyTTL: time.Hour,
			ProcessingTTL:  time.Minute,
		},
		Broker: BrokerConfig{
			Exchange:       "rental.events",
			PublishTimeout: 200 * time.Millisecond,
		},
	}
}
