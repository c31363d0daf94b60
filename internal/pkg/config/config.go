package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Webhook   WebhookConfig
	RDStation RDStationConfig
	Redis     RedisConfig
	Mapping   MappingConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// JWTConfig validates tokens issued by the portal's identity provider.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER"`
}

// WebhookConfig holds the shared secret for inbound RD Station deliveries.
// An empty Secret is allowed at startup; every delivery is then rejected.
type WebhookConfig struct {
	Provider      string        `envconfig:"WEBHOOK_PROVIDER" default:"rd_station"`
	Secret        string        `envconfig:"RD_WEBHOOK_SECRET"`
	MaxBodyBytes  int64         `envconfig:"WEBHOOK_MAX_BODY_BYTES" default:"1048576"`
	ClaimTTL      time.Duration `envconfig:"WEBHOOK_CLAIM_TTL" default:"5m"`
	SweepInterval time.Duration `envconfig:"WEBHOOK_SWEEP_INTERVAL" default:"1m"`
}

type RDStationConfig struct {
	BaseURL        string        `envconfig:"RD_BASE_URL" default:"https://crm.rdstation.com/api/v1"`
	Token          string        `envconfig:"RD_API_TOKEN"`
	PipelineID     string        `envconfig:"RD_PIPELINE_ID"`
	Timeout        time.Duration `envconfig:"RD_TIMEOUT" default:"10s"`
	MaxRetries     uint64        `envconfig:"RD_MAX_RETRIES" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"RD_RETRY_BASE_DELAY" default:"300ms"`
	PipelineTTL    time.Duration `envconfig:"RD_PIPELINE_CACHE_TTL" default:"10m"`
	CustomFields   CustomFieldsConfig
}

// CustomFieldsConfig maps local attributes to RD deal custom field ids.
// Empty ids are skipped when building the deal payload.
type CustomFieldsConfig struct {
	SinistroID string `envconfig:"RD_CF_SINISTRO_ID"`
	Numero     string `envconfig:"RD_CF_NUMERO"`
	Status     string `envconfig:"RD_CF_STATUS"`
	Cliente    string `envconfig:"RD_CF_CLIENTE"`
}

// RedisConfig enables the pipeline stage cache when Addr is set.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MappingConfig struct {
	File string `envconfig:"STAGE_MAPPING_FILE"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBConfig reads only the database section, for tools that do not
// serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return DBConfig{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Webhook.MaxBodyBytes <= 0 {
		return fmt.Errorf("WEBHOOK_MAX_BODY_BYTES must be positive")
	}
	if c.Webhook.ClaimTTL <= 0 {
		return fmt.Errorf("WEBHOOK_CLAIM_TTL must be positive")
	}
	if c.Webhook.SweepInterval <= 0 {
		return fmt.Errorf("WEBHOOK_SWEEP_INTERVAL must be positive")
	}
	if c.RDStation.Timeout <= 0 {
		return fmt.Errorf("RD_TIMEOUT must be positive")
	}
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return nil
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
			TimeZone: "America/Sao_Paulo",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Webhook: WebhookConfig{
			Provider:      "rd_station",
			Secret:        "test-webhook-secret",
			MaxBodyBytes:  1 << 20,
			ClaimTTL:      5 * time.Minute,
			SweepInterval: time.Minute,
		},
		RDStation: RDStationConfig{
			BaseURL:        "http://127.0.0.1:0",
			Token:          "test-rd-token",
			Timeout:        2 * time.Second,
			MaxRetries:     1,
			RetryBaseDelay: 10 * time.Millisecond,
			PipelineTTL:    time.Minute,
		},
	}
}
