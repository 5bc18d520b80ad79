// Package config loads and validates application configuration from a yaml
// file and environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, HTTP server, database connection, discovery
// pipeline policy, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"fundscout" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"fundscout" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"fundscout" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Discovery contains the search-result pipeline and domain registry policy.
	Discovery struct {
		// ConfidenceThreshold is the minimum score at which a result becomes a
		// review candidate. Must lie in [0,1].
		ConfidenceThreshold float64 `env:"DISCOVERY_CONFIDENCE_THRESHOLD" env-default:"0.60" yaml:"confidenceThreshold"`
		// SpamTLDs lists low-trust top-level domains filtered before any other
		// pipeline stage.
		SpamTLDs []string `env:"DISCOVERY_SPAM_TLDS" env-default:"tk,ml,ga,cf,gq,xyz,top,icu,buzz,loan,click,cam,pw" yaml:"spamTlds"` //nolint: lll
		// FundingKeywords is the funding keyword family matched against result text.
		FundingKeywords []string `env:"DISCOVERY_FUNDING_KEYWORDS" env-default:"grant,grants,funding,scholarship,scholarships,fellowship,fellowships,subsidy,subsidies,bursary,bursaries,award,awards,stipend,stipends,financial aid,financial support,sponsorship,endowment" yaml:"fundingKeywords"` //nolint: lll
		// GeographyKeywords is the target-geography keyword family.
		GeographyKeywords []string `env:"DISCOVERY_GEOGRAPHY_KEYWORDS" env-default:"bulgaria,bulgarian,eu,european union,europe,european,eastern europe,balkan,romania,romanian,poland,polish,czech,czechia,regional,local" yaml:"geographyKeywords"` //nolint: lll
		// OrganizationKeywords is the organization-type keyword family.
		OrganizationKeywords []string `env:"DISCOVERY_ORGANIZATION_KEYWORDS" env-default:"ministry,minister,commission,commissioner,foundation,fund,university,college,government,official,national,state,federal,agency,authority,council,chamber" yaml:"organizationKeywords"` //nolint: lll
		// FailureBackoff is the retry backoff schedule; entry N applies after
		// the Nth consecutive failure and the last entry caps the delay.
		FailureBackoff []time.Duration `env:"DISCOVERY_FAILURE_BACKOFF" env-default:"1h,4h,24h,168h" yaml:"failureBackoff"`
		// HighQualityRecheck is the cooldown before a high-quality domain
		// becomes eligible for reprocessing again. Zero disables the cooldown.
		HighQualityRecheck time.Duration `env:"DISCOVERY_HIGH_QUALITY_RECHECK" env-default:"720h" yaml:"highQualityRecheck"`
	} `yaml:"discovery"`

	// Ingest contains batch submission limits and job queue behavior.
	Ingest struct {
		// MaxBatchSize caps the number of search results accepted in one batch.
		MaxBatchSize int `env:"INGEST_MAX_BATCH_SIZE" env-default:"500" yaml:"maxBatchSize"`
		// MaxAttempts is the number of times a processing job is retried
		// before being discarded.
		MaxAttempts int `env:"INGEST_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// DedupWindow is the lookback period during which an identical batch
		// submission is treated as a duplicate and not enqueued again.
		DedupWindow time.Duration `env:"INGEST_DEDUP_WINDOW" env-default:"1h" yaml:"dedupWindow"`
	} `yaml:"ingest"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// per-result behavior at runtime. Configuration errors are fatal at startup.
func (cfg *Config) Validate() error {
	if cfg.Discovery.ConfidenceThreshold < 0 || cfg.Discovery.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold %v out of range [0,1]", cfg.Discovery.ConfidenceThreshold)
	}
	if len(cfg.Discovery.FailureBackoff) == 0 {
		return fmt.Errorf("failure backoff schedule must not be empty")
	}
	for _, d := range cfg.Discovery.FailureBackoff {
		if d <= 0 {
			return fmt.Errorf("failure backoff entries must be positive, got %v", d)
		}
	}
	if cfg.Ingest.MaxBatchSize <= 0 {
		return fmt.Errorf("max batch size must be positive, got %d", cfg.Ingest.MaxBatchSize)
	}

	return nil
}
