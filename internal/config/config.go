package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// RedisConfig holds redis configuration. An empty Addr disables the
// distributed rate limit ceiling.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables
// catalog event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	TaskQueue                          string  `mapstructure:"task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// OpenSeaConfig holds the Ethereum marketplace provider configuration
type OpenSeaConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	// FetchDetails enables the per-token detail lookup which carries
	// traits and the token-level creator.
	FetchDetails bool `mapstructure:"fetch_details"`
}

// ObjktConfig holds the Tezos graph provider configuration
type ObjktConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProvidersConfig holds provider API configurations
type ProvidersConfig struct {
	OpenSea OpenSeaConfig `mapstructure:"opensea"`
	Objkt   ObjktConfig   `mapstructure:"objkt"`
}

// ProviderRateLimit describes the request ceiling of one provider
type ProviderRateLimit struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MinInterval       time.Duration `mapstructure:"min_interval"`
	// PerMinute is the cluster-wide ceiling enforced through redis.
	// Zero disables it.
	PerMinute int `mapstructure:"per_minute"`
}

// RateLimitConfig holds per-provider rate limits
type RateLimitConfig struct {
	OpenSea ProviderRateLimit `mapstructure:"opensea"`
	Objkt   ProviderRateLimit `mapstructure:"objkt"`
}

// OrchestratorConfig holds batch run configuration
type OrchestratorConfig struct {
	Wallets          []string      `mapstructure:"wallets"`
	PageSize         int           `mapstructure:"page_size"`
	InterWalletDelay time.Duration `mapstructure:"inter_wallet_delay"`
	InterTypeDelay   time.Duration `mapstructure:"inter_type_delay"`
	MaxPageRetries   int           `mapstructure:"max_page_retries"`
	MaxPages         int           `mapstructure:"max_pages"`
	PromotionWorkers int           `mapstructure:"promotion_workers"`
	PromoteAfterRun  bool          `mapstructure:"promote_after_run"`
	SniffMimeTypes   bool          `mapstructure:"sniff_mime_types"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// MetricsConfig holds the prometheus exposition configuration
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// PipelineConfig is shared by every binary that runs indexing
type PipelineConfig struct {
	Database      DatabaseConfig     `mapstructure:"database"`
	Redis         RedisConfig        `mapstructure:"redis"`
	NATS          NATSConfig         `mapstructure:"nats"`
	Providers     ProvidersConfig    `mapstructure:"providers"`
	RateLimit     RateLimitConfig    `mapstructure:"rate_limit"`
	Orchestrator  OrchestratorConfig `mapstructure:"orchestrator"`
	Metrics       MetricsConfig      `mapstructure:"metrics"`
	BlacklistPath string             `mapstructure:"blacklist_path"`
	PlatformsPath string             `mapstructure:"platforms_path"`
}

// APIConfig holds configuration for the catalog API server
type APIConfig struct {
	BaseConfig     `mapstructure:",squash"`
	PipelineConfig `mapstructure:",squash"`
	Server         ServerConfig   `mapstructure:"server"`
	Temporal       TemporalConfig `mapstructure:"temporal"`
	Auth           AuthConfig     `mapstructure:"auth"`
}

// IndexerConfig holds configuration for the one-shot indexer CLI
type IndexerConfig struct {
	BaseConfig     `mapstructure:",squash"`
	PipelineConfig `mapstructure:",squash"`
}

// WorkerConfig holds configuration for the Temporal worker
type WorkerConfig struct {
	BaseConfig     `mapstructure:",squash"`
	PipelineConfig `mapstructure:",squash"`
	Temporal       TemporalConfig `mapstructure:"temporal"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("catalog-api", configFile, envPath)

	setPipelineDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	setTemporalDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadIndexerConfig loads configuration for the indexer CLI
func LoadIndexerConfig(configFile string, envPath string) (*IndexerConfig, error) {
	v := configureViper("catalog-indexer", configFile, envPath)

	setPipelineDefaults(v)
	v.SetDefault("orchestrator.promote_after_run", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config IndexerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the Temporal worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker-catalog", configFile, envPath)

	setPipelineDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 4)
	v.SetDefault("temporal.worker_activities_per_second", 10)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 2)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setPipelineDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.stream_name", "CATALOG_EVENTS")
	v.SetDefault("nats.subject_prefix", "catalog")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("providers.opensea.url", "https://api.opensea.io/api/v2")
	v.SetDefault("providers.opensea.timeout", "30s")
	v.SetDefault("providers.opensea.fetch_details", true)
	v.SetDefault("providers.objkt.url", "https://data.objkt.com/v3/graphql")
	v.SetDefault("providers.objkt.timeout", "30s")
	v.SetDefault("rate_limit.opensea.requests_per_second", 4)
	v.SetDefault("rate_limit.opensea.burst", 1)
	v.SetDefault("rate_limit.opensea.min_interval", "250ms")
	v.SetDefault("rate_limit.objkt.requests_per_second", 2)
	v.SetDefault("rate_limit.objkt.burst", 1)
	v.SetDefault("rate_limit.objkt.min_interval", "500ms")
	v.SetDefault("orchestrator.page_size", 50)
	v.SetDefault("orchestrator.inter_wallet_delay", "2s")
	v.SetDefault("orchestrator.inter_type_delay", "500ms")
	v.SetDefault("orchestrator.max_page_retries", 3)
	v.SetDefault("orchestrator.max_pages", 200)
	v.SetDefault("orchestrator.promotion_workers", 4)
	v.SetDefault("metrics.listen_addr", ":9090")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "catalog-indexing")
}

// readConfig reads the config file; a missing file falls back to the environment
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not reach Unmarshal for keys without a default
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.auto_migrate",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Providers
		"providers.opensea.url",
		"providers.opensea.api_key",
		"providers.opensea.timeout",
		"providers.opensea.fetch_details",
		"providers.objkt.url",
		"providers.objkt.timeout",
		// Rate limits
		"rate_limit.opensea.requests_per_second",
		"rate_limit.opensea.burst",
		"rate_limit.opensea.min_interval",
		"rate_limit.opensea.per_minute",
		"rate_limit.objkt.requests_per_second",
		"rate_limit.objkt.burst",
		"rate_limit.objkt.min_interval",
		"rate_limit.objkt.per_minute",
		// Orchestrator
		"orchestrator.wallets",
		"orchestrator.page_size",
		"orchestrator.inter_wallet_delay",
		"orchestrator.inter_type_delay",
		"orchestrator.max_page_retries",
		"orchestrator.max_pages",
		"orchestrator.promotion_workers",
		"orchestrator.promote_after_run",
		"orchestrator.sniff_mime_types",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Metrics
		"metrics.enabled",
		"metrics.listen_addr",
		"blacklist_path",
		"platforms_path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
