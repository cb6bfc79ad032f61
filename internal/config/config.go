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

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or mysql
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration for address events
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// EthereumConfig holds node access configuration.
// The endpoint itself comes from the active rpc_configs row.
type EthereumConfig struct {
	RPCTimeout     time.Duration `mapstructure:"rpc_timeout"`
	NativeCoinName string        `mapstructure:"native_coin_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds request signing configuration
type AuthConfig struct {
	TimestampWindow time.Duration `mapstructure:"timestamp_window"`
	AllowOrigins    []string      `mapstructure:"allow_origins"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// ScanConfig holds chain scanner configuration
type ScanConfig struct {
	Interval            time.Duration `mapstructure:"interval"`
	ConfirmationDelay   uint64        `mapstructure:"confirmation_delay"`
	BatchSize           uint64        `mapstructure:"batch_size"`
	IndexReloadInterval time.Duration `mapstructure:"index_reload_interval"`
}

// NotifierConfig holds deposit notifier configuration
type NotifierConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	PageSize    int           `mapstructure:"page_size"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	Worker      WorkerConfig  `mapstructure:"worker"`
}

// CollectionConfig holds sweep and render configuration.
// Amounts are in native coin units, e.g. "0.005".
type CollectionConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	Interval         time.Duration `mapstructure:"interval"`
	RenderInterval   time.Duration `mapstructure:"render_interval"`
	BalanceBatchSize int           `mapstructure:"balance_batch_size"`
	ReserveFloor     string        `mapstructure:"reserve_floor"`
	TopUpAmount      string        `mapstructure:"top_up_amount"`
	RenderAddress    string        `mapstructure:"render_address"`
}

// MetricsConfig holds prometheus configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// APIConfig holds configuration for the API process
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Collection CollectionConfig `mapstructure:"collection"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ScannerConfig holds configuration for the scanner process
type ScannerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Scan       ScanConfig     `mapstructure:"scan"`
	Notifier   NotifierConfig `mapstructure:"notifier"`
	Metrics    MetricsConfig  `mapstructure:"metrics"`
	// MetricsAddr is where the scanner exposes /metrics
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// setCommonDefaults sets defaults shared by both processes
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "HOTWALLET_ADDRESSES")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("ethereum.rpc_timeout", "30s")
	v.SetDefault("ethereum.native_coin_name", "Ethereum")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// LoadAPIConfig loads configuration for the API process
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("auth.timestamp_window", "5m")
	v.SetDefault("auth.allow_origins", []string{"*"})
	v.SetDefault("nats.connection_name", "hotwallet-api")
	v.SetDefault("collection.enabled", true)
	v.SetDefault("collection.interval", "10m")
	v.SetDefault("collection.render_interval", "10m")
	v.SetDefault("collection.balance_batch_size", 100)
	v.SetDefault("collection.reserve_floor", "0.005")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Collection.TopUpAmount == "" {
		cfg.Collection.TopUpAmount = cfg.Collection.ReserveFloor
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadScannerConfig loads configuration for the scanner process
func LoadScannerConfig(configFile string, envPath string) (*ScannerConfig, error) {
	v := configureViper("scanner", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("nats.consumer_name", "hotwallet-scanner")
	v.SetDefault("nats.connection_name", "hotwallet-scanner")
	v.SetDefault("scan.interval", "15s")
	v.SetDefault("scan.confirmation_delay", 12)
	v.SetDefault("scan.batch_size", 50)
	v.SetDefault("scan.index_reload_interval", "5m")
	v.SetDefault("notifier.interval", "30s")
	v.SetDefault("notifier.page_size", 500)
	v.SetDefault("notifier.http_timeout", "10s")
	v.SetDefault("notifier.worker.pool_size", 10)
	v.SetDefault("notifier.worker.queue_size", 1000)
	v.SetDefault("metrics_addr", "0.0.0.0:9090")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg ScannerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	if cfg.Scan.BatchSize == 0 {
		return nil, errors.New("scan.batch_size must be positive")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
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

	v.SetEnvPrefix("HOTWALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"metrics_addr",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Ethereum
		"ethereum.rpc_timeout",
		"ethereum.native_coin_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.timestamp_window",
		"auth.allow_origins",
		// Scanner
		"scan.interval",
		"scan.confirmation_delay",
		"scan.batch_size",
		"scan.index_reload_interval",
		// Notifier
		"notifier.interval",
		"notifier.page_size",
		"notifier.http_timeout",
		"notifier.worker.pool_size",
		"notifier.worker.queue_size",
		// Collection
		"collection.enabled",
		"collection.interval",
		"collection.render_interval",
		"collection.balance_batch_size",
		"collection.reserve_floor",
		"collection.top_up_amount",
		"collection.render_address",
		// Metrics
		"metrics.enabled",
		"metrics.path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local.
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

// Validate checks the fields required to open a connection
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Driver)
	}
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// DSN returns the database connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
