package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	StorageDriver string
	SQLitePath    string
	DynamoDB      DynamoDBConfig

	NATSURL           string
	NATSSubjectPrefix string

	Reconcile ReconcileConfig
}

// DynamoDBConfig holds the local-friendly AWS settings. Endpoint is only set when talking
// to DynamoDB Local.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type ReconcileConfig struct {
	Enabled  bool
	Interval time.Duration
	Warmup   time.Duration
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads the configuration from the environment (and .env, when present).
func Load() (Config, error) {
	cfg := Config{
		Port:          getenvDefault("PORT", "8080"),
		AppEnv:        getenvDefault("APP_ENV", "development"),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		SQLitePath:    getenvDefault("SQLITE_PATH", "data/fleet.db"),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		NATSURL:           os.Getenv("NATS_URL"),
		NATSSubjectPrefix: getenvDefault("NATS_SUBJECT_PREFIX", "fleet.maintenance"),
	}

	var err error
	if cfg.Reconcile.Enabled, err = getenvBool("RECONCILE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.Reconcile.Interval, err = getenvDuration("RECONCILE_INTERVAL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Reconcile.Warmup, err = getenvDuration("RECONCILE_WARMUP", 10*time.Second); err != nil {
		return Config{}, err
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageSQLite:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDynamoDB, StorageSQLite, cfg.StorageDriver)
	}
	if cfg.Reconcile.Interval <= 0 {
		return Config{}, fmt.Errorf("RECONCILE_INTERVAL must be positive, got %s", cfg.Reconcile.Interval)
	}
	if cfg.Reconcile.Warmup < 0 {
		return Config{}, fmt.Errorf("RECONCILE_WARMUP must not be negative, got %s", cfg.Reconcile.Warmup)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
