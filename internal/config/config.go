package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	StorageBackendLocal = "local"
	StorageBackendGCS   = "gcs"
)

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Postgres PostgresConfig `koanf:"postgres"`
	Upload   UploadConfig   `koanf:"upload"`
	Storage  StorageConfig  `koanf:"storage"`
	Log      LogConfig      `koanf:"log"`
	Locale   LocaleConfig   `koanf:"locale"`
	Tracing  TracingConfig  `koanf:"tracing"`
	Operator OperatorConfig `koanf:"operator"`
}

// HTTPConfig sets the listener. The read and write timeouts bound a whole document upload and download.
type HTTPConfig struct {
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`
}

// ConnectionString is the lib/pq DSN for the configured database.
func (p PostgresConfig) ConnectionString() string {
	return "postgres://" + p.Username + ":" +
		p.Password + "@" + p.Address + ":" +
		p.Port + "/" + p.DB + "?sslmode=" + p.SSLMode
}

type UploadConfig struct {
	Dir      string `koanf:"dir"`
	MaxBytes int64  `koanf:"max_bytes"`
}

type StorageConfig struct {
	Backend   string `koanf:"backend"`
	GCSBucket string `koanf:"gcs_bucket"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type LocaleConfig struct {
	Default string `koanf:"default"`
}

type TracingConfig struct {
	Stdout bool `koanf:"stdout"`
}

// OperatorConfig sizes the pool that executes write actions.
type OperatorConfig struct {
	Workers int `koanf:"workers"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]any{
	"http.port":          9446,
	"http.read_timeout":  5 * time.Minute,
	"http.write_timeout": 5 * time.Minute,
	"postgres.address":   "localhost",
	"postgres.port":      "5433",
	"postgres.db":        "postgres",
	"postgres.username":  "postgres",
	"postgres.password":  "testpassword",
	"postgres.sslmode":   "disable",
	"upload.dir":         "./documents",
	"upload.max_bytes":   int64(50 * 1024 * 1024),
	"storage.backend":    StorageBackendLocal,
	"storage.gcs_bucket": "",
	"log.level":          "info",
	"locale.default":     "de",
	"tracing.stdout":     false,
	"operator.workers":   4,
}

var sections = []string{"http", "postgres", "upload", "storage", "log", "locale", "tracing", "operator"}

// Load layers the built-in defaults, the optional YAML file and the environment, in that order.
// Environment variables map to keys by their first underscore: POSTGRES_ADDRESS is postgres.address.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", configFile, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey turns UPLOAD_MAX_BYTES into upload.max_bytes. Variables outside the known sections are skipped.
func envKey(name string) string {
	section, rest, found := strings.Cut(strings.ToLower(name), "_")
	if !found || rest == "" {
		return ""
	}
	for _, known := range sections {
		if section == known {
			return section + "." + rest
		}
	}
	return ""
}

func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	if c.HTTP.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http.read_timeout must be positive, got %s", c.HTTP.ReadTimeout))
	}
	if c.HTTP.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http.write_timeout must be positive, got %s", c.HTTP.WriteTimeout))
	}
	if c.Upload.MaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("upload.max_bytes must be positive, got %d", c.Upload.MaxBytes))
	}
	if c.Operator.Workers < 1 {
		errs = append(errs, fmt.Errorf("operator.workers must be at least 1, got %d", c.Operator.Workers))
	}
	switch c.Storage.Backend {
	case StorageBackendLocal:
		if c.Upload.Dir == "" {
			errs = append(errs, errors.New("upload.dir is required for the local storage backend"))
		}
	case StorageBackendGCS:
		if c.Storage.GCSBucket == "" {
			errs = append(errs, errors.New("storage.gcs_bucket is required for the gcs storage backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.backend %q", c.Storage.Backend))
	}
	switch c.Locale.Default {
	case "de", "en":
	default:
		errs = append(errs, fmt.Errorf("unsupported locale.default %q", c.Locale.Default))
	}

	return errors.Join(errs...)
}
