package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	ServerHost          string `koanf:"server_host"`
	ServerPort          int    `koanf:"server_port"`
	DatabaseFilePath    string `koanf:"database_file_path"`
	DatabaseDebug       bool   `koanf:"database_debug"`
	DatabaseMaxRetries  int    `koanf:"database_max_retries"`
	JWTSecret           string `koanf:"jwt_secret"`
	MaxLoansPerBorrower int    `koanf:"max_loans_per_borrower"`

	// Tuning knobs not exposed through the config file.
	DatabaseBusyTimeout       time.Duration `koanf:"-"`
	DatabaseConnectRetryCount int           `koanf:"-"`
	DatabaseConnectRetryDelay time.Duration `koanf:"-"`
}

const configFileENV = "CONFIG_FILE"

// required maps config keys to the env var that can satisfy them.
var required = map[string]string{
	"database_file_path": "DATABASE_FILE_PATH",
	"jwt_secret":         "JWT_SECRET",
}

// New loads configuration in three layers: built-in defaults, then an
// optional yaml config file (path from CONFIG_FILE, default ./config.yaml),
// then environment variable overrides.
func New() (*Config, error) {
	cfg := defaults()

	k := koanf.New(".")

	configFilePath := os.Getenv(configFileENV)
	if configFilePath == "" {
		configFilePath = "./config.yaml"
	}
	err := k.Load(file.Provider(configFilePath), yaml.Parser())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		// A missing config file is fine; a malformed one is not.
		if _, statErr := os.Stat(configFilePath); statErr == nil {
			return nil, errors.WithStack(err)
		}
	}

	err = k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests: in-memory database, any
// free port, and fast retry settings.
func NewForTest() *Config {
	cfg := defaults()
	cfg.DatabaseFilePath = ":memory:"
	cfg.ServerPort = 0
	cfg.JWTSecret = "test-jwt-secret"
	cfg.DatabaseConnectRetryCount = 1
	cfg.DatabaseConnectRetryDelay = 10 * time.Millisecond
	return cfg
}

func defaults() *Config {
	return &Config{
		ServerHost:                "127.0.0.1",
		ServerPort:                4117,
		DatabaseMaxRetries:        5,
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		MaxLoansPerBorrower:       3,
	}
}

func validate(cfg *Config) error {
	missing := []string{}
	if cfg.DatabaseFilePath == "" {
		missing = append(missing, keyWithEnv("database_file_path"))
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, keyWithEnv("jwt_secret"))
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func keyWithEnv(key string) string {
	return required[key] + " (" + key + ")"
}
