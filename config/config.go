package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver          string `yaml:"driver"`
	Host            string `yaml:"host"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	Port            int    `yaml:"port"`
	Path            string `yaml:"path"`
	URL             string `yaml:"url"`
	ConnectionLimit int    `yaml:"connection_limit"`
	Workers         int    `yaml:"workers"`
	SchemaFile      string `yaml:"schema_file"`
	SeedFile        string `yaml:"seed_file"`
	LogLevel        string `yaml:"log_level"`
}

// Options points LoadConfig at optional files. Empty fields are skipped.
type Options struct {
	EnvFile  string
	YAMLFile string
}

func Default() Config {
	return Config{
		Driver:          DriverSQLite,
		Host:            "localhost",
		Port:            5432,
		Path:            "employee_tracker.db",
		ConnectionLimit: 10,
		Workers:         1,
		LogLevel:        "info",
	}
}

// LoadConfig layers defaults, the YAML file and the environment (the env file
// is loaded into the environment first, non-empty variables win).
func LoadConfig(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := loadEnvFile(opts.EnvFile); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if opts.YAMLFile != "" {
		data, err := os.ReadFile(opts.YAMLFile)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile fills variables that are unset or empty from the dotenv file.
// A missing file is not an error.
func loadEnvFile(path string) error {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	for key, value := range values {
		if cur, ok := os.LookupEnv(key); ok && cur != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"DB_DRIVER":    &cfg.Driver,
		"DB_HOST":      &cfg.Host,
		"DB_USER":      &cfg.User,
		"DB_PASSWORD":  &cfg.Password,
		"DB_DATABASE":  &cfg.Database,
		"DB_PATH":      &cfg.Path,
		"DATABASE_URL": &cfg.URL,
		"SCHEMA_FILE":  &cfg.SchemaFile,
		"SEED_FILE":    &cfg.SeedFile,
		"LOG_LEVEL":    &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"DB_PORT":             &cfg.Port,
		"DB_CONNECTION_LIMIT": &cfg.ConnectionLimit,
		"DB_WORKERS":          &cfg.Workers,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return ErrMissingSetting{Name: "DB_PATH"}
		}
	case DriverPostgres:
		if c.URL != "" {
			break
		}
		if c.Host == "" {
			return ErrMissingSetting{Name: "DB_HOST"}
		}
		if c.User == "" {
			return ErrMissingSetting{Name: "DB_USER"}
		}
		if c.Database == "" {
			return ErrMissingSetting{Name: "DB_DATABASE"}
		}
	default:
		return ErrUnknownDriver{Driver: c.Driver}
	}
	if c.ConnectionLimit < 1 {
		c.ConnectionLimit = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return "file:" + c.Path + sep + "_foreign_keys=on"
	}
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type ErrUnknownDriver struct {
	Driver string
}

func (e ErrUnknownDriver) Error() string {
	return fmt.Sprintf("unknown DB_DRIVER %q (want %s or %s)", e.Driver, DriverSQLite, DriverPostgres)
}

type ErrMissingSetting struct {
	Name string
}

func (e ErrMissingSetting) Error() string {
	return e.Name + " is not set"
}
