package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/gophcal/internal/database"
	"github.com/dmitrijs2005/gophcal/internal/flagx"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/models"
)

// Config holds runtime settings for the calendar CLI.
type Config struct {
	Driver      string `json:"driver" yaml:"driver" env:"CALENDAR_DB_DRIVER"`
	DSN         string `json:"dsn" yaml:"dsn" env:"CALENDAR_DB_DSN"`
	LogLevel    string `json:"log_level" yaml:"log_level" env:"CALENDAR_LOG_LEVEL"`
	LogFormat   string `json:"log_format" yaml:"log_format" env:"CALENDAR_LOG_FORMAT"`
	DateLayout  string `json:"date_layout" yaml:"date_layout" env:"CALENDAR_DATE_LAYOUT"`
	ClearScreen bool   `json:"clear_screen" yaml:"clear_screen" env:"CALENDAR_CLEAR_SCREEN"`

	// ExportPath is only settable from the command line.
	ExportPath string `json:"-" yaml:"-"`
}

const DefaultDSN = "file:calendar.db?_pragma=foreign_keys(1)&_time_format=sqlite"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Driver = database.DriverSQLite
	c.DSN = DefaultDSN
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
	c.DateLayout = models.DefaultDateLayout
	c.ClearScreen = true
	c.ExportPath = ""
}

// LoadConfig builds a Config from defaults, then the config file named by
// -c/-config, then the environment (a .env file is loaded first when it
// exists), then the command-line flags in args. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// dotEnvFiles are loaded by loadDotEnv; variables already present in the
// environment are not overwritten.
var dotEnvFiles = []string{".env"}

func loadDotEnv() error {
	for _, f := range dotEnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
