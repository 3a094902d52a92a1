package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophcal/internal/database"
	"github.com/dmitrijs2005/gophcal/internal/logging"
)

// Validate reports every problem found in c at once.
func (c *Config) Validate() error {
	var errs []error

	if !database.Supported(c.Driver) {
		errs = append(errs, fmt.Errorf("unsupported driver %q", c.Driver))
	}
	if strings.TrimSpace(c.DSN) == "" {
		errs = append(errs, errors.New("dsn is required"))
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		errs = append(errs, errors.New("date layout is required"))
	}
	if !logging.KnownLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
