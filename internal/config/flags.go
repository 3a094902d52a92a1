package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophcal/internal/flagx"
)

var knownFlags = []string{
	"-driver", "--driver",
	"-dsn", "--dsn",
	"-log-level", "--log-level",
	"-log-format", "--log-format",
	"-export", "--export",
}

// parseFlags overlays cfg with command-line flags.
//
//	-driver string      sqlite, postgres or mysql
//	-dsn string         data source name for the driver
//	-log-level string   debug, info, warn or error
//	-log-format string  text or json
//	-export string      write the calendar to this .ics file and exit
//
// Arguments it does not know about (like -c) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Driver, "driver", cfg.Driver, "database driver")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "database data source name")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.ExportPath, "export", cfg.ExportPath, "export calendar to an .ics file and exit")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
