// Package config loads runtime configuration for the calendar CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Environment variables, after an optional .env file:
//     CALENDAR_DB_DRIVER, CALENDAR_DB_DSN, CALENDAR_LOG_LEVEL,
//     CALENDAR_LOG_FORMAT, CALENDAR_DATE_LAYOUT, CALENDAR_CLEAR_SCREEN.
//  4. Command-line flags: -driver, -dsn, -log-level, -log-format, -export.
//
// # File schema
//
//	{
//	  "driver": "sqlite",
//	  "dsn": "file:calendar.db?_pragma=foreign_keys(1)&_time_format=sqlite",
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "date_layout": "2006-01-02",
//	  "clear_screen": true
//	}
package config
