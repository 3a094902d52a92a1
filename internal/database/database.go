// Package database opens the calendar store: it connects with the configured
// database/sql driver, applies the embedded goose migrations for that
// dialect and hands the connection to GORM.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/migrations"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported values for Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config selects the store backend.
type Config struct {
	Driver string
	DSN    string
}

// dialect binds a driver name to everything that differs between backends.
type dialect struct {
	sqlDriver     string
	gooseDialect  string
	migrationsDir string
	gorm          func(conn *sql.DB) gorm.Dialector
}

var dialects = map[string]dialect{
	DriverSQLite: {
		sqlDriver:     "sqlite",
		gooseDialect:  "sqlite3",
		migrationsDir: "sqlite",
		gorm: func(conn *sql.DB) gorm.Dialector {
			return &sqlite.Dialector{DriverName: "sqlite", Conn: conn}
		},
	},
	DriverPostgres: {
		sqlDriver:     "pgx",
		gooseDialect:  "postgres",
		migrationsDir: "postgres",
		gorm: func(conn *sql.DB) gorm.Dialector {
			return postgres.New(postgres.Config{Conn: conn})
		},
	},
	DriverMySQL: {
		sqlDriver:     "mysql",
		gooseDialect:  "mysql",
		migrationsDir: "mysql",
		gorm: func(conn *sql.DB) gorm.Dialector {
			return mysql.New(mysql.Config{Conn: conn})
		},
	},
}

// Supported reports whether driver names a known backend.
func Supported(driver string) bool {
	_, ok := dialects[driver]
	return ok
}

// RunMigrations applies all pending migrations for the given driver.
// Running it against an up-to-date schema is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", driver)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, d.migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open connects to the store, migrates it and returns a GORM handle.
// The caller owns the handle and must release it with Close.
func Open(ctx context.Context, cfg Config, log logging.Logger, level string) (*gorm.DB, error) {
	d, ok := dialects[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	sqlDB, err := sql.Open(d.sqlDriver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	if err := RunMigrations(ctx, sqlDB, cfg.Driver); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	db, err := gorm.Open(d.gorm(sqlDB), &gorm.Config{
		// sessions are managed explicitly by dbx.WithSession
		SkipDefaultTransaction: true,
		Logger:                 NewGormLogger(log, level),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init gorm: %w", err)
	}

	log.Debug(ctx, "store opened", "driver", cfg.Driver)
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
