package repository

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/newsdesk/newsdesk/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

const defaultDSN = "file:newsdesk.db?cache=shared&mode=rwc&_txlock=immediate"

// sqlite tuning applied to every new database handle
var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA temp_store = MEMORY",
	"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
}

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Rules           domain.Schema // rule set seeded on open, built-in rules if empty
}

// Repositories groups the repositories sharing one database handle
type Repositories struct {
	Rule    *RuleRepository
	Setting *SettingRepository
	History *HistoryRepository
	DB      *sqlx.DB
}

// NewRepositories opens the database, creates missing tables and seeds the rule set.
// Seeding never overwrites rules already in the database.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		Rule:    NewRuleRepository(db),
		Setting: NewSettingRepository(db),
		History: NewHistoryRepository(db),
		DB:      db,
	}

	rules := cfg.Rules
	if len(rules) == 0 {
		rules = domain.DefaultSchema()
	}
	if err := repos.Rule.Seed(ctx, rules); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed rules: %w", err)
	}
	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// openDB opens a pooled sqlite handle with pragmas applied and the schema in place
func openDB(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}
