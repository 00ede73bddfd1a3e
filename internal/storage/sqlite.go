// Package storage provides SQLite-based persistence for the wallet, the
// coin ledger, owned skins and play history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// InitialBalance is the wallet balance of a fresh database.
const InitialBalance = 1000

var (
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("storage: insufficient funds")
	// ErrUnknownSkin is returned for a skin id outside the catalogue.
	ErrUnknownSkin = errors.New("storage: unknown skin")
	// ErrSkinNotOwned is returned when selecting a skin that was not bought.
	ErrSkinNotOwned = errors.New("storage: skin not owned")
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	log *log.Logger
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialise writers instead of
	// surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, log: log.New(io.Discard)}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// SetLogger sets the logger used for wallet and skin changes.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.log = l
	}
}

// migrate creates the database schema if it doesn't exist and seeds the
// wallet and the default skin.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			balance INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS ledger (
			id TEXT PRIMARY KEY,
			amount INTEGER NOT NULL,
			reason TEXT NOT NULL,
			balance_after INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS skins_owned (
			skin_id TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			reward INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level ON sessions(level);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO wallet (id, balance) VALUES (1, ?)", InitialBalance,
	); err != nil {
		return err
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO skins_owned (skin_id) VALUES (?)", DefaultSkinID)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime converts a scanned DATETIME column, which the driver may
// return as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
