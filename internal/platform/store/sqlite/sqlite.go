// Package sqlite provides a read-mostly SQLite client for the embedded
// n-gram corpus, backed by the pure-Go modernc.org/sqlite driver
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Config configures the corpus database handle
type Config struct {
	// Path is the filesystem location of the corpus database file
	Path string
	// ReadOnly opens the database with mode=ro and query_only(1);
	// the corpus is rebuilt out-of-band and never written by the service
	ReadOnly bool
	// MaxOpenConns bounds the connection pool; SQLite tolerates many
	// concurrent readers but a single writer, so this is generous for reads
	MaxOpenConns int
}

// SQLite is a corpus client wrapping a database/sql handle
type SQLite struct {
	DB *sql.DB
}

// Open creates a new SQLite client for the corpus database at cfg.Path
func Open(ctx context.Context, cfg Config) (*SQLite, error) {
	dsn := cfg.Path
	if cfg.ReadOnly {
		dsn = fmt.Sprintf("file:%s?mode=ro&_pragma=query_only(1)", cfg.Path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", cfg.Path, err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 4
	}
	db.SetMaxOpenConns(maxOpen)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", cfg.Path, err)
	}

	return &SQLite{DB: db}, nil
}

// Close closes the underlying handle
func (s *SQLite) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
