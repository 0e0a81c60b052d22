// Package sqlite implements the SQLite storage backend for the Locket
// composable-token ledger. Each ledger operation runs inside a single SQL
// transaction under the backend mutex, so every compose, decompose, mint,
// and burn either commits all of its registry, lock, membership, and supply
// updates or none of them.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "locket.db"

// Backend implements the types.Ledger interface using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Ledger = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist and initializes the SQLite schema.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	// modernc sqlite serializes access per connection; a single
	// connection avoids SQLITE_BUSY under concurrent transactions.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	b.config = config
	b.db = db
	b.attached = true
	return nil
}

// Detach releases backend resources. Idempotent: multiple calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// begin starts a transaction for a mutating operation.
// The caller must already hold b.mu and must defer tx.Rollback().
func (b *Backend) begin() (*sql.Tx, error) {
	if !b.attached {
		return nil, types.ErrLedgerDetached
	}
	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return tx, nil
}

// reader returns the database handle for read-only accessors.
// The caller must already hold b.mu (read lock is sufficient).
func (b *Backend) reader() (*sql.DB, error) {
	if !b.attached {
		return nil, types.ErrLedgerDetached
	}
	return b.db, nil
}
