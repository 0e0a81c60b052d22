// Package sqlite provides the public API for the SQLite Ledger backend.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/mesh-intelligence/locket/internal/sqlite"
	"github.com/mesh-intelligence/locket/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	ledger := sqlite.NewBackend()
//	err := ledger.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".locket-db",
//	})
//	defer ledger.Detach()
func NewBackend() types.Ledger {
	return sqlite.NewBackend()
}
