package sqlite

import "database/sql"

// Schema DDL. Timestamps are RFC 3339 UTC strings; the properties column
// holds a JSON object.
const (
	createCollections = `CREATE TABLE IF NOT EXISTS collections (
    collection_id TEXT PRIMARY KEY,
    creator TEXT NOT NULL,
    name TEXT NOT NULL,
    symbol TEXT NOT NULL,
    uri TEXT NOT NULL,
    supply_cap INTEGER,
    royalty_bps INTEGER,
    created_at TEXT NOT NULL,
    UNIQUE (creator, name)
);`

	createAssets = `CREATE TABLE IF NOT EXISTS assets (
    asset_id TEXT PRIMARY KEY,
    collection_id TEXT NOT NULL,
    name TEXT NOT NULL,
    uri TEXT NOT NULL,
    owner TEXT NOT NULL,
    frozen INTEGER NOT NULL DEFAULT 0,
    properties TEXT NOT NULL DEFAULT '{}',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createComposables = `CREATE TABLE IF NOT EXISTS composables (
    composable_id TEXT PRIMARY KEY,
    asset_id TEXT NOT NULL,
    owner TEXT NOT NULL,
    total_supply INTEGER NOT NULL,
    remaining_supply INTEGER NOT NULL,
    total_minted INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createObjects = `CREATE TABLE IF NOT EXISTS objects (
    object_id TEXT PRIMARY KEY,
    asset_id TEXT NOT NULL,
    composable_id TEXT NOT NULL,
    owner TEXT NOT NULL,
    lock_state TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	// The primary key on object_id makes double membership structurally
	// impossible; position preserves insertion order.
	createChildren = `CREATE TABLE IF NOT EXISTS children (
    object_id TEXT PRIMARY KEY,
    composable_id TEXT NOT NULL,
    position INTEGER NOT NULL
);`

	createChildrenIndex = `CREATE INDEX IF NOT EXISTS idx_children_composable
    ON children (composable_id, position);`
)

// initSchema creates all tables if they do not exist.
func initSchema(db *sql.DB) error {
	ddl := []string{
		createCollections,
		createAssets,
		createComposables,
		createObjects,
		createChildren,
		createChildrenIndex,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
