// Entity registry: existence-checked lookups and row maintenance for
// collections, assets, composables, and objects. Every absent entity is
// reported as types.ErrNotFound, never as a zero value.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the same registry
// helpers serve read-only accessors and transactional operations.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// newID generates a UUID v7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// Collections.

func insertCollection(q querier, col *types.Collection) error {
	_, err := q.Exec(
		`INSERT INTO collections (collection_id, creator, name, symbol, uri,
		    supply_cap, royalty_bps, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		col.CollectionID, col.Creator, col.Name, col.Symbol, col.URI,
		col.SupplyCap, col.RoyaltyBps, formatTime(col.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}
	return nil
}

func scanCollection(row *sql.Row) (*types.Collection, error) {
	var col types.Collection
	var createdAt string
	err := row.Scan(&col.CollectionID, &col.Creator, &col.Name, &col.Symbol,
		&col.URI, &col.SupplyCap, &col.RoyaltyBps, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning collection: %w", err)
	}
	if col.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing collection created_at: %w", err)
	}
	return &col, nil
}

const collectionColumns = `collection_id, creator, name, symbol, uri,
    supply_cap, royalty_bps, created_at`

func getCollection(q querier, id string) (*types.Collection, error) {
	return scanCollection(q.QueryRow(
		`SELECT `+collectionColumns+` FROM collections WHERE collection_id = ?`, id))
}

func getCollectionByName(q querier, creator, name string) (*types.Collection, error) {
	return scanCollection(q.QueryRow(
		`SELECT `+collectionColumns+` FROM collections WHERE creator = ? AND name = ?`,
		creator, name))
}

// Assets.

func insertAsset(q querier, a *types.Asset) error {
	props, err := encodeProperties(a.Properties)
	if err != nil {
		return err
	}
	_, err = q.Exec(
		`INSERT INTO assets (asset_id, collection_id, name, uri, owner,
		    frozen, properties, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AssetID, a.CollectionID, a.Name, a.URI, a.Owner,
		a.Frozen, props, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting asset: %w", err)
	}
	return nil
}

func getAsset(q querier, id string) (*types.Asset, error) {
	var a types.Asset
	var props, createdAt, updatedAt string
	err := q.QueryRow(
		`SELECT asset_id, collection_id, name, uri, owner, frozen,
		    properties, created_at, updated_at
		 FROM assets WHERE asset_id = ?`, id,
	).Scan(&a.AssetID, &a.CollectionID, &a.Name, &a.URI, &a.Owner,
		&a.Frozen, &props, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning asset: %w", err)
	}
	if a.Properties, err = decodeProperties(props); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing asset created_at: %w", err)
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing asset updated_at: %w", err)
	}
	return &a, nil
}

// transferAsset reassigns ownership of the underlying asset record.
func transferAsset(q querier, assetID, newOwner string) error {
	res, err := q.Exec(
		`UPDATE assets SET owner = ?, updated_at = ? WHERE asset_id = ?`,
		newOwner, formatTime(time.Now()), assetID,
	)
	if err != nil {
		return fmt.Errorf("transferring asset: %w", err)
	}
	return requireRow(res)
}

func updateAssetURI(q querier, assetID, uri string) error {
	res, err := q.Exec(
		`UPDATE assets SET uri = ?, updated_at = ? WHERE asset_id = ?`,
		uri, formatTime(time.Now()), assetID,
	)
	if err != nil {
		return fmt.Errorf("updating asset URI: %w", err)
	}
	return requireRow(res)
}

func deleteAsset(q querier, assetID string) error {
	res, err := q.Exec(`DELETE FROM assets WHERE asset_id = ?`, assetID)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	return requireRow(res)
}

// Composables. Supply counters live on the composable row and are
// maintained by supply.go.

func insertComposable(q querier, c *types.Composable) error {
	_, err := q.Exec(
		`INSERT INTO composables (composable_id, asset_id, owner,
		    total_supply, remaining_supply, total_minted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ComposableID, c.AssetID, c.Owner,
		c.Supply.TotalSupply, c.Supply.RemainingSupply, c.Supply.TotalMinted,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting composable: %w", err)
	}
	return nil
}

// getComposable hydrates the wrapper row and its ordered child list.
func getComposable(q querier, id string) (*types.Composable, error) {
	var c types.Composable
	var createdAt, updatedAt string
	err := q.QueryRow(
		`SELECT composable_id, asset_id, owner, total_supply,
		    remaining_supply, total_minted, created_at, updated_at
		 FROM composables WHERE composable_id = ?`, id,
	).Scan(&c.ComposableID, &c.AssetID, &c.Owner, &c.Supply.TotalSupply,
		&c.Supply.RemainingSupply, &c.Supply.TotalMinted, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning composable: %w", err)
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing composable created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing composable updated_at: %w", err)
	}
	if c.Children, err = childIDs(q, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func touchComposable(q querier, id string) error {
	res, err := q.Exec(
		`UPDATE composables SET updated_at = ? WHERE composable_id = ?`,
		formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("touching composable: %w", err)
	}
	return requireRow(res)
}

func deleteComposable(q querier, id string) error {
	res, err := q.Exec(`DELETE FROM composables WHERE composable_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting composable: %w", err)
	}
	return requireRow(res)
}

// Objects.

func insertObject(q querier, o *types.Object) error {
	_, err := q.Exec(
		`INSERT INTO objects (object_id, asset_id, composable_id, owner,
		    lock_state, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ObjectID, o.AssetID, o.ComposableID, o.Owner, o.LockState,
		formatTime(o.CreatedAt), formatTime(o.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting object: %w", err)
	}
	return nil
}

func getObject(q querier, id string) (*types.Object, error) {
	var o types.Object
	var createdAt, updatedAt string
	err := q.QueryRow(
		`SELECT object_id, asset_id, composable_id, owner, lock_state,
		    created_at, updated_at
		 FROM objects WHERE object_id = ?`, id,
	).Scan(&o.ObjectID, &o.AssetID, &o.ComposableID, &o.Owner, &o.LockState,
		&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning object: %w", err)
	}
	if o.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing object created_at: %w", err)
	}
	if o.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing object updated_at: %w", err)
	}
	return &o, nil
}

// updateObject persists owner and lock-state changes.
func updateObject(q querier, o *types.Object) error {
	res, err := q.Exec(
		`UPDATE objects SET owner = ?, lock_state = ?, updated_at = ?
		 WHERE object_id = ?`,
		o.Owner, o.LockState, formatTime(time.Now()), o.ObjectID,
	)
	if err != nil {
		return fmt.Errorf("updating object: %w", err)
	}
	return requireRow(res)
}

func deleteObject(q querier, id string) error {
	res, err := q.Exec(`DELETE FROM objects WHERE object_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting object: %w", err)
	}
	return requireRow(res)
}

// Child membership. The children table is an ordered set: the primary key
// on object_id rules out double membership, position keeps insertion order.

// childIDs returns the composable's children in insertion order.
func childIDs(q querier, composableID string) ([]string, error) {
	rows, err := q.Query(
		`SELECT object_id FROM children WHERE composable_id = ? ORDER BY position`,
		composableID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// isChild reports whether the object is currently a child of the composable.
func isChild(q querier, composableID, objectID string) (bool, error) {
	var one int
	err := q.QueryRow(
		`SELECT 1 FROM children WHERE composable_id = ? AND object_id = ?`,
		composableID, objectID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return true, nil
}

// appendChild adds the object at the tail of the composable's child list.
func appendChild(q querier, composableID, objectID string) error {
	_, err := q.Exec(
		`INSERT INTO children (object_id, composable_id, position)
		 SELECT ?, ?, COALESCE(MAX(position), 0) + 1
		 FROM children WHERE composable_id = ?`,
		objectID, composableID, composableID,
	)
	if err != nil {
		return fmt.Errorf("appending child: %w", err)
	}
	return nil
}

// removeChild deletes a single membership row; the positions of the
// remaining children are untouched, so their order is preserved.
func removeChild(q querier, composableID, objectID string) error {
	res, err := q.Exec(
		`DELETE FROM children WHERE composable_id = ? AND object_id = ?`,
		composableID, objectID,
	)
	if err != nil {
		return fmt.Errorf("removing child: %w", err)
	}
	return requireRow(res)
}

// requireRow converts a zero-row update or delete into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
