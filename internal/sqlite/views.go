// Read accessors and the URI update hook.
package sqlite

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// GetComposable retrieves a composable wrapper with its child list.
func (b *Backend) GetComposable(id string) (*types.Composable, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}
	return getComposable(db, id)
}

// GetObject retrieves an object wrapper.
func (b *Backend) GetObject(id string) (*types.Object, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}
	return getObject(db, id)
}

// GetAsset retrieves an underlying asset record.
func (b *Backend) GetAsset(id string) (*types.Asset, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}
	return getAsset(db, id)
}

// GetSupply returns the supply counters for a composable.
func (b *Backend) GetSupply(composableID string) (*types.Supply, error) {
	if composableID == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}
	return getSupply(db, composableID)
}

// GetChildren returns the composable's object IDs in insertion order.
// Returns ErrNotFound if the composable does not exist.
func (b *Backend) GetChildren(composableID string) ([]string, error) {
	if composableID == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}
	if _, err := getSupply(db, composableID); err != nil {
		return nil, err
	}
	return childIDs(db, composableID)
}

// UpdateURI replaces the underlying asset URI for a composable, object, or
// asset ID. The ledger stores the caller-supplied replacement verbatim; it
// never computes URIs itself.
func (b *Backend) UpdateURI(id, uri string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if uri == "" {
		return types.ErrInvalidData
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	assetID, err := resolveAssetID(tx, id)
	if err != nil {
		return err
	}
	if err := updateAssetURI(tx, assetID, uri); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing URI update: %w", err)
	}
	return nil
}

// resolveAssetID maps a composable, object, or asset ID to the underlying
// asset ID.
func resolveAssetID(q querier, id string) (string, error) {
	if comp, err := getComposable(q, id); err == nil {
		return comp.AssetID, nil
	} else if !errors.Is(err, types.ErrNotFound) {
		return "", err
	}
	if obj, err := getObject(q, id); err == nil {
		return obj.AssetID, nil
	} else if !errors.Is(err, types.ErrNotFound) {
		return "", err
	}
	if _, err := getAsset(q, id); err != nil {
		return "", err
	}
	return id, nil
}

// ListComposables returns composables, optionally filtered by owner.
func (b *Backend) ListComposables(owner string) ([]*types.Composable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}

	query := `SELECT composable_id FROM composables`
	args := []any{}
	if owner != "" {
		query += ` WHERE owner = ?`
		args = append(args, owner)
	}
	query += ` ORDER BY created_at`

	ids, err := scanIDs(db, query, args...)
	if err != nil {
		return nil, err
	}

	comps := make([]*types.Composable, 0, len(ids))
	for _, id := range ids {
		comp, err := getComposable(db, id)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// ListObjects returns objects, optionally filtered by owner.
func (b *Backend) ListObjects(owner string) ([]*types.Object, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}

	query := `SELECT object_id FROM objects`
	args := []any{}
	if owner != "" {
		query += ` WHERE owner = ?`
		args = append(args, owner)
	}
	query += ` ORDER BY created_at`

	ids, err := scanIDs(db, query, args...)
	if err != nil {
		return nil, err
	}

	objs := make([]*types.Object, 0, len(ids))
	for _, id := range ids {
		obj, err := getObject(db, id)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

func scanIDs(q querier, query string, args ...any) ([]string, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning entity ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
