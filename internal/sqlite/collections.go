package sqlite

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// CreateCollection registers a new collection owned by creator.
// Returns ErrInvalidName on empty name or symbol, ErrCollectionExists when
// the creator already has a collection of that name.
func (b *Backend) CreateCollection(creator string, col types.Collection) (string, error) {
	if creator == "" {
		return "", types.ErrInvalidID
	}
	if err := col.Validate(); err != nil {
		return "", err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = getCollectionByName(tx, creator, col.Name)
	if err == nil {
		return "", types.ErrCollectionExists
	}
	if !errors.Is(err, types.ErrNotFound) {
		return "", err
	}

	col.CollectionID = newID()
	col.Creator = creator
	col.CreatedAt = time.Now()
	if err := insertCollection(tx, &col); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing collection: %w", err)
	}
	return col.CollectionID, nil
}

// GetCollection retrieves a collection by ID.
func (b *Backend) GetCollection(id string) (*types.Collection, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}
	return getCollection(db, id)
}

// ListCollections returns collections, optionally filtered by creator.
// An empty creator matches all.
func (b *Backend) ListCollections(creator string) ([]*types.Collection, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.reader()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + collectionColumns + ` FROM collections`
	args := []any{}
	if creator != "" {
		query += ` WHERE creator = ?`
		args = append(args, creator)
	}
	query += ` ORDER BY created_at`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	var cols []*types.Collection
	for rows.Next() {
		var col types.Collection
		var createdAt string
		if err := rows.Scan(&col.CollectionID, &col.Creator, &col.Name,
			&col.Symbol, &col.URI, &col.SupplyCap, &col.RoyaltyBps,
			&createdAt); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		if col.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing collection created_at: %w", err)
		}
		cols = append(cols, &col)
	}
	return cols, rows.Err()
}
