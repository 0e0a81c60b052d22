package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// MintComposable creates a composable token under one of creator's
// collections. The supply starts full: remaining equals TotalSupply and
// nothing is minted. Any mint.Children the creator already holds are
// composed in order, under the same transaction as the mint itself.
func (b *Backend) MintComposable(creator string, mint types.ComposableMint) (string, error) {
	if creator == "" {
		return "", types.ErrInvalidID
	}
	if mint.Name == "" {
		return "", types.ErrInvalidName
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	col, err := getCollectionByName(tx, creator, mint.Collection)
	if err != nil {
		return "", err
	}

	now := time.Now()
	asset := &types.Asset{
		AssetID:      newID(),
		CollectionID: col.CollectionID,
		Name:         mint.Name,
		URI:          mint.URI,
		Owner:        creator,
		Properties:   mint.Properties,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := insertAsset(tx, asset); err != nil {
		return "", err
	}

	comp := &types.Composable{
		ComposableID: newID(),
		AssetID:      asset.AssetID,
		Owner:        creator,
		Supply: types.Supply{
			TotalSupply:     mint.TotalSupply,
			RemainingSupply: mint.TotalSupply,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := insertComposable(tx, comp); err != nil {
		return "", err
	}

	for _, childID := range mint.Children {
		if err := composeChild(tx, creator, comp.ComposableID, childID); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing composable mint: %w", err)
	}
	return comp.ComposableID, nil
}

// MintObject creates an object token, consuming one unit of the target
// composable's supply. The object starts free and owned by the creator.
// Returns ErrSupplyExhausted when the composable has no remaining supply.
func (b *Backend) MintObject(creator string, mint types.ObjectMint) (string, error) {
	if creator == "" || mint.ComposableID == "" {
		return "", types.ErrInvalidID
	}
	if mint.Name == "" {
		return "", types.ErrInvalidName
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	col, err := getCollectionByName(tx, creator, mint.Collection)
	if err != nil {
		return "", err
	}

	comp, err := getComposable(tx, mint.ComposableID)
	if err != nil {
		return "", err
	}
	compAsset, err := getAsset(tx, comp.AssetID)
	if err != nil {
		return "", err
	}
	if compAsset.CollectionID != col.CollectionID {
		return "", types.ErrInvalidData
	}

	if err := reserveSupply(tx, comp.ComposableID); err != nil {
		return "", err
	}

	now := time.Now()
	asset := &types.Asset{
		AssetID:      newID(),
		CollectionID: col.CollectionID,
		Name:         mint.Name,
		URI:          mint.URI,
		Owner:        creator,
		Properties:   mint.Properties,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := insertAsset(tx, asset); err != nil {
		return "", err
	}

	obj := &types.Object{
		ObjectID:     newID(),
		AssetID:      asset.AssetID,
		ComposableID: comp.ComposableID,
		Owner:        creator,
		LockState:    types.LockStateFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := insertObject(tx, obj); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing object mint: %w", err)
	}
	return obj.ObjectID, nil
}
