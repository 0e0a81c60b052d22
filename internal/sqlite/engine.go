// Composition engine: compose, decompose, decomposeAll, and the burn
// operations. Each exported method holds the backend's exclusive mutex and
// runs inside one transaction, so concurrent calls against the same
// composable or object serialize and no partial mutation is ever visible.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// Compose moves a free object owned by owner into the composable's child
// set. The underlying asset and the wrapper both transfer to the
// composable, the asset is frozen, and the object locks to "composed".
func (b *Backend) Compose(owner, composableID, objectID string) error {
	if owner == "" || composableID == "" || objectID == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := composeChild(tx, owner, composableID, objectID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing compose: %w", err)
	}
	return nil
}

// composeChild performs one compose step inside an open transaction.
// Shared by Compose and the pre-populated children of MintComposable.
func composeChild(q querier, owner, composableID, objectID string) error {
	comp, err := getComposable(q, composableID)
	if err != nil {
		return err
	}
	obj, err := getObject(q, objectID)
	if err != nil {
		return err
	}
	asset, err := getAsset(q, obj.AssetID)
	if err != nil {
		return err
	}

	if comp.Owner != owner || obj.Owner != owner || asset.Owner != owner {
		return types.ErrNotOwner
	}
	if err := obj.Lock(); err != nil {
		return err
	}
	if err := requireTransferable(asset); err != nil {
		return err
	}

	// Backstop: the lock state already rules out membership elsewhere,
	// but a free object must never appear in the child set either.
	member, err := isChild(q, composableID, objectID)
	if err != nil {
		return err
	}
	if member {
		return types.ErrAlreadyComposed
	}

	if err := transferAsset(q, asset.AssetID, composableID); err != nil {
		return err
	}
	if err := freezeAsset(q, asset.AssetID); err != nil {
		return err
	}

	obj.Owner = composableID
	if err := updateObject(q, obj); err != nil {
		return err
	}
	if err := appendChild(q, composableID, objectID); err != nil {
		return err
	}
	return touchComposable(q, composableID)
}

// Decompose removes an object from the composable's child set, unfreezes
// its asset, and returns both wrapper and asset to owner. Returns
// ErrNotComposed if the object is not a child of the composable.
func (b *Backend) Decompose(owner, composableID, objectID string) error {
	if owner == "" || composableID == "" || objectID == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	comp, err := getComposable(tx, composableID)
	if err != nil {
		return err
	}
	if comp.Owner != owner {
		return types.ErrNotOwner
	}

	member, err := isChild(tx, composableID, objectID)
	if err != nil {
		return err
	}
	if !member {
		return types.ErrNotComposed
	}

	if err := releaseChild(tx, owner, composableID, objectID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing decompose: %w", err)
	}
	return nil
}

// releaseChild performs one decompose step for a known child inside an
// open transaction: unfreeze, transfer back to owner, unlock, and remove
// the membership row. Shared by Decompose, DecomposeAll, and
// BurnComposable.
func releaseChild(q querier, owner, composableID, objectID string) error {
	obj, err := getObject(q, objectID)
	if err != nil {
		return err
	}
	asset, err := getAsset(q, obj.AssetID)
	if err != nil {
		return err
	}
	if obj.Owner != composableID || asset.Owner != composableID {
		return types.ErrNotOwner
	}

	if err := unfreezeAsset(q, asset.AssetID); err != nil {
		return err
	}
	if err := transferAsset(q, asset.AssetID, owner); err != nil {
		return err
	}

	if err := obj.Unlock(); err != nil {
		return err
	}
	obj.Owner = owner
	if err := updateObject(q, obj); err != nil {
		return err
	}
	if err := removeChild(q, composableID, objectID); err != nil {
		return err
	}
	return touchComposable(q, composableID)
}

// DecomposeAll releases every child of the composable to owner.
// Returns ErrNothingToDecompose when the child set is empty.
func (b *Backend) DecomposeAll(owner, composableID string) error {
	if owner == "" || composableID == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	n, err := releaseAllChildren(tx, owner, composableID)
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNothingToDecompose
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing decompose-all: %w", err)
	}
	return nil
}

// releaseAllChildren snapshots the child list once, then releases each
// entry. Iterating the snapshot instead of the live table means no child
// is ever skipped by concurrent removal. Returns the number released.
func releaseAllChildren(q querier, owner, composableID string) (int, error) {
	comp, err := getComposable(q, composableID)
	if err != nil {
		return 0, err
	}
	if comp.Owner != owner {
		return 0, types.ErrNotOwner
	}

	for _, objectID := range comp.Children {
		if err := releaseChild(q, owner, composableID, objectID); err != nil {
			return 0, err
		}
	}
	return len(comp.Children), nil
}

// BurnComposable releases any children back to owner, then irreversibly
// destroys the composable: wrapper row, underlying asset, and supply
// counters all go. Unlike DecomposeAll, an empty child set is fine.
func (b *Backend) BurnComposable(owner, composableID string) error {
	if owner == "" || composableID == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	comp, err := getComposable(tx, composableID)
	if err != nil {
		return err
	}
	if _, err := releaseAllChildren(tx, owner, composableID); err != nil {
		return err
	}

	if err := deleteAsset(tx, comp.AssetID); err != nil {
		return err
	}
	if err := deleteComposable(tx, composableID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing composable burn: %w", err)
	}
	return nil
}

// BurnObject irreversibly destroys a free object and returns one unit to
// the supply of the composable it was minted against. A composed object
// cannot be burned; that would leave a dangling child reference.
func (b *Backend) BurnObject(owner, composableID, objectID string) error {
	if owner == "" || composableID == "" || objectID == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	obj, err := getObject(tx, objectID)
	if err != nil {
		return err
	}
	if obj.ComposableID != composableID {
		return types.ErrInvalidData
	}
	if !obj.Free() {
		return types.ErrStillComposed
	}

	asset, err := getAsset(tx, obj.AssetID)
	if err != nil {
		return err
	}
	if obj.Owner != owner || asset.Owner != owner {
		return types.ErrNotOwner
	}

	if err := deleteAsset(tx, obj.AssetID); err != nil {
		return err
	}
	if err := deleteObject(tx, objectID); err != nil {
		return err
	}
	if err := releaseSupply(tx, composableID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing object burn: %w", err)
	}
	return nil
}
