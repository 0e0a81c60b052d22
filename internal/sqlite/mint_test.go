package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/locket/pkg/types"
)

func TestMintComposable(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")

	id, err := b.MintComposable("alice", types.ComposableMint{
		Collection:  col,
		Name:        "avatar",
		URI:         "ipfs://avatar",
		TotalSupply: 3,
		Properties:  map[string]any{"tier": "gold"},
	})
	require.NoError(t, err)

	comp, err := b.GetComposable(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", comp.Owner)
	assert.Empty(t, comp.Children)
	assert.Equal(t, types.Supply{TotalSupply: 3, RemainingSupply: 3}, comp.Supply)

	asset, err := b.GetAsset(comp.AssetID)
	require.NoError(t, err)
	assert.Equal(t, "avatar", asset.Name)
	assert.Equal(t, "alice", asset.Owner)
	assert.False(t, asset.Frozen)
	assert.Equal(t, map[string]any{"tier": "gold"}, asset.Properties)
}

func TestMintComposableValidation(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")

	_, err := b.MintComposable("alice", types.ComposableMint{Collection: col})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = b.MintComposable("alice", types.ComposableMint{Collection: "missing", Name: "x"})
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Only the collection creator can mint under it.
	_, err = b.MintComposable("bob", types.ComposableMint{Collection: col, Name: "x"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestMintComposableWithChildren(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")

	// Objects come from an existing composable's supply.
	source := seedComposable(t, b, "alice", col, 2)
	hat := seedObject(t, b, "alice", col, source, "hat")
	cape := seedObject(t, b, "alice", col, source, "cape")

	id, err := b.MintComposable("alice", types.ComposableMint{
		Collection: col,
		Name:       "dressed-avatar",
		Children:   []string{hat, cape},
	})
	require.NoError(t, err)

	children, err := b.GetChildren(id)
	require.NoError(t, err)
	assert.Equal(t, []string{hat, cape}, children)

	obj, err := b.GetObject(hat)
	require.NoError(t, err)
	assert.Equal(t, types.LockStateComposed, obj.LockState)
	assert.Equal(t, id, obj.Owner)
}

func TestMintComposableChildFailureRollsBack(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")
	source := seedComposable(t, b, "alice", col, 1)
	hat := seedObject(t, b, "alice", col, source, "hat")

	// Second child does not exist, so the whole mint must abort.
	_, err := b.MintComposable("alice", types.ComposableMint{
		Collection: col,
		Name:       "dressed-avatar",
		Children:   []string{hat, "missing"},
	})
	require.ErrorIs(t, err, types.ErrNotFound)

	// The first child was not composed and no composable was created.
	obj, err := b.GetObject(hat)
	require.NoError(t, err)
	assert.Equal(t, types.LockStateFree, obj.LockState)
	assert.Equal(t, "alice", obj.Owner)

	comps, err := b.ListComposables("alice")
	require.NoError(t, err)
	assert.Len(t, comps, 1) // just the source
}

func TestMintObject(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")
	comp := seedComposable(t, b, "alice", col, 2)

	id, err := b.MintObject("alice", types.ObjectMint{
		Collection:   col,
		Name:         "hat",
		URI:          "ipfs://hat",
		ComposableID: comp,
	})
	require.NoError(t, err)

	obj, err := b.GetObject(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", obj.Owner)
	assert.Equal(t, comp, obj.ComposableID)
	assert.Equal(t, types.LockStateFree, obj.LockState)

	supply, err := b.GetSupply(comp)
	require.NoError(t, err)
	assert.Equal(t, types.Supply{TotalSupply: 2, RemainingSupply: 1, TotalMinted: 1}, *supply)
}

func TestMintObjectSupplyBoundary(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")
	comp := seedComposable(t, b, "alice", col, 2)

	// Two mints succeed, the third fails.
	seedObject(t, b, "alice", col, comp, "a")
	seedObject(t, b, "alice", col, comp, "b")

	_, err := b.MintObject("alice", types.ObjectMint{
		Collection:   col,
		Name:         "c",
		ComposableID: comp,
	})
	assert.ErrorIs(t, err, types.ErrSupplyExhausted)

	supply, err := b.GetSupply(comp)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), supply.RemainingSupply)
	assert.Equal(t, uint64(2), supply.TotalMinted)
	assert.Equal(t, supply.TotalSupply, supply.TotalMinted+supply.RemainingSupply)
}

func TestMintObjectValidation(t *testing.T) {
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")
	comp := seedComposable(t, b, "alice", col, 1)

	_, err := b.MintObject("alice", types.ObjectMint{Collection: col, ComposableID: comp})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = b.MintObject("alice", types.ObjectMint{Collection: col, Name: "x"})
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = b.MintObject("alice", types.ObjectMint{Collection: col, Name: "x", ComposableID: "missing"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
