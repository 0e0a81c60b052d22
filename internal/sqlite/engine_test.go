package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/locket/pkg/types"
)

// composed fixture: alice owns a composable with supply for five objects.
type fixture struct {
	b    *Backend
	col  string
	comp string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := newTestBackend(t)
	col := seedCollection(t, b, "alice")
	comp := seedComposable(t, b, "alice", col, 5)
	return &fixture{b: b, col: col, comp: comp}
}

func (f *fixture) object(t *testing.T, name string) string {
	t.Helper()
	return seedObject(t, f.b, "alice", f.col, f.comp, name)
}

func TestCompose(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	require.NoError(t, f.b.Compose("alice", f.comp, hat))

	obj, err := f.b.GetObject(hat)
	require.NoError(t, err)
	assert.Equal(t, types.LockStateComposed, obj.LockState)
	assert.Equal(t, f.comp, obj.Owner)

	asset, err := f.b.GetAsset(obj.AssetID)
	require.NoError(t, err)
	assert.True(t, asset.Frozen)
	assert.Equal(t, f.comp, asset.Owner)

	children, err := f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Equal(t, []string{hat}, children)
}

func TestComposeOwnershipViolation(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	// Caller owns neither token.
	assert.ErrorIs(t, f.b.Compose("bob", f.comp, hat), types.ErrNotOwner)

	// Nothing changed.
	obj, err := f.b.GetObject(hat)
	require.NoError(t, err)
	assert.Equal(t, types.LockStateFree, obj.LockState)
	assert.Equal(t, "alice", obj.Owner)

	children, err := f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestComposeTwiceRejected(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	require.NoError(t, f.b.Compose("alice", f.comp, hat))

	// A composed object is owned by the composable, not the caller.
	assert.ErrorIs(t, f.b.Compose("alice", f.comp, hat), types.ErrNotOwner)

	children, err := f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Equal(t, []string{hat}, children)
}

func TestComposeIntoSecondComposableRejected(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")
	other, err := f.b.MintComposable("alice", types.ComposableMint{
		Collection: f.col,
		Name:       "other-avatar",
	})
	require.NoError(t, err)

	require.NoError(t, f.b.Compose("alice", f.comp, hat))
	assert.ErrorIs(t, f.b.Compose("alice", other, hat), types.ErrNotOwner)

	children, err := f.b.GetChildren(other)
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestComposeNotFound(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	assert.ErrorIs(t, f.b.Compose("alice", "missing", hat), types.ErrNotFound)
	assert.ErrorIs(t, f.b.Compose("alice", f.comp, "missing"), types.ErrNotFound)
	assert.ErrorIs(t, f.b.Compose("", f.comp, hat), types.ErrInvalidID)
}

func TestDecomposeRoundTrip(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")
	cape := f.object(t, "cape")

	require.NoError(t, f.b.Compose("alice", f.comp, hat))
	require.NoError(t, f.b.Compose("alice", f.comp, cape))
	require.NoError(t, f.b.Decompose("alice", f.comp, hat))

	// Remaining order preserved.
	children, err := f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Equal(t, []string{cape}, children)

	// The object and its asset are free and back with alice.
	obj, err := f.b.GetObject(hat)
	require.NoError(t, err)
	assert.Equal(t, types.LockStateFree, obj.LockState)
	assert.Equal(t, "alice", obj.Owner)

	asset, err := f.b.GetAsset(obj.AssetID)
	require.NoError(t, err)
	assert.False(t, asset.Frozen)
	assert.Equal(t, "alice", asset.Owner)

	// The freed object can be composed again.
	require.NoError(t, f.b.Compose("alice", f.comp, hat))
	children, err = f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Equal(t, []string{cape, hat}, children)
}

func TestDecomposeTwiceFails(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	require.NoError(t, f.b.Compose("alice", f.comp, hat))
	require.NoError(t, f.b.Decompose("alice", f.comp, hat))
	assert.ErrorIs(t, f.b.Decompose("alice", f.comp, hat), types.ErrNotComposed)
}

func TestDecomposeNotComposed(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	assert.ErrorIs(t, f.b.Decompose("alice", f.comp, hat), types.ErrNotComposed)
}

func TestDecomposeOwnershipViolation(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")
	require.NoError(t, f.b.Compose("alice", f.comp, hat))

	assert.ErrorIs(t, f.b.Decompose("bob", f.comp, hat), types.ErrNotOwner)

	// Still composed.
	children, err := f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Equal(t, []string{hat}, children)
}

func TestDecomposeAll(t *testing.T) {
	for _, n := range []int{1, 5} {
		t.Run(fmt.Sprintf("%d children", n), func(t *testing.T) {
			f := newFixture(t)

			var objects []string
			for i := 0; i < n; i++ {
				id := f.object(t, fmt.Sprintf("part-%d", i))
				require.NoError(t, f.b.Compose("alice", f.comp, id))
				objects = append(objects, id)
			}

			require.NoError(t, f.b.DecomposeAll("alice", f.comp))

			children, err := f.b.GetChildren(f.comp)
			require.NoError(t, err)
			assert.Empty(t, children, "no child may be skipped")

			for _, id := range objects {
				obj, err := f.b.GetObject(id)
				require.NoError(t, err)
				assert.Equal(t, types.LockStateFree, obj.LockState)
				assert.Equal(t, "alice", obj.Owner)
			}
		})
	}
}

func TestDecomposeAllEmpty(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.b.DecomposeAll("alice", f.comp), types.ErrNothingToDecompose)
}

func TestBurnComposable(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")
	require.NoError(t, f.b.Compose("alice", f.comp, hat))

	comp, err := f.b.GetComposable(f.comp)
	require.NoError(t, err)

	require.NoError(t, f.b.BurnComposable("alice", f.comp))

	// Wrapper, asset, and supply are gone.
	_, err = f.b.GetComposable(f.comp)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = f.b.GetAsset(comp.AssetID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = f.b.GetSupply(f.comp)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// The child was released first.
	obj, err := f.b.GetObject(hat)
	require.NoError(t, err)
	assert.Equal(t, types.LockStateFree, obj.LockState)
	assert.Equal(t, "alice", obj.Owner)
}

func TestBurnComposableEmpty(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.b.BurnComposable("alice", f.comp))

	_, err := f.b.GetComposable(f.comp)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestBurnComposableOwnershipViolation(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.b.BurnComposable("bob", f.comp), types.ErrNotOwner)

	_, err := f.b.GetComposable(f.comp)
	assert.NoError(t, err)
}

func TestBurnObject(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	before, err := f.b.GetSupply(f.comp)
	require.NoError(t, err)

	obj, err := f.b.GetObject(hat)
	require.NoError(t, err)

	require.NoError(t, f.b.BurnObject("alice", f.comp, hat))

	_, err = f.b.GetObject(hat)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = f.b.GetAsset(obj.AssetID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	after, err := f.b.GetSupply(f.comp)
	require.NoError(t, err)
	assert.Equal(t, before.RemainingSupply+1, after.RemainingSupply)
	assert.Equal(t, before.TotalMinted-1, after.TotalMinted)
	assert.Equal(t, after.TotalSupply, after.TotalMinted+after.RemainingSupply)
}

func TestBurnObjectStillComposed(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")
	require.NoError(t, f.b.Compose("alice", f.comp, hat))

	assert.ErrorIs(t, f.b.BurnObject("alice", f.comp, hat), types.ErrStillComposed)

	// No dangling reference: the child entry is intact.
	children, err := f.b.GetChildren(f.comp)
	require.NoError(t, err)
	assert.Equal(t, []string{hat}, children)
}

func TestBurnObjectWrongComposable(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")
	other, err := f.b.MintComposable("alice", types.ComposableMint{
		Collection:  f.col,
		Name:        "other-avatar",
		TotalSupply: 1,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.b.BurnObject("alice", other, hat), types.ErrInvalidData)
}

func TestUpdateURI(t *testing.T) {
	f := newFixture(t)
	hat := f.object(t, "hat")

	require.NoError(t, f.b.UpdateURI(hat, "ipfs://hat-v2"))

	obj, err := f.b.GetObject(hat)
	require.NoError(t, err)
	asset, err := f.b.GetAsset(obj.AssetID)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://hat-v2", asset.URI)

	// Composable and raw asset IDs resolve too.
	require.NoError(t, f.b.UpdateURI(f.comp, "ipfs://avatar-v2"))
	require.NoError(t, f.b.UpdateURI(asset.AssetID, "ipfs://hat-v3"))

	assert.ErrorIs(t, f.b.UpdateURI(hat, ""), types.ErrInvalidData)
	assert.ErrorIs(t, f.b.UpdateURI("missing", "ipfs://x"), types.ErrNotFound)
}

// The supply invariant holds across a whole mint/compose/burn lifecycle.
func TestSupplyInvariantAcrossOperations(t *testing.T) {
	f := newFixture(t)

	check := func() {
		t.Helper()
		s, err := f.b.GetSupply(f.comp)
		require.NoError(t, err)
		assert.Equal(t, s.TotalSupply, s.TotalMinted+s.RemainingSupply)
	}

	check()
	hat := f.object(t, "hat")
	check()
	require.NoError(t, f.b.Compose("alice", f.comp, hat))
	check()
	require.NoError(t, f.b.Decompose("alice", f.comp, hat))
	check()
	require.NoError(t, f.b.BurnObject("alice", f.comp, hat))
	check()
}
