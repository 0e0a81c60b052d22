package types

import "time"

// Supply tracks how many object tokens may be minted against a composable.
// The invariant TotalMinted + RemainingSupply == TotalSupply holds before
// and after every operation.
type Supply struct {
	TotalSupply     uint64
	RemainingSupply uint64
	TotalMinted     uint64
}

// Reserve consumes one unit of remaining supply for an object mint.
// Returns ErrSupplyExhausted when RemainingSupply is zero.
func (s *Supply) Reserve() error {
	if s.RemainingSupply == 0 {
		return ErrSupplyExhausted
	}
	s.RemainingSupply--
	s.TotalMinted++
	return nil
}

// Release returns one unit of supply after an object burn.
// Returns ErrSupplyInvariant if no unit is outstanding or the counters no
// longer satisfy the supply invariant; that indicates a prior bug and is
// unreachable through the Ledger operations.
func (s *Supply) Release() error {
	if s.TotalMinted == 0 || s.TotalMinted+s.RemainingSupply != s.TotalSupply {
		return ErrSupplyInvariant
	}
	s.TotalMinted--
	s.RemainingSupply++
	return nil
}

// Composable is the wrapper record for a container token. Child membership
// is stored by the backend as an ordered set; Children is hydrated on reads
// and holds object IDs in insertion order.
type Composable struct {
	// ComposableID is a UUID v7, generated on mint.
	ComposableID string

	// AssetID references the underlying asset record.
	AssetID string

	// Owner is the current holder of the wrapper.
	Owner string

	// Supply bounds object minting against this composable.
	Supply Supply

	// Children holds the composed object IDs in insertion order.
	Children []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
