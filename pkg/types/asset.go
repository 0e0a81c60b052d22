package types

import "time"

// Asset is the underlying token record behind a composable or object
// wrapper. Ownership transfers and the transfer-lock flag live here; the
// wrappers reference exactly one asset each.
type Asset struct {
	// AssetID is a UUID v7, generated on creation.
	AssetID string

	// CollectionID is the collection the asset was minted under.
	CollectionID string

	// Name is a human-readable name (required, non-empty).
	Name string

	// URI points at the asset's metadata. The ledger stores replacements
	// verbatim; it never computes URIs.
	URI string

	// Owner is the current holder: a user address, or a composable ID
	// while the asset is composed.
	Owner string

	// Frozen forbids direct ownership transfer. Only the composition
	// operations toggle it.
	Frozen bool

	// Properties holds arbitrary metadata keyed by name.
	Properties map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}
