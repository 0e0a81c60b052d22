package types

import "time"

// Collection is a named, symbol-tagged grouping under which composables and
// objects are minted. Identity is immutable once created; the creator owns
// the collection for the purpose of minting.
type Collection struct {
	// CollectionID is a UUID v7, generated on creation.
	CollectionID string

	// Creator is the address that created the collection and may mint
	// under it.
	Creator string

	// Name is unique per creator.
	Name string

	// Symbol is a short display tag.
	Symbol string

	// URI points at collection-level metadata.
	URI string

	// SupplyCap bounds the number of tokens mintable under the
	// collection; nil means unbounded.
	SupplyCap *uint64

	// RoyaltyBps is the royalty in basis points; nil means no royalty
	// configured. Nothing in this ledger computes payouts.
	RoyaltyBps *uint64

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time
}

// Validate checks the fields required at creation time.
// Returns ErrInvalidName if Name or Symbol is empty.
func (c *Collection) Validate() error {
	if c.Name == "" || c.Symbol == "" {
		return ErrInvalidName
	}
	return nil
}
