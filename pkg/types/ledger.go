package types

import "errors"

// ComposableMint holds the parameters for minting a composable token.
type ComposableMint struct {
	// Collection is the name of the collection to mint under. The caller
	// must be the collection's creator.
	Collection string

	// Name is the token name (required, non-empty).
	Name string

	// URI points at the token's metadata.
	URI string

	// TotalSupply bounds how many objects may be minted against the
	// composable. Zero means the composable mints no objects.
	TotalSupply uint64

	// Children optionally pre-populates the composable with objects the
	// creator already holds. Each entry must satisfy the compose
	// preconditions.
	Children []string

	// Properties holds arbitrary metadata stored on the underlying asset.
	Properties map[string]any
}

// ObjectMint holds the parameters for minting an object token.
type ObjectMint struct {
	// Collection is the name of the collection to mint under.
	Collection string

	// Name is the token name (required, non-empty).
	Name string

	// URI points at the token's metadata.
	URI string

	// ComposableID is the composable whose supply the mint consumes.
	ComposableID string

	// Properties holds arbitrary metadata stored on the underlying asset.
	Properties map[string]any
}

// Ledger is the backend-agnostic interface to the composable-token store.
// Callers attach to a backend, run operations, and detach when done. Every
// mutating operation is atomic: it either commits all of its registry, lock,
// membership, and supply updates or none of them.
type Ledger interface {
	// Attach connects the Ledger to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrLedgerDetached.
	Detach() error

	// CreateCollection registers a new collection owned by creator.
	// Returns ErrInvalidName on empty name or symbol and
	// ErrCollectionExists when the creator already has a collection of
	// that name.
	CreateCollection(creator string, col Collection) (string, error)

	// MintComposable creates a composable token under one of creator's
	// collections, with a supply of mint.TotalSupply and any
	// pre-composed children.
	MintComposable(creator string, mint ComposableMint) (string, error)

	// MintObject creates an object token, consuming one unit of the
	// target composable's supply. Returns ErrSupplyExhausted when the
	// composable has no remaining supply.
	MintObject(creator string, mint ObjectMint) (string, error)

	// Compose moves a free object owned by owner into the composable's
	// child set, freezing its underlying asset and transferring
	// ownership to the composable.
	Compose(owner, composableID, objectID string) error

	// Decompose removes an object from the composable's child set,
	// unfreezing it and returning ownership to owner. Returns
	// ErrNotComposed if the object is not a child.
	Decompose(owner, composableID, objectID string) error

	// DecomposeAll releases every child of the composable to owner.
	// Returns ErrNothingToDecompose when there are no children.
	DecomposeAll(owner, composableID string) error

	// BurnComposable releases any children to owner, then destroys the
	// composable, its underlying asset, and its supply counters.
	BurnComposable(owner, composableID string) error

	// BurnObject destroys a free object and returns one unit to the
	// supply of the composable it was minted against. Returns
	// ErrStillComposed if the object is currently composed.
	BurnObject(owner, composableID, objectID string) error

	// UpdateURI replaces the underlying asset URI for a composable,
	// object, or asset ID. The ledger never computes URIs.
	UpdateURI(id, uri string) error

	// Accessors. Absent entities return ErrNotFound, never zero values.
	GetCollection(id string) (*Collection, error)
	GetComposable(id string) (*Composable, error)
	GetObject(id string) (*Object, error)
	GetAsset(id string) (*Asset, error)
	GetSupply(composableID string) (*Supply, error)
	GetChildren(composableID string) ([]string, error)

	// Listings. An empty filter string matches all.
	ListCollections(creator string) ([]*Collection, error)
	ListComposables(owner string) ([]*Composable, error)
	ListObjects(owner string) ([]*Object, error)
}

// Ledger lifecycle errors.
var (
	ErrLedgerDetached  = errors.New("ledger is detached")
	ErrAlreadyAttached = errors.New("ledger is already attached")
)
