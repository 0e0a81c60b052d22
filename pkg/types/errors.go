package types

import "errors"

// Registry and input errors.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidID        = errors.New("invalid entity ID")
	ErrInvalidData      = errors.New("invalid entity data")
	ErrInvalidName      = errors.New("invalid name")
	ErrCollectionExists = errors.New("collection already exists")
)

// Ownership and transfer-lock errors.
var (
	ErrNotOwner       = errors.New("caller does not own the entity")
	ErrTransferLocked = errors.New("asset transfer is locked")
)

// Composition errors.
var (
	ErrAlreadyComposed    = errors.New("object is already composed")
	ErrNotComposed        = errors.New("object is not a child of the composable")
	ErrNothingToDecompose = errors.New("composable has no children")
	ErrStillComposed      = errors.New("object is still composed")
)

// Supply accounting errors.
var (
	ErrSupplyExhausted = errors.New("supply exhausted")
	ErrSupplyInvariant = errors.New("supply invariant violated")
)
