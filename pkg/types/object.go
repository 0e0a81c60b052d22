package types

import "time"

// Object lock states. An object is "free" at mint, "composed" while it is a
// child of exactly one composable, and back to "free" after decompose.
const (
	LockStateFree     = "free"
	LockStateComposed = "composed"
)

// Object is the wrapper record for a constituent token.
type Object struct {
	// ObjectID is a UUID v7, generated on mint.
	ObjectID string

	// AssetID references the underlying asset record.
	AssetID string

	// ComposableID is the composable whose supply minted this object.
	// It never changes and is independent of which composable (if any)
	// currently holds the object.
	ComposableID string

	// Owner is the current holder of the wrapper: a user address, or a
	// composable ID while composed.
	Owner string

	// LockState is one of the LockState constants.
	LockState string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Lock marks the object as composed. Returns ErrAlreadyComposed if the
// object is not free. The caller persists via the backend, which freezes
// the underlying asset in the same transaction.
func (o *Object) Lock() error {
	if o.LockState != LockStateFree {
		return ErrAlreadyComposed
	}
	o.LockState = LockStateComposed
	o.UpdatedAt = time.Now()
	return nil
}

// Unlock marks the object as free again. Returns ErrNotComposed if the
// object is not composed.
func (o *Object) Unlock() error {
	if o.LockState != LockStateComposed {
		return ErrNotComposed
	}
	o.LockState = LockStateFree
	o.UpdatedAt = time.Now()
	return nil
}

// Free reports whether the object may be transferred or composed.
func (o *Object) Free() bool {
	return o.LockState == LockStateFree
}
