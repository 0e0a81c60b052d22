package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectLock(t *testing.T) {
	tests := []struct {
		name      string
		initial   string
		wantErr   error
		wantState string
	}{
		{
			name:      "lock a free object",
			initial:   LockStateFree,
			wantState: LockStateComposed,
		},
		{
			name:    "lock an already composed object",
			initial: LockStateComposed,
			wantErr: ErrAlreadyComposed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Object{LockState: tt.initial}
			err := o.Lock()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, o.LockState)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantState, o.LockState)
		})
	}
}

func TestObjectUnlock(t *testing.T) {
	tests := []struct {
		name      string
		initial   string
		wantErr   error
		wantState string
	}{
		{
			name:      "unlock a composed object",
			initial:   LockStateComposed,
			wantState: LockStateFree,
		},
		{
			name:    "unlock a free object",
			initial: LockStateFree,
			wantErr: ErrNotComposed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Object{LockState: tt.initial}
			err := o.Unlock()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantState, o.LockState)
		})
	}
}

func TestObjectFree(t *testing.T) {
	o := &Object{LockState: LockStateFree}
	assert.True(t, o.Free())

	assert.NoError(t, o.Lock())
	assert.False(t, o.Free())

	assert.NoError(t, o.Unlock())
	assert.True(t, o.Free())
}
