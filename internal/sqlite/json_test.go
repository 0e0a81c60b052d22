package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProperties(t *testing.T) {
	got, err := encodeProperties(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", got)

	got, err = encodeProperties(map[string]any{"slot": "head"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"slot":"head"}`, got)
}

func TestDecodeProperties(t *testing.T) {
	got, err := decodeProperties("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = decodeProperties("{}")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = decodeProperties(`{"slot":"head","level":3}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"slot": "head", "level": float64(3)}, got)

	_, err = decodeProperties("not json")
	assert.Error(t, err)
}
