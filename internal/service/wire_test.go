package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireNumberUnmarshal(t *testing.T) {
	var payload struct {
		Quantity WireNumber `json:"quantity"`
	}

	t.Run("numeric string", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"quantity":"3.5"}`), &payload))
		v, err := payload.Quantity.Float()
		require.NoError(t, err)
		assert.Equal(t, 3.5, v)
	})

	t.Run("raw number", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"quantity":3.5}`), &payload))
		v, err := payload.Quantity.Float()
		require.NoError(t, err)
		assert.Equal(t, 3.5, v)
	})

	t.Run("null and absent are empty", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"quantity":null}`), &payload))
		assert.True(t, payload.Quantity.Empty())

		payload.Quantity = ""
		require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
		assert.True(t, payload.Quantity.Empty())
	})
}

func TestWireNumberInt(t *testing.T) {
	n := WireNumber("7")
	v, err := n.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	// Whole-unit fields reject fractional input instead of truncating.
	_, err = WireNumber("7.5").Int()
	assert.Error(t, err)
}
