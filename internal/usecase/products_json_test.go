package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductsPayload_CleanJSON(t *testing.T) {
	entries, err := ParseProductsPayload(`[{"brand":"Nike","name":"Air Max","link":"http://p"}]`)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Nike", entries[0].Brand)
	assert.Equal(t, "http://p", entries[0].Link)
}

func TestParseProductsPayload_RepairsAuthoringMistakes(t *testing.T) {
	// Smart quotes, single quotes and a trailing comma in one payload
	raw := "[{“brand”: 'Nike', 'name': 'Air Max',}, {'brand': 'Adidas', 'name': 'Samba'},]"

	entries, err := ParseProductsPayload(raw)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Nike", entries[0].Brand)
	assert.Equal(t, "Samba", entries[1].Name)
}

func TestParseProductsPayload_InvalidAfterRepair(t *testing.T) {
	_, err := ParseProductsPayload(`not json at all`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestParseProductsPayload_DropsEmptyAndCoerces(t *testing.T) {
	entries, err := ParseProductsPayload(`[{"brand":"","name":"","link":""},{"brand":42,"name":"X"}]`)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Brand)
	assert.Equal(t, "X", entries[0].Name)
}

func TestParseProductsPayload_Empty(t *testing.T) {
	entries, err := ParseProductsPayload("")
	require.NoError(t, err)
	assert.Nil(t, entries)
}
