package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMeta_RoundTrip(t *testing.T) {
	raw := `{"products":[{"brand":"Nike","name":"Air Max","link":"http://shop/air-max"}],"theme":"dark"}`

	var meta PostMeta
	require.NoError(t, json.Unmarshal([]byte(raw), &meta))

	require.Len(t, meta.Products, 1)
	assert.Equal(t, "Nike", meta.Products[0].Brand)
	assert.Equal(t, "Air Max", meta.Products[0].Name)
	assert.Equal(t, "dark", meta.Extra["theme"])

	out, err := json.Marshal(meta)
	require.NoError(t, err)

	var again PostMeta
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, meta.Products, again.Products)
	assert.Equal(t, meta.Extra, again.Extra)
}

func TestPostMeta_TolerantProducts(t *testing.T) {
	// Non-array products stays opaque; non-string fields coerce to empty
	var meta PostMeta
	require.NoError(t, json.Unmarshal([]byte(`{"products":"oops"}`), &meta))
	assert.Nil(t, meta.Products)
	assert.Equal(t, "oops", meta.Extra["products"])

	require.NoError(t, json.Unmarshal([]byte(`{"products":[{"brand":42,"name":"X"}]}`), &meta))
	require.Len(t, meta.Products, 1)
	assert.Equal(t, "", meta.Products[0].Brand)
	assert.Equal(t, "X", meta.Products[0].Name)
}

func TestValidEventType(t *testing.T) {
	assert.True(t, ValidEventType("page_view"))
	assert.True(t, ValidEventType("product_click"))
	assert.False(t, ValidEventType("bogus"))
	assert.False(t, ValidEventType(""))
}

func TestMembershipRole(t *testing.T) {
	assert.True(t, RoleOwner.IsWriteRole())
	assert.True(t, RoleEditor.IsWriteRole())
	assert.False(t, RoleViewer.IsWriteRole())
	assert.False(t, RoleNone.IsWriteRole())

	assert.Greater(t, RoleOwner.Priority(), RoleEditor.Priority())
	assert.Greater(t, RoleEditor.Priority(), RoleViewer.Priority())
	assert.Equal(t, 0, RoleNone.Priority())
}
