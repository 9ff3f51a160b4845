package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList(t *testing.T) {
	raw, err := FormatStringList([]string{" Konut Satışı ", "", "Kira Takibi"})
	require.NoError(t, err)
	assert.Equal(t, `["Konut Satışı","Kira Takibi"]`, raw)

	items, err := ParseStringList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Konut Satışı", "Kira Takibi"}, items)

	empty, err := FormatStringList(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	items, err = ParseStringList("")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = ParseStringList("not json")
	assert.Error(t, err)
}
