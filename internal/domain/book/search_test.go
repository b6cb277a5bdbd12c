package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	tests := []struct {
		name   string
		params SearchParams
	}{
		{"全部为nil", SearchParams{}},
		{"全部为空数组", SearchParams{Title: []string{}, Author: []string{}, ISBN: []string{}, Price: []string{}}},
		{"只有空白值", SearchParams{Title: []string{" "}, Price: []string{""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.params.Build()
			require.NoError(t, err)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestBuild_PriceRange(t *testing.T) {
	c, err := SearchParams{Price: []string{"24", "22", "23.5"}}.Build()
	require.NoError(t, err)
	require.NotNil(t, c.Price)

	assert.True(t, c.Price.Min.Equal(decimal.NewFromInt(22)))
	assert.True(t, c.Price.Max.Equal(decimal.NewFromInt(24)))
}

func TestBuild_SinglePrice(t *testing.T) {
	c, err := SearchParams{Price: []string{"19.99"}}.Build()
	require.NoError(t, err)
	require.NotNil(t, c.Price)

	assert.True(t, c.Price.Min.Equal(c.Price.Max))
}

func TestBuild_MalformedPrice(t *testing.T) {
	_, err := SearchParams{Price: []string{"22", "cheap"}}.Build()
	assert.ErrorIs(t, err, ErrInvalidPriceFilter)
}

func TestBuild_KeepsFieldValues(t *testing.T) {
	c, err := SearchParams{
		Title:  []string{"Book A", "Book B"},
		Author: []string{"Author A"},
		ISBN:   []string{"9787115428028"},
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"Book A", "Book B"}, c.Titles)
	assert.Equal(t, []string{"Author A"}, c.Authors)
	assert.Equal(t, []string{"9787115428028"}, c.ISBNs)
	assert.Nil(t, c.Price)
	assert.False(t, c.IsEmpty())
}
