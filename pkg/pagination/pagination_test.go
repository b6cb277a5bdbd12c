package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

func TestParse_Defaults(t *testing.T) {
	p, err := Parse(0, 0, nil, BookSpec)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, []Order{{Column: "price"}}, p.Order)
	assert.Equal(t, 0, p.Offset())
}

func TestParse_SortDirections(t *testing.T) {
	p, err := Parse(2, 10, []string{"title,desc", "id"}, BookSpec)
	require.NoError(t, err)

	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, []Order{
		{Column: "title", Desc: true},
		{Column: "id"},
	}, p.Order)
}

func TestParse_SizeClamp(t *testing.T) {
	p, err := Parse(-1, 1000, nil, CategorySpec)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, MaxSize, p.Size)
	assert.Equal(t, []Order{{Column: "name"}}, p.Order)
}

func TestParse_InvalidSort(t *testing.T) {
	cases := []string{"password,ASC", "price,UP", "price,ASC,extra"}

	for _, sort := range cases {
		t.Run(sort, func(t *testing.T) {
			_, err := Parse(0, 5, []string{sort}, BookSpec)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidSort))
		})
	}
}

func TestParse_OrderAlias(t *testing.T) {
	p, err := Parse(0, 5, []string{"orderDate,DESC"}, OrderSpec)
	require.NoError(t, err)
	assert.Equal(t, []Order{{Column: "order_date", Desc: true}}, p.Order)
}

func TestNewResult(t *testing.T) {
	p := Pageable{Page: 2, Size: 5}

	r := NewResult[string](nil, 11, p)
	assert.NotNil(t, r.List, "空列表序列化为[]而不是null")
	assert.Equal(t, int64(11), r.Total)
	assert.Equal(t, 2, r.Page)
	assert.Equal(t, 5, r.Size)
}
