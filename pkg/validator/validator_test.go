package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidISBN(t *testing.T) {
	valid := []string{"9787115428028", "978-7-115-42802-8", "020161622X", "0 201 61622 X"}
	invalid := []string{"", "12345", "97871154280281", "978711542802A"}

	for _, isbn := range valid {
		assert.True(t, IsValidISBN(isbn), isbn)
	}
	for _, isbn := range invalid {
		assert.False(t, IsValidISBN(isbn), isbn)
	}
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())
	// 重复调用不会报错
	require.NoError(t, Register())

	type request struct {
		ISBN  string   `binding:"required,isbn"`
		Title string   `binding:"notblank"`
		Sort  []string `binding:"omitempty,dive,sortexpr"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&request{
		ISBN:  "9787115428028",
		Title: "Go",
		Sort:  []string{"price,desc", "id"},
	}))
	assert.Error(t, binding.Validator.ValidateStruct(&request{ISBN: "abc", Title: "Go"}))
	assert.Error(t, binding.Validator.ValidateStruct(&request{ISBN: "9787115428028", Title: "   "}))
	assert.Error(t, binding.Validator.ValidateStruct(&request{ISBN: "9787115428028", Title: "Go", Sort: []string{"price;drop"}}))
}
