package category

import (
	"github.com/xiebiao/online-bookstore/internal/domain/category"
)

// CategoryResponse 分类DTO
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryInput 创建/更新分类的输入
type CategoryInput struct {
	Name        string
	Description string
}

func toCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
