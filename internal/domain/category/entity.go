package category

import (
	"strings"
	"time"
)

// Category 图书分类实体
// 分类名称全局唯一,删除为软删除
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建分类(工厂方法)
func NewCategory(name, description string) (*Category, error) {
	now := time.Now()
	c := &Category{
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Name == "" {
		return nil, ErrBlankName
	}
	return c, nil
}

// Rename 修改名称和描述
func (c *Category) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
	return nil
}
