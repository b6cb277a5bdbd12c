package book

import (
	"context"
	"errors"

	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务规则(如ISBN唯一性)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:ISBN不能重复
	CreateBook(ctx context.Context, book *Book) error

	// UpdateBook 整体替换图书信息
	// 业务规则:修改ISBN时不能与其他图书冲突
	UpdateBook(ctx context.Context, id uint, changes *Book) (*Book, error)

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// DeleteBook 软删除图书
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, page pagination.Pageable) ([]*Book, int64, error)

	// SearchBooks 按条件搜索图书
	SearchBooks(ctx context.Context, params SearchParams, page pagination.Pageable) ([]*Book, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBook(ctx context.Context, b *Book) error {
	if err := b.Validate(); err != nil {
		return err
	}

	// 先查一次,给出明确的业务错误(并发场景下由唯一索引兜底)
	if err := s.ensureISBNAvailable(ctx, b.ISBN, 0); err != nil {
		return err
	}

	return s.repo.Create(ctx, b)
}

func (s *service) UpdateBook(ctx context.Context, id uint, changes *Book) (*Book, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := existing.ReplaceWith(changes); err != nil {
		return nil, err
	}

	if err := s.ensureISBNAvailable(ctx, existing.ISBN, existing.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListBooks(ctx context.Context, page pagination.Pageable) ([]*Book, int64, error) {
	return s.repo.List(ctx, page)
}

func (s *service) SearchBooks(ctx context.Context, params SearchParams, page pagination.Pageable) ([]*Book, int64, error) {
	criteria, err := params.Build()
	if err != nil {
		return nil, 0, err
	}
	return s.repo.Search(ctx, criteria, page)
}

// ensureISBNAvailable ISBN未被占用,或被selfID本身占用
func (s *service) ensureISBNAvailable(ctx context.Context, isbn string, selfID uint) error {
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrISBNDuplicate
	}
	return nil
}
