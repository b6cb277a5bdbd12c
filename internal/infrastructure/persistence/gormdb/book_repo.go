package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/online-bookstore/internal/domain/book"
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
	"github.com/xiebiao/online-bookstore/pkg/pagination"
)

// bookRepository 图书仓储实现
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 搜索条件使用clause表达式构建，不拼接SQL字符串
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.Categories = categoryRefs(b.CategoryIDs)

	// 只写入关联表，不回写分类本身
	if err := r.getDB(ctx).Omit("Categories.*").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Preload("Categories", orderByID).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Preload("Categories", orderByID).Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 整体更新图书字段，并用CategoryIDs替换分类关联
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := r.getDB(ctx)
	model := toBookModel(b)

	if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	if err := r.replaceCategories(db, model, b.CategoryIDs); err != nil {
		return apperrors.Wrap(err, "更新图书分类失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 软删除（设置deleted_at），已删除的图书再次删除返回ErrBookNotFound
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) replaceCategories(db *gorm.DB, model *BookModel, ids []uint) error {
	association := db.Model(model).Association("Categories")
	if len(ids) == 0 {
		return association.Clear()
	}

	var categories []CategoryModel
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return err
	}
	return association.Replace(categories)
}

func (r *bookRepository) List(ctx context.Context, page pagination.Pageable) ([]*book.Book, int64, error) {
	return r.Search(ctx, book.Criteria{}, page)
}

// Search 按条件分页搜索
// 生成的WHERE形如：
//
//	(title LIKE '%a%' OR title LIKE '%b%') AND author IN (...) AND isbn IN (...)
//	AND price >= min AND price <= max
func (r *bookRepository) Search(ctx context.Context, criteria book.Criteria, page pagination.Pageable) ([]*book.Book, int64, error) {
	query := r.getDB(ctx).Model(&BookModel{})
	if conds := searchConditions(criteria); len(conds) > 0 {
		query = query.Where(clause.And(conds...))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计图书数量失败")
	}

	var models []BookModel
	if err := query.Scopes(paginate(page)).Preload("Categories", orderByID).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toBookEntities(models), total, nil
}

// ListByCategory 分类下的图书（不加载分类关联）
func (r *bookRepository) ListByCategory(ctx context.Context, categoryID uint, page pagination.Pageable) ([]*book.Book, int64, error) {
	query := r.getDB(ctx).Model(&BookModel{}).
		Joins("JOIN book_categories ON book_categories.book_id = books.id").
		Where("book_categories.category_id = ?", categoryID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计图书数量失败")
	}

	var models []BookModel
	if err := query.Select("books.*").Scopes(paginate(page)).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类图书失败")
	}

	return toBookEntities(models), total, nil
}

func (r *bookRepository) ListIDsByCategory(ctx context.Context, categoryID uint) ([]uint, error) {
	var ids []uint
	err := r.getDB(ctx).Model(&BookModel{}).
		Joins("JOIN book_categories ON book_categories.book_id = books.id").
		Where("book_categories.category_id = ?", categoryID).
		Order("books.id").
		Pluck("books.id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类图书失败")
	}
	return ids, nil
}

// searchConditions 把搜索条件转换为clause表达式，条件为空时返回nil
func searchConditions(c book.Criteria) []clause.Expression {
	var exprs []clause.Expression

	if len(c.Titles) > 0 {
		likes := make([]clause.Expression, len(c.Titles))
		for i, title := range c.Titles {
			likes[i] = clause.Like{Column: clause.Column{Table: clause.CurrentTable, Name: "title"}, Value: "%" + title + "%"}
		}
		exprs = append(exprs, clause.Or(likes...))
	}
	if len(c.Authors) > 0 {
		exprs = append(exprs, clause.IN{Column: clause.Column{Table: clause.CurrentTable, Name: "author"}, Values: toValues(c.Authors)})
	}
	if len(c.ISBNs) > 0 {
		exprs = append(exprs, clause.IN{Column: clause.Column{Table: clause.CurrentTable, Name: "isbn"}, Values: toValues(c.ISBNs)})
	}
	if c.Price != nil {
		price := clause.Column{Table: clause.CurrentTable, Name: "price"}
		exprs = append(exprs,
			clause.Gte{Column: price, Value: c.Price.Min},
			clause.Lte{Column: price, Value: c.Price.Max},
		)
	}

	return exprs
}

func toValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func categoryRefs(ids []uint) []CategoryModel {
	refs := make([]CategoryModel, len(ids))
	for i, id := range ids {
		refs[i] = CategoryModel{ID: id}
	}
	return refs
}

// =========================================
// 模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	ids := make([]uint, 0, len(m.Categories))
	for _, c := range m.Categories {
		ids = append(ids, c.ID)
	}
	return &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		ISBN:        m.ISBN,
		Price:       m.Price,
		Description: m.Description,
		CoverImage:  m.CoverImage,
		CategoryIDs: ids,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db)
}
