package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/online-bookstore/internal/domain/user"
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

// userRepository 用户仓储实现
// 1. 实现domain/user/repository.go定义的接口
// 2. 角色通过user_roles关联表保存，读取时预加载
// 3. 邮箱唯一性由数据库UNIQUE索引兜底，冲突转换为ErrEmailDuplicate
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	db := r.getDB(ctx)

	roles, err := r.findRoles(db, u.Roles)
	if err != nil {
		return err
	}

	model := &UserModel{
		Email:           u.Email,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ShippingAddress: u.ShippingAddress,
		Roles:           roles,
	}
	if err := db.Omit("Roles.*").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := r.getDB(ctx).Preload("Roles", orderByID).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := r.getDB(ctx).Preload("Roles", orderByID).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) UpdateRoles(ctx context.Context, u *user.User) error {
	db := r.getDB(ctx)

	roles, err := r.findRoles(db, u.Roles)
	if err != nil {
		return err
	}
	if err := db.Model(&UserModel{ID: u.ID}).Association("Roles").Replace(roles); err != nil {
		return apperrors.Wrap(err, "更新用户角色失败")
	}
	return nil
}

// findRoles 按名称查询角色记录（角色在迁移时写入）
func (r *userRepository) findRoles(db *gorm.DB, roles []user.Role) ([]RoleModel, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	var models []RoleModel
	if err := db.Where("name IN ?", names).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询角色失败")
	}
	if len(models) != len(names) {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "角色数据未初始化")
	}
	return models, nil
}

func toUserEntity(m *UserModel) *user.User {
	roles := make([]user.Role, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = user.Role(r.Name)
	}
	return &user.User{
		ID:              m.ID,
		Email:           m.Email,
		Password:        m.Password,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		ShippingAddress: m.ShippingAddress,
		Roles:           roles,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *userRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db)
}
