package user

import (
	"slices"
	"strings"
	"time"
)

// Role 用户角色
type Role string

const (
	RoleUser  Role = "USER"  // 普通用户:购物车、下单
	RoleAdmin Role = "ADMIN" // 管理员:维护图书、分类,修改订单状态
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 密码已加密存储（bcrypt），实体不暴露明文
// 2. 领域实体不依赖GORM tag（infrastructure层负责映射）
type User struct {
	ID              uint
	Email           string
	Password        string // bcrypt哈希值
	FirstName       string
	LastName        string
	ShippingAddress string
	Roles           []Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码，新用户默认拥有USER角色
func NewUser(email, hashedPassword, firstName, lastName, shippingAddress string) *User {
	now := time.Now()
	return &User{
		Email:           strings.ToLower(strings.TrimSpace(email)),
		Password:        hashedPassword,
		FirstName:       strings.TrimSpace(firstName),
		LastName:        strings.TrimSpace(lastName),
		ShippingAddress: strings.TrimSpace(shippingAddress),
		Roles:           []Role{RoleUser},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasRole 是否拥有指定角色
func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// GrantRole 授予角色（已拥有时忽略）
func (u *User) GrantRole(role Role) {
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
		u.UpdatedAt = time.Now()
	}
}

// RoleNames 角色名列表（写入JWT）
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r)
	}
	return names
}

// FullName 姓名
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
