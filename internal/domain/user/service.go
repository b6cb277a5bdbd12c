package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
)

// bcrypt加密强度（cost越高越安全，但越慢）
var hashCost = 12

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// RegisterParams 注册参数
type RegisterParams struct {
	Email           string
	Password        string
	RepeatPassword  string
	FirstName       string
	LastName        string
	ShippingAddress string
}

// Service 用户领域服务接口
type Service interface {
	// Register 用户注册
	// 业务规则：
	// - 邮箱格式合法且未被注册
	// - 密码8-20位，必须包含字母和数字，两次输入一致
	// - 姓名不能为空
	Register(ctx context.Context, params RegisterParams) (*User, error)

	// Authenticate 校验邮箱和密码
	// 邮箱不存在与密码错误返回同一个错误，防止枚举已注册邮箱
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// EnsureAdmin 确保管理员账号存在并拥有ADMIN角色
	// 返回的bool表示是否新建了账号
	EnsureAdmin(ctx context.Context, email, password string) (*User, bool, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	// 1. 参数校验
	if !isValidEmail(params.Email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePasswordStrength(params.Password); err != nil {
		return nil, err
	}
	if params.Password != params.RepeatPassword {
		return nil, ErrPasswordMismatch
	}
	if strings.TrimSpace(params.FirstName) == "" || strings.TrimSpace(params.LastName) == "" {
		return nil, ErrBlankName
	}

	// 2. 邮箱查重（唯一索引兜底并发注册）
	if _, err := s.repo.FindByEmail(ctx, normalizeEmail(params.Email)); err == nil {
		return nil, ErrEmailDuplicate
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// 3. 密码加密
	hashed, err := hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	// 4. 持久化
	u := NewUser(params.Email, hashed, params.FirstName, params.LastName, params.ShippingAddress)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return u, nil
}

func (s *service) EnsureAdmin(ctx context.Context, email, password string) (*User, bool, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		if u.HasRole(RoleAdmin) {
			return u, false, nil
		}
		u.GrantRole(RoleAdmin)
		return u, false, s.repo.UpdateRoles(ctx, u)
	case !errors.Is(err, ErrUserNotFound):
		return nil, false, err
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, false, err
	}
	u = NewUser(email, hashed, "Admin", "Admin", "")
	u.GrantRole(RoleAdmin)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// =========================================
// 辅助函数
// =========================================

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", apperrors.Wrap(err, "密码加密失败")
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// validatePasswordStrength 密码强度：8-20位，同时包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
