package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
	"github.com/xiebiao/online-bookstore/pkg/jwt"
	"github.com/xiebiao/online-bookstore/pkg/response"
)

const (
	ctxKeyClaims = "claims"
	ctxKeyToken  = "access_token"
)

// TokenBlacklist 已注销Token的查询,由redis.SessionStore实现
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证与角色鉴权
// 1. 从Header提取Bearer Token并验证签名与有效期
// 2. 检查Token黑名单(已登出)
// 3. 把Claims注入gin.Context,后续由RequireRole判断角色
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, blacklist: blacklist}
}

// RequireAuth 要求登录
//
//	authorized := r.Group("/cart")
//	authorized.Use(auth.RequireAuth(), auth.RequireRole("USER"))
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 格式:Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.ErrUnauthorized)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, apperrors.ErrInvalidToken)
			return
		}
		tokenString := strings.TrimSpace(parts[1])

		// 先验签,无效Token不访问Redis
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			abort(c, err)
			return
		}

		revoked, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			abort(c, err)
			return
		}
		if revoked {
			abort(c, apperrors.ErrTokenRevoked)
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyToken, tokenString)

		ctx := c.Request.Context()
		l := log.Ctx(ctx).With().Uint("user_id", claims.UserID).Logger()
		c.Request = c.Request.WithContext(l.WithContext(ctx))

		c.Next()
	}
}

// RequireRole 要求拥有任一指定角色,否则返回403
// 必须放在RequireAuth之后
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abort(c, apperrors.ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}
		abort(c, apperrors.ErrForbidden)
	}
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// GetClaims 当前请求的Claims,未经过RequireAuth时返回nil
func GetClaims(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID 当前登录用户ID,未登录时为0
func GetUserID(c *gin.Context) uint {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// GetAccessToken 当前请求携带的Access Token(登出时加入黑名单)
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxKeyToken)
}
