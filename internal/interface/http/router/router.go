// Package router 组装Gin引擎:全局中间件、路由与权限
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/online-bookstore/internal/domain/user"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/config"
	"github.com/xiebiao/online-bookstore/internal/interface/http/handler"
	"github.com/xiebiao/online-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/online-bookstore/pkg/response"
	"github.com/xiebiao/online-bookstore/pkg/validator"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	Auth     *handler.AuthHandler
	Book     *handler.BookHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
}

// New 创建Gin引擎
// 业务路由同时挂载在根路径与/api/v1下,两处共享同一个限流器
func New(cfg *config.Config, h *Handlers, auth *middleware.AuthMiddleware) (*gin.Engine, error) {
	if err := validator.Register(); err != nil {
		return nil, err
	}

	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// 访问 /swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var authLimit []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Rate, cfg.RateLimit.Burst)
		authLimit = append(authLimit, limiter.Middleware())
	}

	mount(&r.RouterGroup, h, auth, authLimit)
	mount(r.Group("/api/v1"), h, auth, authLimit)

	return r, nil
}

func mount(g *gin.RouterGroup, h *Handlers, auth *middleware.AuthMiddleware, authLimit []gin.HandlerFunc) {
	requireAuth := auth.RequireAuth()
	anyRole := auth.RequireRole(string(user.RoleUser), string(user.RoleAdmin))
	customer := auth.RequireRole(string(user.RoleUser))
	admin := auth.RequireRole(string(user.RoleAdmin))

	// 认证模块(公开接口,按IP限流)
	authGroup := g.Group("/auth", authLimit...)
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", requireAuth, h.Auth.Logout)
	}

	// 图书:登录即可查询,写操作需要ADMIN
	books := g.Group("/books", requireAuth)
	{
		books.GET("", anyRole, h.Book.ListBooks)
		books.GET("/search", anyRole, h.Book.SearchBooks)
		books.GET("/:id", anyRole, h.Book.GetBook)
		books.POST("", admin, h.Book.CreateBook)
		books.PUT("/:id", admin, h.Book.UpdateBook)
		books.DELETE("/:id", admin, h.Book.DeleteBook)
	}

	categories := g.Group("/categories", requireAuth)
	{
		categories.GET("", anyRole, h.Category.ListCategories)
		categories.GET("/:id", anyRole, h.Category.GetCategory)
		categories.GET("/:id/books", anyRole, h.Category.ListBooks)
		categories.POST("", admin, h.Category.CreateCategory)
		categories.PUT("/:id", admin, h.Category.UpdateCategory)
		categories.DELETE("/:id", admin, h.Category.DeleteCategory)
	}

	cart := g.Group("/cart", requireAuth, customer)
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("", h.Cart.AddItem)
		cart.PUT("/cart-items/:id", h.Cart.UpdateItem)
		cart.DELETE("/cart-items/:id", h.Cart.RemoveItem)
	}

	orders := g.Group("/orders", requireAuth)
	{
		orders.POST("", customer, h.Order.CreateOrder)
		orders.GET("", customer, h.Order.ListOrders)
		orders.GET("/:id/items", customer, h.Order.ListItems)
		orders.GET("/:id/items/:itemId", customer, h.Order.GetItem)
		orders.PATCH("/:id", admin, h.Order.UpdateStatus)
	}
}
