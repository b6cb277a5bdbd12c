//go:build wireinject
// +build wireinject

// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/online-bookstore/internal/application/book"
	appcart "github.com/xiebiao/online-bookstore/internal/application/cart"
	appcategory "github.com/xiebiao/online-bookstore/internal/application/category"
	apporder "github.com/xiebiao/online-bookstore/internal/application/order"
	appuser "github.com/xiebiao/online-bookstore/internal/application/user"
	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/user"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/config"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/online-bookstore/internal/interface/http/handler"
	"github.com/xiebiao/online-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/online-bookstore/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis与消息队列
var infrastructureSet = wire.NewSet(
	provideDB,
	redis.NewClient,
	provideOrderEventPublisher,
)

// repositorySet 仓储、缓存与会话
var repositorySet = wire.NewSet(
	gormdb.NewUserRepository,
	gormdb.NewBookRepository,
	gormdb.NewCategoryRepository,
	gormdb.NewCartRepository,
	gormdb.NewOrderRepository,
	gormdb.NewTxManager,
	provideBookCache,
	redis.NewSessionStore,
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
)

var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
)

var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshTokenUseCase,
	appuser.NewSeedAdminUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appcategory.NewCreateCategoryUseCase,
	appcategory.NewUpdateCategoryUseCase,
	appcategory.NewDeleteCategoryUseCase,
	appcategory.NewQueryCategoryUseCase,
	appcart.NewAddCartItemUseCase,
	appcart.NewGetCartUseCase,
	appcart.NewUpdateCartItemUseCase,
	appcart.NewRemoveCartItemUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewQueryOrderUseCase,
	apporder.NewUpdateOrderStatusUseCase,
)

var httpSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
	handler.NewAuthHandler,
	handler.NewBookHandler,
	handler.NewCategoryHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用,cleanup按创建的逆序释放资源
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		httpSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
