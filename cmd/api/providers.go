package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	appuser "github.com/xiebiao/online-bookstore/internal/application/user"
	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/order"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/config"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/messaging"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/online-bookstore/pkg/circuitbreaker"
	"github.com/xiebiao/online-bookstore/pkg/jwt"
	"github.com/xiebiao/online-bookstore/pkg/mq"
)

// App 组装完成的应用
type App struct {
	Engine    *gin.Engine
	SeedAdmin *appuser.SeedAdminUseCase
}

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := gormdb.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error().Err(err).Msg("关闭数据库连接失败")
			}
		}
	}
	return db, cleanup, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideBookCache Redis图书缓存，外层加熔断
func provideBookCache(client *goredis.Client, cfg *config.Config) book.Cache {
	breaker := circuitbreaker.NewCircuitBreaker("book-cache", circuitbreaker.Config{
		MaxFailures: cfg.Cache.BreakerFailures,
		Timeout:     cfg.Cache.BreakerTimeout,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("熔断器状态变化")
		},
	})
	return redis.NewGuardedBookCache(redis.NewBookCache(client, cfg.Cache.BookDetailTTL), breaker)
}

// provideOrderEventPublisher mq.enabled=false时事件直接丢弃
func provideOrderEventPublisher(cfg *config.Config) (order.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		log.Info().Msg("消息队列未启用,订单事件不会发布")
		return order.NopPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("关闭消息发布者失败")
		}
	}
	return messaging.NewOrderEventPublisher(publisher), cleanup, nil
}
