package user

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/cart"
	"github.com/xiebiao/online-bookstore/internal/domain/user"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
)

// SeedAdminUseCase 启动时确保管理员账号存在
type SeedAdminUseCase struct {
	userService user.Service
	cartRepo    cart.Repository
	txManager   *gormdb.TxManager
}

func NewSeedAdminUseCase(userService user.Service, cartRepo cart.Repository, txManager *gormdb.TxManager) *SeedAdminUseCase {
	return &SeedAdminUseCase{
		userService: userService,
		cartRepo:    cartRepo,
		txManager:   txManager,
	}
}

// Execute email或password为空时跳过
func (uc *SeedAdminUseCase) Execute(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		log.Ctx(ctx).Debug().Msg("未配置管理员账号,跳过初始化")
		return nil
	}

	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		admin, created, err := uc.userService.EnsureAdmin(txCtx, email, password)
		if err != nil {
			return err
		}
		if !created {
			log.Ctx(ctx).Info().Uint("user_id", admin.ID).Msg("管理员账号已存在")
			return nil
		}
		if err := uc.cartRepo.Create(txCtx, &cart.ShoppingCart{UserID: admin.ID}); err != nil {
			return err
		}
		log.Ctx(ctx).Info().Uint("user_id", admin.ID).Str("email", admin.Email).Msg("已创建管理员账号")
		return nil
	})
}
