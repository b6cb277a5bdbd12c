package user

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/online-bookstore/internal/domain/cart"
	"github.com/xiebiao/online-bookstore/internal/domain/user"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
)

// RegisterUseCase 用户注册
// 用户、USER角色与购物车在同一事务中创建
type RegisterUseCase struct {
	userService user.Service
	cartRepo    cart.Repository
	txManager   *gormdb.TxManager
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, cartRepo cart.Repository, txManager *gormdb.TxManager) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		cartRepo:    cartRepo,
		txManager:   txManager,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var registered *user.User
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userService.Register(txCtx, user.RegisterParams{
			Email:           req.Email,
			Password:        req.Password,
			RepeatPassword:  req.RepeatPassword,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			ShippingAddress: req.ShippingAddress,
		})
		if err != nil {
			return err
		}

		if err := uc.cartRepo.Create(txCtx, &cart.ShoppingCart{UserID: u.ID}); err != nil {
			return err
		}
		registered = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Uint("user_id", registered.ID).Str("email", registered.Email).Msg("用户注册成功")

	resp := toUserResponse(registered)
	return &resp, nil
}
