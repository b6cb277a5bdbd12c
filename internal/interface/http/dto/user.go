package dto

// RegisterRequest 注册请求
// 密码强度(字母+数字)与两次输入一致由领域层校验
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=20"`
	RepeatPassword  string `json:"repeat_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required,notblank,max=100"`
	LastName        string `json:"last_name" binding:"required,notblank,max=100"`
	ShippingAddress string `json:"shipping_address" binding:"max=512"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 刷新Token请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
