package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
// token是时间戳派生的占位凭证,系统其他位置不校验它
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
