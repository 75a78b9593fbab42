package dto

import (
	"encoding/json"
	"time"

	"doable-go/internal/models"
)

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username *string         `json:"username"`
	Email    string          `json:"email" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     string          `json:"role"`
	Avatar   *string         `json:"avatar"`
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
}

// UserResponse 用户响应,永远不包含密码列
type UserResponse struct {
	ID        uint             `json:"id"`
	Username  *string          `json:"username"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	Avatar    *string          `json:"avatar"`
	Status    string           `json:"status"`
	Data      models.JSONValue `json:"data"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewUserResponse 从模型构造用户响应
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Status:    user.Status,
		Data:      user.Data,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
