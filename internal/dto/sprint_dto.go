package dto

import (
	"encoding/json"
	"time"

	"doable-go/internal/models"
)

// CreateSprintRequest 创建迭代请求
type CreateSprintRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Status      *int            `json:"status"`
	UserID      uint            `json:"user_id"`
	Data        json.RawMessage `json:"data"`
}

// SprintResponse 迭代响应
type SprintResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Status      int              `json:"status"`
	UserID      uint             `json:"user_id"`
	Data        models.JSONValue `json:"data"`
	UserName    *string          `json:"user_name"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewSprintResponse 从模型构造迭代响应
func NewSprintResponse(sprint *models.Sprint) SprintResponse {
	resp := SprintResponse{
		ID:          sprint.ID,
		Name:        sprint.Name,
		Description: sprint.Description,
		Status:      sprint.Status,
		UserID:      sprint.UserID,
		Data:        sprint.Data,
		CreatedAt:   sprint.CreatedAt,
		UpdatedAt:   sprint.UpdatedAt,
	}
	if sprint.User.ID != 0 {
		resp.UserName = sprint.User.Username
	}
	return resp
}
