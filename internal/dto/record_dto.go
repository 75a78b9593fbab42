package dto

import (
	"encoding/json"
	"time"

	"doable-go/internal/models"
)

// CreateRecordRequest 创建通用记录请求
type CreateRecordRequest struct {
	Name   string          `json:"name" binding:"required"`
	Data   json.RawMessage `json:"data"`
	Status *int            `json:"status"`
	UserID uint            `json:"user_id"`
}

// RecordResponse 通用记录响应
type RecordResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Data      models.JSONValue `json:"data"`
	Status    int              `json:"status"`
	UserID    uint             `json:"user_id"`
	UserName  *string          `json:"user_name"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewRecordResponse 从模型构造通用记录响应
func NewRecordResponse(record *models.Record) RecordResponse {
	resp := RecordResponse{
		ID:        record.ID,
		Name:      record.Name,
		Data:      record.Data,
		Status:    record.Status,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if record.User.ID != 0 {
		resp.UserName = record.User.Username
	}
	return resp
}
