package dto

import (
	"time"

	"doable-go/internal/models"
)

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Description *string `json:"description"`
	OwnerID     uint    `json:"owner_id"`
	Status      string  `json:"status"`
}

// ProjectResponse 项目响应,联表带出负责人用户名
type ProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	OwnerID     uint      `json:"owner_id"`
	Status      string    `json:"status"`
	OwnerName   *string   `json:"owner_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProjectResponse 从模型构造项目响应
// owner_id悬空时owner_name为null,不报错
func NewProjectResponse(project *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Slug:        project.Slug,
		Description: project.Description,
		OwnerID:     project.OwnerID,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if project.Owner.ID != 0 {
		resp.OwnerName = project.Owner.Username
	}
	return resp
}
