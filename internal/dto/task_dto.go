package dto

import (
	"encoding/json"
	"time"

	"doable-go/internal/models"
)

// CreateTaskRequest 创建任务请求
// 省略的可选字段按文档默认值落库: status/priority为0,type为task,JSON附属列为{}
type CreateTaskRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	Status      *int            `json:"status"`
	ProjectID   uint            `json:"project_id"`
	UserID      uint            `json:"user_id"`
	Data        json.RawMessage `json:"data"`
	Attachments json.RawMessage `json:"attachments"`
	Comments    json.RawMessage `json:"comments"`
	Tags        json.RawMessage `json:"tags"`
	Labels      json.RawMessage `json:"labels"`
	Assignees   json.RawMessage `json:"assignees"`
	Subtasks    json.RawMessage `json:"subtasks"`
	Priority    *int            `json:"priority"`
	Type        string          `json:"type"`
	DueDate     *time.Time      `json:"due_date"`
}

// TaskResponse 任务响应,联表带出项目名和用户名
type TaskResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Status      int              `json:"status"`
	ProjectID   uint             `json:"project_id"`
	UserID      uint             `json:"user_id"`
	Data        models.JSONValue `json:"data"`
	Attachments models.JSONValue `json:"attachments"`
	Comments    models.JSONValue `json:"comments"`
	Tags        models.JSONValue `json:"tags"`
	Labels      models.JSONValue `json:"labels"`
	Assignees   models.JSONValue `json:"assignees"`
	Subtasks    models.JSONValue `json:"subtasks"`
	Priority    int              `json:"priority"`
	Type        string           `json:"type"`
	DueDate     *time.Time       `json:"due_date"`
	ProjectName *string          `json:"project_name"`
	ProjectSlug *string          `json:"project_slug,omitempty"`
	UserName    *string          `json:"user_name"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewTaskResponse 从模型构造任务响应
// project_id/user_id悬空时联表字段为null,不报错
func NewTaskResponse(task *models.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		ProjectID:   task.ProjectID,
		UserID:      task.UserID,
		Data:        task.Data,
		Attachments: task.Attachments,
		Comments:    task.Comments,
		Tags:        task.Tags,
		Labels:      task.Labels,
		Assignees:   task.Assignees,
		Subtasks:    task.Subtasks,
		Priority:    task.Priority,
		Type:        task.Type,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Project.ID != 0 {
		resp.ProjectName = &task.Project.Name
	}
	if task.User.ID != 0 {
		resp.UserName = task.User.Username
	}
	return resp
}

// NewTaskDetailResponse 组合标识查询的任务响应,额外带出项目slug
func NewTaskDetailResponse(task *models.Task) TaskResponse {
	resp := NewTaskResponse(task)
	if task.Project.ID != 0 {
		resp.ProjectSlug = &task.Project.Slug
	}
	return resp
}
