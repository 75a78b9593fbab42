package service

import (
	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
)

// TaskService 任务服务
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService 创建任务服务
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create 创建任务,插入后带联表回读返回
func (s *TaskService) Create(req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		UserID:      req.UserID,
		Data:        jsonOrEmpty(req.Data),
		Attachments: jsonOrEmpty(req.Attachments),
		Comments:    jsonOrEmpty(req.Comments),
		Tags:        jsonOrEmpty(req.Tags),
		Labels:      jsonOrEmpty(req.Labels),
		Assignees:   jsonOrEmpty(req.Assignees),
		Subtasks:    jsonOrEmpty(req.Subtasks),
		Type:        orDefault(req.Type, "task"),
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	fresh, err := s.taskRepo.GetByID(task.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTaskResponse(fresh)
	return &resp, nil
}

// List 任务列表
func (s *TaskService) List() ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, dto.NewTaskResponse(&tasks[i]))
	}
	return responses, nil
}

// GetBySlug 组合标识查询任务
func (s *TaskService) GetBySlug(slug string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTaskDetailResponse(task)
	return &resp, nil
}

// Update 部分更新任务
func (s *TaskService) Update(id uint, patch map[string]interface{}) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// Delete 删除任务
func (s *TaskService) Delete(id uint) error {
	return s.taskRepo.Delete(id)
}
