package service

import (
	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
)

// SprintService 迭代服务
type SprintService struct {
	sprintRepo *repository.SprintRepository
}

// NewSprintService 创建迭代服务
func NewSprintService(sprintRepo *repository.SprintRepository) *SprintService {
	return &SprintService{sprintRepo: sprintRepo}
}

// Create 创建迭代,插入后带联表回读返回
func (s *SprintService) Create(req *dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	sprint := &models.Sprint{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
		Data:        jsonOrEmpty(req.Data),
	}
	if req.Status != nil {
		sprint.Status = *req.Status
	}

	if err := s.sprintRepo.Create(sprint); err != nil {
		return nil, err
	}

	fresh, err := s.sprintRepo.GetByID(sprint.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewSprintResponse(fresh)
	return &resp, nil
}

// List 迭代列表
func (s *SprintService) List() ([]dto.SprintResponse, error) {
	sprints, err := s.sprintRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SprintResponse, 0, len(sprints))
	for i := range sprints {
		responses = append(responses, dto.NewSprintResponse(&sprints[i]))
	}
	return responses, nil
}

// Update 部分更新迭代
func (s *SprintService) Update(id uint, patch map[string]interface{}) (*dto.SprintResponse, error) {
	sprint, err := s.sprintRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	resp := dto.NewSprintResponse(sprint)
	return &resp, nil
}

// Delete 删除迭代
func (s *SprintService) Delete(id uint) error {
	return s.sprintRepo.Delete(id)
}
