package service

import (
	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
)

// ProjectService 项目服务
type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

// NewProjectService 创建项目服务
func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create 创建项目,插入后带联表回读返回
func (s *ProjectService) Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &models.Project{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		Status:      orDefault(req.Status, "active"),
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	fresh, err := s.projectRepo.GetByID(project.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewProjectResponse(fresh)
	return &resp, nil
}

// List 项目列表
func (s *ProjectService) List() ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, dto.NewProjectResponse(&projects[i]))
	}
	return responses, nil
}

// Update 部分更新项目
func (s *ProjectService) Update(id uint, patch map[string]interface{}) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}
