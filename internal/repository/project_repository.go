package repository

import (
	"errors"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"gorm.io/gorm"
)

// projectPatchFields 项目表可更新字段白名单
var projectPatchFields = map[string]patchField{
	"name":        {column: "name", transform: asIs},
	"slug":        {column: "slug", transform: asIs},
	"description": {column: "description", transform: asIs},
	"owner_id":    {column: "owner_id", transform: asInt},
	"status":      {column: "status", transform: asIs},
}

// ProjectRepository 项目数据访问层
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目Repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create 创建项目
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID 根据ID获取项目,联表带出负责人
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Owner").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "项目不存在")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List 获取项目列表,按创建时间倒序
func (r *ProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Owner").Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Update 部分更新项目,更新后回读
func (r *ProjectRepository) Update(id uint, patch map[string]interface{}) (*models.Project, error) {
	updates, err := BuildUpdates(patch, projectPatchFields)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}
