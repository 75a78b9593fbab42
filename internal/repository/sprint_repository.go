package repository

import (
	"errors"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"gorm.io/gorm"
)

// sprintPatchFields 迭代表可更新字段白名单
var sprintPatchFields = map[string]patchField{
	"name":        {column: "name", transform: asIs},
	"description": {column: "description", transform: asIs},
	"status":      {column: "status", transform: asInt},
	"user_id":     {column: "user_id", transform: asInt},
	"data":        {column: "data", transform: asJSON},
}

// SprintRepository 迭代数据访问层
type SprintRepository struct {
	db *gorm.DB
}

// NewSprintRepository 创建迭代Repository
func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

// Create 创建迭代
func (r *SprintRepository) Create(sprint *models.Sprint) error {
	return r.db.Create(sprint).Error
}

// GetByID 根据ID获取迭代,联表带出用户
func (r *SprintRepository) GetByID(id uint) (*models.Sprint, error) {
	var sprint models.Sprint
	err := r.db.Preload("User").First(&sprint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "迭代不存在")
	}
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

// List 获取迭代列表,按创建时间倒序
func (r *SprintRepository) List() ([]models.Sprint, error) {
	var sprints []models.Sprint
	err := r.db.Preload("User").Order("created_at DESC").Find(&sprints).Error
	return sprints, err
}

// Update 部分更新迭代,更新后回读
func (r *SprintRepository) Update(id uint, patch map[string]interface{}) (*models.Sprint, error) {
	updates, err := BuildUpdates(patch, sprintPatchFields)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Sprint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete 删除迭代,没有命中行时报NotFound
func (r *SprintRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Sprint{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.WrapError(utils.ErrNotFound, "迭代不存在")
	}
	return nil
}
