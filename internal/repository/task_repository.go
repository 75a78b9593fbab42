package repository

import (
	"errors"
	"strconv"
	"strings"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"gorm.io/gorm"
)

// taskPatchFields 任务表可更新字段白名单
var taskPatchFields = map[string]patchField{
	"title":       {column: "title", transform: asIs},
	"description": {column: "description", transform: asIs},
	"status":      {column: "status", transform: asInt},
	"project_id":  {column: "project_id", transform: asInt},
	"user_id":     {column: "user_id", transform: asInt},
	"data":        {column: "data", transform: asJSON},
	"attachments": {column: "attachments", transform: asJSON},
	"comments":    {column: "comments", transform: asJSON},
	"tags":        {column: "tags", transform: asJSON},
	"labels":      {column: "labels", transform: asJSON},
	"assignees":   {column: "assignees", transform: asJSON},
	"priority":    {column: "priority", transform: asInt},
	"type":        {column: "type", transform: asIs},
	"subtasks":    {column: "subtasks", transform: asJSON},
	"due_date":    {column: "due_date", transform: asTime},
}

// TaskRepository 任务数据访问层
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository 创建任务Repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create 创建任务
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID 根据ID获取任务,联表带出项目和用户
func (r *TaskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Project").Preload("User").First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "任务不存在")
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetBySlug 组合标识查询: {项目slug}-{任务id}
// slug本身可以含连字符,所以按最后一个连字符切分
func (r *TaskRepository) GetBySlug(slug string) (*models.Task, error) {
	idx := strings.LastIndex(slug, "-")
	if idx < 0 {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "任务标识格式无效")
	}

	projectSlug := slug[:idx]
	taskID, err := strconv.ParseUint(slug[idx+1:], 10, 64)
	if err != nil {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "任务标识格式无效")
	}

	var task models.Task
	err = r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.id = ? AND projects.slug = ?", taskID, projectSlug).
		Preload("Project").Preload("User").
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "任务不存在")
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List 获取任务列表,按创建时间倒序
func (r *TaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("Project").Preload("User").Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// Update 部分更新任务,更新后带联表回读
func (r *TaskRepository) Update(id uint, patch map[string]interface{}) (*models.Task, error) {
	updates, err := BuildUpdates(patch, taskPatchFields)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete 删除任务,没有命中行时报NotFound
func (r *TaskRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.WrapError(utils.ErrNotFound, "任务不存在")
	}
	return nil
}
