package repository

import (
	"errors"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"gorm.io/gorm"
)

// recordPatchFields 通用记录表可更新字段白名单
var recordPatchFields = map[string]patchField{
	"name":    {column: "name", transform: asIs},
	"data":    {column: "data", transform: asJSON},
	"status":  {column: "status", transform: asInt},
	"user_id": {column: "user_id", transform: asInt},
}

// RecordRepository 通用记录数据访问层
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建通用记录Repository
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create 创建记录
func (r *RecordRepository) Create(record *models.Record) error {
	return r.db.Create(record).Error
}

// GetByID 根据ID获取记录,联表带出用户
func (r *RecordRepository) GetByID(id uint) (*models.Record, error) {
	var record models.Record
	err := r.db.Preload("User").First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "记录不存在")
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List 获取记录列表,按创建时间倒序
func (r *RecordRepository) List() ([]models.Record, error) {
	var records []models.Record
	err := r.db.Preload("User").Order("created_at DESC").Find(&records).Error
	return records, err
}

// Update 部分更新记录,更新后回读
func (r *RecordRepository) Update(id uint, patch map[string]interface{}) (*models.Record, error) {
	updates, err := BuildUpdates(patch, recordPatchFields)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Record{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}
