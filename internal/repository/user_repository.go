package repository

import (
	"errors"

	"doable-go/internal/models"
	"doable-go/internal/utils"

	"gorm.io/gorm"
)

// userPatchFields 用户表可更新字段白名单
var userPatchFields = map[string]patchField{
	"username": {column: "username", transform: asIs},
	"email":    {column: "email", transform: asIs},
	"role":     {column: "role", transform: asIs},
	"password": {column: "password", transform: asPassword},
	"avatar":   {column: "avatar", transform: asIs},
	"status":   {column: "status", transform: asIs},
	"data":     {column: "data", transform: asJSON},
}

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "用户不存在")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱获取用户,精确匹配(sqlite的=对TEXT大小写敏感)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.WrapError(utils.ErrNotFound, "用户不存在")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List 获取用户列表,按创建时间倒序
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Update 部分更新用户,更新后回读
func (r *UserRepository) Update(id uint, patch map[string]interface{}) (*models.User, error) {
	updates, err := BuildUpdates(patch, userPatchFields)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Count 统计用户数,种子逻辑据此判断是否写入默认账户
func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
