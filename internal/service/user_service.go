package service

import (
	"encoding/json"

	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
	"doable-go/internal/utils"
)

// UserService 用户服务
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create 创建用户,密码哈希后落库,插入后回读返回
func (s *UserService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     orDefault(req.Role, "user"),
		Password: hashedPassword,
		Avatar:   req.Avatar,
		Status:   orDefault(req.Status, "active"),
		Data:     jsonOrEmpty(req.Data),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	fresh, err := s.userRepo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(fresh)
	return &resp, nil
}

// List 用户列表
func (s *UserService) List() ([]dto.UserResponse, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// Update 部分更新用户
func (s *UserService) Update(id uint, patch map[string]interface{}) (*dto.UserResponse, error) {
	user, err := s.userRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// orDefault 空字符串时取默认值
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// jsonOrEmpty 创建时JSON附属字段缺失或显式null都落成空对象
func jsonOrEmpty(raw json.RawMessage) models.JSONValue {
	if len(raw) == 0 || string(raw) == "null" {
		return models.JSONValue("{}")
	}
	return models.JSONValue(raw)
}
