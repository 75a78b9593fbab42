package service

import (
	"fmt"
	"time"

	"doable-go/internal/config"
	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
	"doable-go/internal/utils"
)

// AuthService 认证服务
type AuthService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login 登录校验
// 用户不存在和密码错误返回完全相同的笼统消息,避免泄露是哪一项出错
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, utils.WrapError(utils.ErrUnauthorized, "邮箱或密码错误")
	}

	if err := utils.CheckPassword(req.Password, user.Password); err != nil {
		return nil, utils.WrapError(utils.ErrUnauthorized, "邮箱或密码错误")
	}

	// token只是时间戳派生的占位字符串,无签名无过期,系统其他位置不校验
	token := fmt.Sprintf("mock-token-%d", time.Now().UnixMilli())

	return &dto.LoginResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

// SeedAdmin 初始化默认账户,仅在用户表为空时写入,每次启动都可安全调用
func (s *AuthService) SeedAdmin() error {
	count, err := s.userRepo.Count()
	if err != nil {
		return fmt.Errorf("统计用户失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	username := s.cfg.Admin.Username
	user := &models.User{
		Username: &username,
		Email:    s.cfg.Admin.Email,
		Role:     "admin",
		Password: hashedPassword,
		Status:   "active",
	}
	if s.cfg.Admin.Avatar != "" {
		avatar := s.cfg.Admin.Avatar
		user.Avatar = &avatar
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("创建默认账户失败: %w", err)
	}

	return nil
}
