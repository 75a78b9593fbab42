package service

import (
	"path/filepath"
	"strings"
	"testing"

	"doable-go/internal/config"
	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
	"doable-go/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			Username: "admin",
			Email:    "admin@example.com",
			Password: "admin-secret",
		},
	}
}

func TestSeedAdminOnEmptyTable(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, testConfig())

	require.NoError(t, authService.SeedAdmin())

	user, err := userRepo.GetByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	require.NotNil(t, user.Username)
	assert.Equal(t, "admin", *user.Username)
	// 落库的是哈希而不是明文
	assert.NotEqual(t, "admin-secret", user.Password)
	assert.NoError(t, utils.CheckPassword("admin-secret", user.Password))
}

func TestSeedAdminSkipsNonEmptyTable(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	require.NoError(t, userRepo.Create(&models.User{Email: "someone@example.com", Password: "x"}))

	authService := NewAuthService(userRepo, testConfig())
	require.NoError(t, authService.SeedAdmin())
	require.NoError(t, authService.SeedAdmin())

	count, err := userRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, testConfig())
	require.NoError(t, authService.SeedAdmin())

	resp, err := authService.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.True(t, strings.HasPrefix(resp.Token, "mock-token-"))
}

func TestLoginFailuresShareMessage(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, testConfig())
	require.NoError(t, authService.SeedAdmin())

	_, errWrongPassword := authService.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "guess",
	})
	_, errUnknownEmail := authService.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "admin-secret",
	})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.ErrorIs(t, errWrongPassword, utils.ErrUnauthorized)
	assert.ErrorIs(t, errUnknownEmail, utils.ErrUnauthorized)
	// 密码错和用户不存在对外不可区分
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestPasswordUpdateThenRelogin(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, testConfig())
	userService := NewUserService(userRepo)
	require.NoError(t, authService.SeedAdmin())

	admin, err := userRepo.GetByEmail("admin@example.com")
	require.NoError(t, err)

	_, err = userService.Update(admin.ID, map[string]interface{}{"password": "rotated"})
	require.NoError(t, err)

	_, err = authService.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin-secret",
	})
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	resp, err := authService.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "rotated",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", resp.User.Email)
}
