package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"doable-go/internal/config"
	"doable-go/internal/models"
	"doable-go/internal/repository"
	"doable-go/internal/router"
	"doable-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer 组装一个带临时数据库和默认账户的完整路由
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		Admin: config.AdminConfig{
			Username: "admin",
			Email:    "admin@example.com",
			Password: "admin-secret",
		},
	}

	authService := service.NewAuthService(repository.NewUserRepository(db), cfg)
	require.NoError(t, authService.SeedAdmin())

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	// 对象存储留空,走未配置分支
	return router.SetupRouter(cfg, log, db, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "admin-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User  map[string]interface{} `json:"user"`
		Token string                 `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@example.com", resp.User["email"])
	assert.True(t, strings.HasPrefix(resp.Token, "mock-token-"))
	// 响应里不允许出现密码列
	assert.NotContains(t, resp.User, "password")
}

func TestLoginFailureBodiesIdentical(t *testing.T) {
	r := newTestServer(t)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "guess",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "admin-secret",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestCreateUserValidation(t *testing.T) {
	r := newTestServer(t)

	// 缺少必填的email和password
	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"username": "半截"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"email":    "dev@example.com",
		"password": "secret",
		"username": "dev",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "active", user["status"])
	assert.NotContains(t, user, "password")
}

func TestPatchEmptyBodyRejected(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/users/1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchUnknownFieldRejected(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/users/1", gin.H{"is_admin": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchMissingResource(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/users/9999", gin.H{"status": "inactive"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchBadID(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/users/abc", gin.H{"status": "inactive"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"name":     "平台",
		"slug":     "my-app",
		"owner_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/tasks", gin.H{
		"title":      "联调",
		"project_id": 1,
		"user_id":    1,
		"tags":       []string{"backend"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var task map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	taskID := int(task["id"].(float64))
	assert.Equal(t, "task", task["type"])

	// 组合标识查询: 项目slug自身含连字符,按最后一个连字符拆分
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tasks/get/my-app-%d", taskID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "my-app", detail["project_slug"])

	// 不含连字符的标识
	w = doJSON(t, r, http.MethodGet, "/api/tasks/get/nohyphen", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 删除成功返回success标记,重复删除404
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadWithoutStorage(t *testing.T) {
	r := newTestServer(t)

	// 空请求体
	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 有请求体但对象存储未配置
	req = httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("binary")))
	req.Header.Set("Content-Type", "image/png")
	req.Header.Set("X-File-Name", "shot.png")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListEndpointsReturnArrays(t *testing.T) {
	r := newTestServer(t)

	for _, path := range []string{"/api/users", "/api/projects", "/api/tasks", "/api/sprints", "/api/data"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "["), path)
	}
}
