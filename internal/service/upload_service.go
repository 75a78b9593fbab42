package service

import (
	"context"
	"fmt"
	"strings"

	"doable-go/internal/dto"
	"doable-go/internal/utils"

	"github.com/google/uuid"
)

// ObjectStore 上传服务依赖的对象存储能力
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	PublicURL(key string) string
}

// UploadService 上传服务,把原始请求体转发到对象存储
type UploadService struct {
	// store为nil表示对象存储未配置
	store ObjectStore
}

// NewUploadService 创建上传服务
func NewUploadService(store ObjectStore) *UploadService {
	return &UploadService{store: store}
}

// Upload 上传一个对象并返回公开地址
// 对象键在uploads/前缀下按uuid生成,保留原始扩展名,没有扩展名时默认png
func (s *UploadService) Upload(ctx context.Context, body []byte, contentType, fileName string) (*dto.UploadResponse, error) {
	if len(body) == 0 {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "未提供文件")
	}

	if s.store == nil {
		return nil, utils.WrapError(utils.ErrUnconfigured,
			"对象存储未配置,请设置s3的endpoint、bucket、access_key_id和secret_access_key")
	}

	ext := "png"
	if idx := strings.LastIndex(fileName, "."); idx >= 0 && idx < len(fileName)-1 {
		ext = fileName[idx+1:]
	}
	key := fmt.Sprintf("uploads/%s.%s", uuid.New().String(), ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.store.PutObject(ctx, key, contentType, body); err != nil {
		return nil, utils.WrapError(utils.ErrUploadFailed, "上传文件失败: %v", err)
	}

	return &dto.UploadResponse{
		URL: s.store.PublicURL(key),
		Key: key,
	}, nil
}
