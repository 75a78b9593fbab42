package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doable-go/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore 记录一次PutObject调用的内容
type fakeObjectStore struct {
	key         string
	contentType string
	body        []byte
	putErr      error
}

func (f *fakeObjectStore) PutObject(_ context.Context, key, contentType string, body []byte) error {
	f.key = key
	f.contentType = contentType
	f.body = body
	return f.putErr
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestUploadEmptyBody(t *testing.T) {
	uploadService := NewUploadService(nil)

	_, err := uploadService.Upload(context.Background(), nil, "image/png", "a.png")
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)
}

func TestUploadStorageNotConfigured(t *testing.T) {
	uploadService := NewUploadService(nil)

	_, err := uploadService.Upload(context.Background(), []byte("data"), "image/png", "a.png")
	assert.ErrorIs(t, err, utils.ErrUnconfigured)
}

func TestUploadKeyKeepsExtension(t *testing.T) {
	store := &fakeObjectStore{}
	uploadService := NewUploadService(store)

	resp, err := uploadService.Upload(context.Background(), []byte("binary"), "image/jpeg", "photo.final.jpg")
	require.NoError(t, err)

	// 对象键为uploads/<uuid>.<原始扩展名>
	require.True(t, strings.HasPrefix(store.key, "uploads/"))
	require.True(t, strings.HasSuffix(store.key, ".jpg"))
	stem := strings.TrimSuffix(strings.TrimPrefix(store.key, "uploads/"), ".jpg")
	_, parseErr := uuid.Parse(stem)
	assert.NoError(t, parseErr)

	assert.Equal(t, "image/jpeg", store.contentType)
	assert.Equal(t, []byte("binary"), store.body)
	assert.Equal(t, store.key, resp.Key)
	assert.Equal(t, "https://cdn.example.com/"+store.key, resp.URL)
}

func TestUploadDefaultExtensionAndContentType(t *testing.T) {
	store := &fakeObjectStore{}
	uploadService := NewUploadService(store)

	// 文件名无扩展名时默认png,无Content-Type时落为八进制流
	_, err := uploadService.Upload(context.Background(), []byte("binary"), "", "upload")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(store.key, ".png"))
	assert.Equal(t, "application/octet-stream", store.contentType)
}

func TestUploadPutObjectFailure(t *testing.T) {
	store := &fakeObjectStore{putErr: errors.New("连接被拒绝")}
	uploadService := NewUploadService(store)

	_, err := uploadService.Upload(context.Background(), []byte("binary"), "image/png", "a.png")
	assert.ErrorIs(t, err, utils.ErrUploadFailed)
}
