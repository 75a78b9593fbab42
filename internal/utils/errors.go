package utils

import (
	"errors"
	"fmt"
	"strings"
)

// 错误分类,处理器据此映射HTTP状态码
var (
	// ErrInvalidRequest 请求无效(缺少必填字段、标识符格式错误、没有可更新的字段)
	ErrInvalidRequest = errors.New("请求无效")
	// ErrUnauthorized 认证失败
	ErrUnauthorized = errors.New("未授权")
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("资源不存在")
	// ErrUnconfigured 对象存储未配置
	ErrUnconfigured = errors.New("存储未配置")
	// ErrUploadFailed 对象存储调用失败
	ErrUploadFailed = errors.New("上传失败")
)

// WrapError 在错误分类上附加消息
func WrapError(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// ErrorMessage 提取展示给调用方的错误消息(去掉分类前缀)
func ErrorMessage(err error) string {
	for _, kind := range []error{ErrInvalidRequest, ErrUnauthorized, ErrNotFound, ErrUnconfigured, ErrUploadFailed} {
		if errors.Is(err, kind) {
			msg := err.Error()
			if rest, ok := strings.CutPrefix(msg, kind.Error()+": "); ok {
				return rest
			}
			return msg
		}
	}
	return err.Error()
}
