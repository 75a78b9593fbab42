package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatBindingError 格式化请求体绑定/校验错误
// gin的ShouldBindJSON底层使用validator/v10,这里把校验错误转换成可读消息
func FormatBindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return WrapError(ErrInvalidRequest, "请求体格式错误")
	}

	var messages []string
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())

		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s是必填字段", field)
		case "min":
			message = fmt.Sprintf("%s长度不能小于%s", field, e.Param())
		case "max":
			message = fmt.Sprintf("%s长度不能大于%s", field, e.Param())
		case "email":
			message = fmt.Sprintf("%s必须是有效的邮箱地址", field)
		default:
			message = fmt.Sprintf("%s校验失败: %s", field, e.Tag())
		}

		messages = append(messages, message)
	}

	return WrapError(ErrInvalidRequest, strings.Join(messages, "; "))
}
