package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应格式
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse 成功响应(直接返回数据本体)
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// RespondError 按错误分类映射HTTP状态码
func RespondError(c *gin.Context, err error) {
	msg := ErrorMessage(err)
	switch {
	case errors.Is(err, ErrInvalidRequest):
		BadRequest(c, msg)
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(c, msg)
	case errors.Is(err, ErrNotFound):
		NotFound(c, msg)
	default:
		InternalError(c, msg)
	}
}
