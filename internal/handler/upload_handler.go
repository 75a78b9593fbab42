package handler

import (
	"doable-go/internal/service"
	"doable-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler 上传处理器,读取原始请求体转交对象存储
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload 上传文件
// POST /api/upload, 原始二进制请求体,元信息来自Content-Type和X-File-Name头
func (h *UploadHandler) Upload(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, utils.WrapError(utils.ErrInvalidRequest, "读取请求体失败"))
		return
	}

	contentType := c.GetHeader("Content-Type")
	fileName := c.GetHeader("X-File-Name")
	if fileName == "" {
		fileName = "upload"
	}

	resp, err := h.uploadService.Upload(c.Request.Context(), body, contentType, fileName)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
