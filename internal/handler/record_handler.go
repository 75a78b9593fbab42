package handler

import (
	"doable-go/internal/dto"
	"doable-go/internal/service"
	"doable-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RecordHandler 通用记录处理器
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler 创建通用记录处理器
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// List 记录列表
// GET /api/data
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.recordService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, records)
}

// Create 创建记录
// POST /api/data
func (h *RecordHandler) Create(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.FormatBindingError(err))
		return
	}

	record, err := h.recordService.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}

// Update 部分更新记录
// PATCH /api/data/:id
func (h *RecordHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	patch, err := bindPatch(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	record, err := h.recordService.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}
