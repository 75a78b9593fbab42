package handler

import (
	"doable-go/internal/dto"
	"doable-go/internal/service"
	"doable-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// SprintHandler 迭代处理器
type SprintHandler struct {
	sprintService *service.SprintService
}

// NewSprintHandler 创建迭代处理器
func NewSprintHandler(sprintService *service.SprintService) *SprintHandler {
	return &SprintHandler{
		sprintService: sprintService,
	}
}

// List 迭代列表
// GET /api/sprints
func (h *SprintHandler) List(c *gin.Context) {
	sprints, err := h.sprintService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, sprints)
}

// Create 创建迭代
// POST /api/sprints
func (h *SprintHandler) Create(c *gin.Context) {
	var req dto.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.FormatBindingError(err))
		return
	}

	sprint, err := h.sprintService.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, sprint)
}

// Update 部分更新迭代
// PATCH /api/sprints/:id
func (h *SprintHandler) Update(c *gin.Context) {
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

	sprint, err := h.sprintService.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, sprint)
}

// Delete 删除迭代
// DELETE /api/sprints/:id
func (h *SprintHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.sprintService.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.DeleteResponse{Success: true})
}
