package handler

import (
	"doable-go/internal/dto"
	"doable-go/internal/service"
	"doable-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List 任务列表
// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, tasks)
}

// Create 创建任务
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.FormatBindingError(err))
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, task)
}

// GetBySlug 组合标识查询任务
// GET /api/tasks/get/:slug
func (h *TaskHandler) GetBySlug(c *gin.Context) {
	task, err := h.taskService.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, task)
}

// Update 部分更新任务
// PATCH /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
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

	task, err := h.taskService.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, task)
}

// Delete 删除任务
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.DeleteResponse{Success: true})
}
