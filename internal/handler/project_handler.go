package handler

import (
	"doable-go/internal/dto"
	"doable-go/internal/service"
	"doable-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List 项目列表
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, projects)
}

// Create 创建项目
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.FormatBindingError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, project)
}

// Update 部分更新项目
// PATCH /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
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

	project, err := h.projectService.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, project)
}
