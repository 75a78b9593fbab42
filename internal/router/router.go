package router

import (
	"doable-go/internal/config"
	"doable-go/internal/handler"
	"doable-go/internal/middleware"
	"doable-go/internal/repository"
	"doable-go/internal/service"
	"doable-go/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	db *gorm.DB,
	store *storage.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "项目管理系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	sprintRepo := repository.NewSprintRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	taskService := service.NewTaskService(taskRepo)
	sprintService := service.NewSprintService(sprintRepo)
	recordService := service.NewRecordService(recordRepo)

	// nil指针不能直接塞进接口,否则未配置判断会失效
	var objectStore service.ObjectStore
	if store != nil {
		objectStore = store
	}
	uploadService := service.NewUploadService(objectStore)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	sprintHandler := handler.NewSprintHandler(sprintService)
	recordHandler := handler.NewRecordHandler(recordService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// API路由组
	api := r.Group("/api")
	{
		// 认证
		api.POST("/auth/login", authHandler.Login)

		// 用户
		api.GET("/users", userHandler.List)
		api.POST("/users", userHandler.Create)
		api.PATCH("/users/:id", userHandler.Update)

		// 项目
		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.PATCH("/projects/:id", projectHandler.Update)

		// 任务
		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks/get/:slug", taskHandler.GetBySlug)
		api.PATCH("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		// 迭代
		api.GET("/sprints", sprintHandler.List)
		api.POST("/sprints", sprintHandler.Create)
		api.PATCH("/sprints/:id", sprintHandler.Update)
		api.DELETE("/sprints/:id", sprintHandler.Delete)

		// 通用记录
		api.GET("/data", recordHandler.List)
		api.POST("/data", recordHandler.Create)
		api.PATCH("/data/:id", recordHandler.Update)

		// 上传
		api.POST("/upload", uploadHandler.Upload)
	}

	return r
}
