package main

import (
	"log"
	"os"

	"doable-go/internal/config"
	"doable-go/internal/models"
	"doable-go/internal/repository"
	"doable-go/internal/router"
	"doable-go/internal/service"
	"doable-go/internal/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置(从项目根目录读取)
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库,连接建立一次后注入各层
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 初始化对象存储,未配置时上传接口返回错误而不是启动失败
	var store *storage.Client
	if cfg.S3.IsConfigured() {
		store, err = storage.NewClient(cfg.S3)
		if err != nil {
			log.Fatalf("初始化对象存储失败: %v", err)
		}
		logger.WithFields(logrus.Fields{
			"endpoint": cfg.S3.Endpoint,
			"bucket":   cfg.S3.Bucket,
			"region":   cfg.S3.Region,
		}).Info("对象存储已配置")
	} else {
		logger.Warn("对象存储未配置,上传接口不可用")
	}

	// 初始化种子数据
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg)
	if err := authService.SeedAdmin(); err != nil {
		logger.Warnf("初始化默认账户失败: %v", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, logger, db, store)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
