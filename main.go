// @title 国旗护卫队训练档案 API
// @version 1.0
// @description 队员档案、训练统计与报告、照片和寄语的后端服务。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"flagguard_backend/internal/app"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/service"
	"flagguard_backend/pkg/logger"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	seed := flag.String("seed", "", "启动时将指定的 YAML 数据集导入数据库")
	configDir := flag.String("config", "configs", "配置文件所在目录")
	hashPassword := flag.String("hash-password", "", "输出管理员密码的 bcrypt 哈希后退出")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := service.HashPassword(*hashPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly
	cfg.SeedPath = *seed

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	application, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Error("Failed to start application", zap.Error(err))
		logger.Log.Sync()
		os.Exit(1)
	}

	// 迁移完成后直接退出
	if *migrateOnly {
		application.Close()
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	if err := application.Run(); err != nil {
		logger.Log.Error("Server stopped with error", zap.Error(err))
		logger.Log.Sync()
		os.Exit(1)
	}
}
