// 从训练表格导出的 CSV 批量导入训练记录
//
// database 模式下写入 MySQL；static 模式下合并到 YAML 数据集文件。
// 服务运行时也可以通过 POST /api/admin/import 上传同样的文件。
//
// 用法: go run scripts/import_training.go -file 训练记录.csv [-config configs] [-dry-run]

package main

import (
	"context"
	"flag"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/repository"
	"flagguard_backend/internal/service"
	"flagguard_backend/pkg/database"
	"flagguard_backend/pkg/logger"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "CSV 文件路径")
	configDir := flag.String("config", "configs", "配置文件所在目录")
	dryRun := flag.Bool("dry-run", false, "只解析并打印汇总，不写入")
	flag.Parse()

	if *file == "" {
		log.Fatal("请通过 -file 指定 CSV 文件")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("无法打开 CSV 文件: %v", err)
	}
	rows, err := service.ParseImportCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("解析 CSV 失败: %v", err)
	}

	if *dryRun {
		result := service.ProcessRows(rows)
		log.Printf("共 %d 行：有效 %d，跳过 %d，错误 %d，涉及 %d 名队员",
			len(rows), result.AcceptedRows, result.SkippedRows, len(result.RejectedRows), len(result.Records))
		for _, e := range result.RejectedRows {
			log.Printf("第 %d 行 %s: %s", e.Row, e.StudentID, e.Message)
		}
		return
	}

	ctx := context.Background()
	var summary *model.ImportSummary
	switch cfg.Data.Source {
	case config.DataSourceDatabase:
		summary, err = importToDatabase(ctx, cfg, rows)
	default:
		summary, err = importToDataset(ctx, cfg.Data.SeedPath, rows)
	}
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	log.Printf("完成！导入 %d 名队员，失败 %d，跳过 %d 行", summary.Imported, summary.Failed, summary.SkippedRows)
	for _, r := range summary.Results {
		if !r.Success {
			log.Printf("队员 %s 导入失败: %s", r.StudentID, r.Error)
		}
	}
}

func importToDatabase(ctx context.Context, cfg *config.Config, rows []model.ImportRow) (*model.ImportSummary, error) {
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	var cache service.ReportCache = repository.NoopReportCache{}
	if cfg.Redis.Enabled {
		if rdb, err := database.InitRedis(&cfg.Redis); err == nil {
			defer rdb.Close()
			cache = repository.NewRedisReportCache(rdb, cfg.Redis.ReportTTL)
		} else {
			logger.Log.Warn("Redis unavailable, cached reports may be stale", zap.Error(err))
		}
	}

	importer := service.NewImportService(repository.NewTrainingRepository(db), cache)
	return importer.Import(ctx, rows)
}

func importToDataset(ctx context.Context, path string, rows []model.ImportRow) (*model.ImportSummary, error) {
	ds, err := repository.LoadDataset(path)
	if err != nil {
		return nil, err
	}

	store := repository.NewStaticStoreFromDataset(ds)
	importer := service.NewImportService(store, repository.NoopReportCache{})
	summary, err := importer.Import(ctx, rows)
	if err != nil {
		return nil, err
	}

	ds.TrainingRecords, err = store.ListTrainingRecords(ctx)
	if err != nil {
		return nil, err
	}
	if err := repository.SaveDataset(path, ds); err != nil {
		return nil, err
	}
	logger.Log.Info("Dataset updated", zap.String("path", path))
	return summary, nil
}
