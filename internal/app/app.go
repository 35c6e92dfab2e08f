package app

import (
	"context"
	"errors"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/controller"
	"flagguard_backend/internal/repository"
	"flagguard_backend/internal/service"
	"flagguard_backend/pkg/configwatcher"
	"flagguard_backend/pkg/database"
	"flagguard_backend/pkg/logger"
	"flagguard_backend/pkg/monitoring"
	"flagguard_backend/pkg/security"
	"flagguard_backend/pkg/tracing"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const watchDebounce = 500 * time.Millisecond

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Store  *repository.StaticStore
	Cache  service.ReportCache

	tracer *sdktrace.TracerProvider
	ctx    context.Context
	cancel context.CancelFunc
}

// sources 两种数据来源统一成服务所需的接口
type sources struct {
	members      service.MemberSource
	records      service.TrainingRecordSource
	recordWriter service.TrainingRecordWriter
	achievements service.AchievementSource
	photos       service.PhotoSource
	photoWriter  service.PhotoWriter
	messages     service.LeaderMessageSource
}

type services struct {
	member      *service.MemberService
	achievement *service.AchievementService
	training    *service.TrainingService
	importer    *service.ImportService
	photo       *service.PhotoService
	message     *service.LeaderMessageService
	auth        *service.AuthService
	storage     *service.StorageService
}

type controllers struct {
	health   *controller.HealthController
	member   *controller.MemberController
	training *controller.TrainingController
	photo    *controller.PhotoController
	message  *controller.MessageController
	auth     *controller.AuthController
	importer *controller.ImportController
}

func databaseSources(db *gorm.DB) *sources {
	members := repository.NewMemberRepository(db)
	records := repository.NewTrainingRepository(db)
	photos := repository.NewPhotoRepository(db)
	return &sources{
		members:      members,
		records:      records,
		recordWriter: records,
		achievements: repository.NewAchievementRepository(db),
		photos:       photos,
		photoWriter:  photos,
		messages:     repository.NewLeaderMessageRepository(db),
	}
}

func staticSources(store *repository.StaticStore) *sources {
	return &sources{
		members:      store,
		records:      store,
		recordWriter: store,
		achievements: store,
		photos:       store,
		photoWriter:  store,
		messages:     store,
	}
}

func (a *App) initServices(src *sources, cfg *config.Config) *services {
	s := &services{}
	s.storage = service.NewStorageService(&cfg.Storage)
	s.member = service.NewMemberService(src.members)
	s.achievement = service.NewAchievementService(src.achievements)
	s.training = service.NewTrainingService(src.records, src.recordWriter, src.members, a.Cache)
	s.importer = service.NewImportService(src.recordWriter, a.Cache)
	s.photo = service.NewPhotoService(src.photos, src.photoWriter, s.storage.Provider)
	s.message = service.NewLeaderMessageService(src.messages)
	s.auth = service.NewAuthService(cfg)
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:   controller.NewHealthController(a.DB, a.Redis, a.Config.Data.Source),
		member:   controller.NewMemberController(s.member, s.achievement),
		training: controller.NewTrainingController(s.training),
		photo:    controller.NewPhotoController(s.photo),
		message:  controller.NewMessageController(s.message),
		auth:     controller.NewAuthController(s.auth),
		importer: controller.NewImportController(s.importer),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// openDatabase 连接数据库，按需迁移并导入静态数据集
func (a *App) openDatabase(cfg *config.Config) error {
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	if cfg.ForceMigrate || database.NeedsMigration(db) {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	if cfg.SeedPath != "" {
		ds, err := repository.LoadDataset(cfg.SeedPath)
		if err != nil {
			return err
		}
		if err := repository.SeedDatabase(a.ctx, db, ds); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		logger.Log.Info("Dataset imported into database",
			zap.String("path", cfg.SeedPath),
			zap.Int("members", len(ds.Members)),
			zap.Int("trainingRecords", len(ds.TrainingRecords)))
	}
	return nil
}

// initCache redis 不可用时降级为不缓存
func (a *App) initCache(cfg *config.Config) {
	a.Cache = repository.NoopReportCache{}
	if !cfg.Redis.Enabled {
		return
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, training reports will not be cached", zap.Error(err))
		return
	}
	a.Redis = rdb
	a.Cache = repository.NewRedisReportCache(rdb, cfg.Redis.ReportTTL)
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{Config: cfg, ctx: ctx, cancel: cancel}

	needDB := cfg.Data.Source == config.DataSourceDatabase || cfg.MigrateOnly || cfg.SeedPath != ""
	if needDB {
		if err := app.openDatabase(cfg); err != nil {
			cancel()
			return nil, err
		}
	}
	if cfg.MigrateOnly {
		return app, nil
	}

	app.initCache(cfg)

	var src *sources
	if cfg.Data.Source == config.DataSourceDatabase {
		src = databaseSources(app.DB)
	} else {
		store, err := repository.NewStaticStore(cfg.Data.SeedPath)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		app.Store = store
		src = staticSources(store)
		logger.Log.Info("Serving static dataset", zap.String("path", store.Path()))
	}

	svcs := app.initServices(src, cfg)
	ctrls := app.initControllers(svcs)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startWatcher()
	return app, nil
}

// startWatcher 配置文件变更时调整日志级别，静态模式下数据集变更时重新加载
func (a *App) startWatcher() {
	cfg := a.Config
	watcher := configwatcher.New(watchDebounce)
	watching := false

	if cfg.ConfigFile != "" {
		if err := watcher.Add(cfg.ConfigFile, a.reloadConfig); err != nil {
			logger.Log.Warn("Failed to watch config file", zap.Error(err))
		} else {
			watching = true
		}
	}

	if a.Store != nil && cfg.Data.Watch {
		if err := watcher.Add(a.Store.Path(), a.reloadDataset); err != nil {
			logger.Log.Warn("Failed to watch dataset", zap.Error(err))
		} else {
			watching = true
		}
	}

	if !watching {
		return
	}
	go func() {
		if err := watcher.Run(a.ctx); err != nil {
			logger.Log.Error("File watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) reloadConfig() {
	next, err := config.LoadConfig(filepath.Dir(a.Config.ConfigFile))
	if err != nil {
		logger.Log.Error("Failed to reload config, keeping current settings", zap.Error(err))
		return
	}
	if err := logger.SetLevel(next.Log.Level); err != nil {
		logger.Log.Error("Failed to apply log level", zap.Error(err))
		return
	}
	logger.Log.Info("Config reloaded", zap.String("logLevel", next.Log.Level))
}

func (a *App) reloadDataset() {
	// 重载前后的学号都要清缓存，已删除的记录不能继续命中旧报告
	before := a.Store.StudentIDs()
	if err := a.Store.Reload(); err != nil {
		logger.Log.Error("Failed to reload dataset, keeping previous data", zap.Error(err))
		return
	}

	ids := mergeIDs(before, a.Store.StudentIDs())
	if err := a.Cache.Invalidate(a.ctx, ids...); err != nil {
		logger.Log.Warn("Failed to invalidate training reports", zap.Error(err))
	}
	logger.Log.Info("Dataset reloaded", zap.String("path", a.Store.Path()), zap.Int("invalidated", len(ids)))
}

func mergeIDs(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// Close 释放后台任务与外部连接
func (a *App) Close() {
	a.cancel()

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() error {
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
