package controller

import (
	"context"
	"flagguard_backend/internal/util"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB         *gorm.DB
	Redis      *redis.Client
	DataSource string
}

// NewHealthController db 与 redis 未启用时传 nil
func NewHealthController(db *gorm.DB, rdb *redis.Client, dataSource string) *HealthController {
	return &HealthController{DB: db, Redis: rdb, DataSource: dataSource}
}

// @Summary 健康检查
// @Description 检查服务及依赖组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response "依赖组件不可用"
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{"dataSource": c.DataSource}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			util.InternalServerError(ctx)
			return
		}
		if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		components["database"] = "up"
	}

	if c.Redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.Redis.Ping(pingCtx).Err(); err != nil {
			components["redis"] = "down"
		} else {
			components["redis"] = "up"
		}
	}

	// 缺少 ffmpeg 只影响缩略图
	if version, err := util.GetFFmpegVersion(); err != nil {
		components["ffmpeg"] = "unavailable"
	} else {
		components["ffmpeg"] = firstLine(version)
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
