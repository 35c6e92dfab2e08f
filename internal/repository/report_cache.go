package repository

import (
	"context"
	"encoding/json"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const reportKeyPrefix = "training:report:"

func ReportCacheKey(studentID string) string {
	return reportKeyPrefix + studentID
}

// RedisReportCache 以 JSON 形式缓存训练报告
type RedisReportCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{Client: client, TTL: ttl}
}

func (c *RedisReportCache) Get(ctx context.Context, studentID string) (*model.TrainingReport, bool) {
	raw, err := c.Client.Get(ctx, ReportCacheKey(studentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logger.Log.Warn("Report cache read failed", zap.String("studentId", studentID), zap.Error(err))
		return nil, false
	}

	var report model.TrainingReport
	if err := json.Unmarshal(raw, &report); err != nil {
		logger.Log.Warn("Report cache entry is corrupt", zap.String("studentId", studentID), zap.Error(err))
		return nil, false
	}
	return &report, true
}

func (c *RedisReportCache) Set(ctx context.Context, studentID string, report *model.TrainingReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, ReportCacheKey(studentID), raw, c.TTL).Err()
}

func (c *RedisReportCache) Invalidate(ctx context.Context, studentIDs ...string) error {
	if len(studentIDs) == 0 {
		return nil
	}
	keys := make([]string, len(studentIDs))
	for i, sid := range studentIDs {
		keys[i] = ReportCacheKey(sid)
	}
	return c.Client.Del(ctx, keys...).Err()
}

// NoopReportCache 未启用 Redis 时使用
type NoopReportCache struct{}

func (NoopReportCache) Get(ctx context.Context, studentID string) (*model.TrainingReport, bool) {
	return nil, false
}

func (NoopReportCache) Set(ctx context.Context, studentID string, report *model.TrainingReport) error {
	return nil
}

func (NoopReportCache) Invalidate(ctx context.Context, studentIDs ...string) error {
	return nil
}
