package service

import (
	"context"
	"flagguard_backend/internal/model"
)

// 数据访问接口，由 gorm 仓库和静态数据集分别实现

type TrainingRecordSource interface {
	GetTrainingRecord(ctx context.Context, studentID string) (*model.TrainingRecord, error)
	ListTrainingRecords(ctx context.Context) ([]model.TrainingRecord, error)
}

type TrainingRecordWriter interface {
	UpsertTrainingRecord(ctx context.Context, record *model.TrainingRecord) error
}

type MemberSource interface {
	GetMember(ctx context.Context, studentID string) (*model.Member, error)
	ListMembers(ctx context.Context, position string, page, limit int) ([]model.Member, int64, error)
	CountMembers(ctx context.Context) (int64, error)
}

type AchievementSource interface {
	// ListAchievements 按目录顺序返回
	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	ListMemberAchievementCodes(ctx context.Context, studentID string) ([]string, error)
}

type PhotoSource interface {
	// ListPhotos category 为空时返回全部
	ListPhotos(ctx context.Context, studentID, category string) ([]model.Photo, error)
}

type PhotoWriter interface {
	CreatePhoto(ctx context.Context, photo *model.Photo) error
}

type LeaderMessageSource interface {
	ListLeaderMessages(ctx context.Context) ([]model.LeaderMessage, error)
	GetLeaderMessage(ctx context.Context, id string) (*model.LeaderMessage, error)
	GetMessagePageMeta(ctx context.Context) (*model.MessagePageMeta, error)
}

// ReportCache 训练报告缓存
type ReportCache interface {
	Get(ctx context.Context, studentID string) (*model.TrainingReport, bool)
	Set(ctx context.Context, studentID string, report *model.TrainingReport) error
	Invalidate(ctx context.Context, studentIDs ...string) error
}
