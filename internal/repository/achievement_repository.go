package repository

import (
	"context"
	"flagguard_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

// ListAchievements 成就目录，按展示顺序
func (r *AchievementRepository) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementRepository) ListMemberAchievementCodes(ctx context.Context, studentID string) ([]string, error) {
	var codes []string
	err := r.DB.WithContext(ctx).Model(&model.MemberAchievement{}).
		Where("student_id = ?", studentID).
		Pluck("achievement_code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *AchievementRepository) UpsertAchievement(ctx context.Context, achievement *model.Achievement) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "color", "level", "sort_order", "updated_at"}),
	}).Create(achievement).Error
}

// GrantAchievements 为队员授予成就，已有的跳过
func (r *AchievementRepository) GrantAchievements(ctx context.Context, studentID string, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	rows := make([]model.MemberAchievement, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, model.MemberAchievement{StudentID: studentID, AchievementCode: code})
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
