package repository

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderMessageRepository struct {
	DB *gorm.DB
}

func NewLeaderMessageRepository(db *gorm.DB) *LeaderMessageRepository {
	return &LeaderMessageRepository{DB: db}
}

// 队长寄语排在最前
func (r *LeaderMessageRepository) ListLeaderMessages(ctx context.Context) ([]model.LeaderMessage, error) {
	var messages []model.LeaderMessage
	err := r.DB.WithContext(ctx).Order("is_captain DESC, sort_order ASC, id ASC").Find(&messages).Error
	return messages, err
}

func (r *LeaderMessageRepository) GetLeaderMessage(ctx context.Context, id string) (*model.LeaderMessage, error) {
	var message model.LeaderMessage
	err := r.DB.WithContext(ctx).Where("code = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *LeaderMessageRepository) GetMessagePageMeta(ctx context.Context) (*model.MessagePageMeta, error) {
	meta := model.DefaultMessagePageMeta()
	if err := r.DB.WithContext(ctx).Order("sort_order ASC").Find(&meta.Categories).Error; err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *LeaderMessageRepository) UpsertLeaderMessage(ctx context.Context, message *model.LeaderMessage) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		UpdateAll: true,
	}).Create(message).Error
}

func (r *LeaderMessageRepository) UpsertCategory(ctx context.Context, category *model.MessageCategory) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(category).Error
}
