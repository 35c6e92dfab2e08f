package repository

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainingRepository struct {
	DB *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

func (r *TrainingRepository) GetTrainingRecord(ctx context.Context, studentID string) (*model.TrainingRecord, error) {
	var record model.TrainingRecord
	err := r.DB.WithContext(ctx).Where("student_id = ?", studentID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTrainingRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *TrainingRepository) ListTrainingRecords(ctx context.Context) ([]model.TrainingRecord, error) {
	var records []model.TrainingRecord
	err := r.DB.WithContext(ctx).Order("student_id ASC").Find(&records).Error
	return records, err
}

// UpsertTrainingRecord 学号冲突时整体覆盖
func (r *TrainingRepository) UpsertTrainingRecord(ctx context.Context, record *model.TrainingRecord) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"weekly_hours", "milestones", "statistics", "photo_stats", "updated_at"}),
	}).Create(record).Error
}
