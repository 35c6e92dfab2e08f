package repository

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) GetMember(ctx context.Context, studentID string) (*model.Member, error) {
	var member model.Member
	err := r.DB.WithContext(ctx).Where("student_id = ?", studentID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) ListMembers(ctx context.Context, position string, page, limit int) ([]model.Member, int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.Member{})
	if position != "" {
		query = query.Where("position = ?", position)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.Member
	err := query.Order("student_id ASC").
		Offset(util.PageOffset(page, limit)).
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *MemberRepository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).Count(&count).Error
	return count, err
}

// UpsertMember 按学号插入或更新
func (r *MemberRepository) UpsertMember(ctx context.Context, member *model.Member) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "class", "position", "join_date", "achievements", "training_hours", "attendance", "photos", "updated_at"}),
	}).Create(member).Error
}
