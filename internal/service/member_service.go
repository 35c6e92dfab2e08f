package service

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"flagguard_backend/pkg/logger"

	"go.uber.org/zap"
)

type MemberService struct {
	Members MemberSource
}

func NewMemberService(members MemberSource) *MemberService {
	return &MemberService{Members: members}
}

// ListMembers 按职务筛选的分页列表
func (s *MemberService) ListMembers(ctx context.Context, position string, page, limit int) ([]model.Member, int64, error) {
	members, total, err := s.Members.ListMembers(ctx, position, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if members == nil {
		members = []model.Member{}
	}
	return members, total, nil
}

// GetProfile 未登记的学号返回通用档案
func (s *MemberService) GetProfile(ctx context.Context, studentID string) (*model.Member, error) {
	member, err := s.Members.GetMember(ctx, studentID)
	if errors.Is(err, util.ErrMemberNotFound) {
		logger.Log.Debug("Member not found, using default profile", zap.String("studentId", studentID))
		return model.DefaultMember(studentID), nil
	}
	if err != nil {
		return nil, err
	}
	if member.Achievements == nil {
		member.Achievements = []string{}
	}
	return member, nil
}
