package service

import (
	"context"
	"flagguard_backend/internal/model"
)

type AchievementService struct {
	Achievements AchievementSource
}

func NewAchievementService(achievements AchievementSource) *AchievementService {
	return &AchievementService{Achievements: achievements}
}

func (s *AchievementService) ListCatalog(ctx context.Context) ([]model.Achievement, error) {
	return s.Achievements.ListAchievements(ctx)
}

// GetMemberAchievements 队员已获得的成就，按目录顺序返回，未知编号忽略
func (s *AchievementService) GetMemberAchievements(ctx context.Context, studentID string) ([]model.Achievement, error) {
	codes, err := s.Achievements.ListMemberAchievementCodes(ctx, studentID)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(codes))
	for _, code := range codes {
		earned[code] = true
	}

	catalog, err := s.Achievements.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}

	achievements := make([]model.Achievement, 0, len(codes))
	for _, a := range catalog {
		if earned[a.Code] {
			achievements = append(achievements, a)
		}
	}
	return achievements, nil
}
