package service

import (
	"context"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"strings"
)

type LeaderMessageService struct {
	Messages LeaderMessageSource
}

func NewLeaderMessageService(messages LeaderMessageSource) *LeaderMessageService {
	return &LeaderMessageService{Messages: messages}
}

// GetMessagePage 寄语页，按分类筛选后分页，统计始终基于全部寄语
func (s *LeaderMessageService) GetMessagePage(ctx context.Context, category string, page, limit int) (*model.MessagePage, error) {
	if page < 1 {
		page = util.DefaultPage
	}
	if limit < 1 {
		limit = util.DefaultMessageLimit
	}

	meta, err := s.Messages.GetMessagePageMeta(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := s.Messages.ListLeaderMessages(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	filtered := make([]model.LeaderMessage, 0, len(messages))
	for i := range messages {
		if messages[i].HasCategory(category) {
			filtered = append(filtered, messages[i])
		}
	}

	start, end := util.PageBounds(len(filtered), page, limit)
	total := int64(len(filtered))

	categories := meta.Categories
	if categories == nil {
		categories = []model.MessageCategory{}
	}

	return &model.MessagePage{
		PageTitle:    meta.PageTitle,
		PageSubtitle: meta.PageSubtitle,
		Categories:   categories,
		Stats:        messageStats(meta, len(messages)),
		List:         filtered[start:end],
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   util.TotalPages(total, limit),
	}, nil
}

func (s *LeaderMessageService) GetMessage(ctx context.Context, id string) (*model.LeaderMessage, error) {
	return s.Messages.GetLeaderMessage(ctx, id)
}

// messageStats 分类数不含“全部”
func messageStats(meta *model.MessagePageMeta, total int) model.MessageStats {
	categories := 0
	for _, c := range meta.Categories {
		if c.ID != model.MessageCategoryAll {
			categories++
		}
	}
	generations := meta.Generations
	if generations == 0 {
		generations = model.DefaultMessageGenerations
	}
	return model.MessageStats{
		TotalMessages: total,
		Categories:    categories,
		Generations:   generations,
	}
}
