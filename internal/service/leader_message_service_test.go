package service

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture(n int) *fakeMessages {
	f := &fakeMessages{
		meta: model.MessagePageMeta{
			PageTitle: "寄语",
			Categories: []model.MessageCategory{
				{ID: model.MessageCategoryAll, Name: "全部"},
				{ID: "captain", Name: "队长"},
				{ID: "committee", Name: "队委"},
			},
		},
	}
	for i := 0; i < n; i++ {
		category := "committee"
		if i == 0 {
			category = "captain"
		}
		f.messages = append(f.messages, model.LeaderMessage{
			Code:       fmt.Sprintf("m%d", i),
			Name:       fmt.Sprintf("队员%d", i),
			Categories: []string{category},
			IsCaptain:  i == 0,
		})
	}
	return f
}

func TestGetMessagePageDefaults(t *testing.T) {
	svc := NewLeaderMessageService(newMessageFixture(8))

	page, err := svc.GetMessagePage(context.Background(), "", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, util.DefaultMessageLimit, page.Limit)
	assert.Len(t, page.List, 6)
	assert.EqualValues(t, 8, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "寄语", page.PageTitle)
	assert.Equal(t, model.MessageStats{TotalMessages: 8, Categories: 2, Generations: model.DefaultMessageGenerations}, page.Stats)
}

func TestGetMessagePageFiltersByCategory(t *testing.T) {
	svc := NewLeaderMessageService(newMessageFixture(8))
	ctx := context.Background()

	page, err := svc.GetMessagePage(ctx, "captain", 1, 6)
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.True(t, page.List[0].IsCaptain)
	assert.Equal(t, 8, page.Stats.TotalMessages)

	page, err = svc.GetMessagePage(ctx, "committee", 2, 6)
	require.NoError(t, err)
	assert.Len(t, page.List, 1)
	assert.EqualValues(t, 7, page.Total)

	page, err = svc.GetMessagePage(ctx, "all", 1, 100)
	require.NoError(t, err)
	assert.Len(t, page.List, 8)

	page, err = svc.GetMessagePage(ctx, "alumni", 1, 6)
	require.NoError(t, err)
	assert.NotNil(t, page.List)
	assert.Empty(t, page.List)
	assert.Zero(t, page.TotalPages)
}

func TestGetMessagePagePastLastPage(t *testing.T) {
	svc := NewLeaderMessageService(newMessageFixture(3))
	page, err := svc.GetMessagePage(context.Background(), "", 5, 6)
	require.NoError(t, err)
	assert.Empty(t, page.List)
	assert.EqualValues(t, 3, page.Total)
}

func TestGetMessage(t *testing.T) {
	svc := NewLeaderMessageService(newMessageFixture(2))

	m, err := svc.GetMessage(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "队员1", m.Name)

	_, err = svc.GetMessage(context.Background(), "missing")
	assert.True(t, errors.Is(err, util.ErrMessageNotFound))
}
