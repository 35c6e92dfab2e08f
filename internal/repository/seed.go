package repository

import (
	"context"
	"flagguard_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// SeedDatabase 把静态数据集写入数据库，按业务键覆盖
func SeedDatabase(ctx context.Context, db *gorm.DB, ds *Dataset) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		members := NewMemberRepository(tx)
		for i := range ds.Members {
			if err := members.UpsertMember(ctx, &ds.Members[i]); err != nil {
				return fmt.Errorf("member %s: %w", ds.Members[i].StudentID, err)
			}
		}

		records := NewTrainingRepository(tx)
		for i := range ds.TrainingRecords {
			if err := records.UpsertTrainingRecord(ctx, &ds.TrainingRecords[i]); err != nil {
				return fmt.Errorf("training record %s: %w", ds.TrainingRecords[i].StudentID, err)
			}
		}

		achievements := NewAchievementRepository(tx)
		for i := range ds.Achievements.Catalog {
			if err := achievements.UpsertAchievement(ctx, &ds.Achievements.Catalog[i]); err != nil {
				return fmt.Errorf("achievement %s: %w", ds.Achievements.Catalog[i].Code, err)
			}
		}
		for sid, codes := range ds.Achievements.Members {
			if err := achievements.GrantAchievements(ctx, sid, codes); err != nil {
				return fmt.Errorf("achievements of %s: %w", sid, err)
			}
		}

		photos := NewPhotoRepository(tx)
		for sid, list := range ds.Photos {
			for i := range list {
				var existing int64
				tx.Model(&model.Photo{}).Where("id = ?", list[i].ID).Count(&existing)
				if existing > 0 {
					continue
				}
				list[i].StudentID = sid
				if err := photos.CreatePhoto(ctx, &list[i]); err != nil {
					return fmt.Errorf("photo %s: %w", list[i].ID, err)
				}
			}
		}

		messages := NewLeaderMessageRepository(tx)
		for i := range ds.Messages.Categories {
			if err := messages.UpsertCategory(ctx, &ds.Messages.Categories[i]); err != nil {
				return fmt.Errorf("message category %s: %w", ds.Messages.Categories[i].ID, err)
			}
		}
		for i := range ds.Messages.List {
			if err := messages.UpsertLeaderMessage(ctx, &ds.Messages.List[i]); err != nil {
				return fmt.Errorf("leader message %s: %w", ds.Messages.List[i].Code, err)
			}
		}
		return nil
	})
}
