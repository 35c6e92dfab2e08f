package database

import (
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models 需要迁移的表
func Models() []interface{} {
	return []interface{}{
		&model.Member{},
		&model.TrainingRecord{},
		&model.Achievement{},
		&model.MemberAchievement{},
		&model.Photo{},
		&model.LeaderMessage{},
		&model.MessageCategory{},
	}
}

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Info
	if mode == "release" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表并写入默认成就目录与寄语分类
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	log.Println("Database migration completed")

	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count == 0 {
		for _, a := range model.DefaultAchievements() {
			a := a
			if err := db.Create(&a).Error; err != nil {
				return fmt.Errorf("failed to seed achievement %s: %w", a.Code, err)
			}
		}
	}

	var catCount int64
	db.Model(&model.MessageCategory{}).Count(&catCount)
	if catCount == 0 {
		defaultCategories := []model.MessageCategory{
			{ID: model.MessageCategoryAll, Name: "全部", Icon: "fa-th", SortOrder: 1},
			{ID: "captain", Name: "队长", Icon: "fa-crown", SortOrder: 2},
			{ID: "committee", Name: "队委", Icon: "fa-user-tie", SortOrder: 3},
		}
		for _, c := range defaultCategories {
			c := c
			if err := db.Create(&c).Error; err != nil {
				return fmt.Errorf("failed to seed message category %s: %w", c.ID, err)
			}
		}
	}

	return nil
}

// NeedsMigration 核心表缺失时需要迁移
func NeedsMigration(db *gorm.DB) bool {
	migrator := db.Migrator()
	for _, m := range Models() {
		if !migrator.HasTable(m) {
			return true
		}
	}
	return false
}
