package repository

import (
	"context"
	"flagguard_backend/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	DB *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

func (r *PhotoRepository) ListPhotos(ctx context.Context, studentID, category string) ([]model.Photo, error) {
	query := r.DB.WithContext(ctx).Where("student_id = ?", studentID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var photos []model.Photo
	err := query.Order("date ASC, created_at ASC").Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) CreatePhoto(ctx context.Context, photo *model.Photo) error {
	return r.DB.WithContext(ctx).Create(photo).Error
}
