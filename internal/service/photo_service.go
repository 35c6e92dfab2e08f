package service

import (
	"context"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"flagguard_backend/pkg/logger"
	"flagguard_backend/pkg/tracing"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ThumbnailFunc 生成缩略图，默认使用 ffmpeg
type ThumbnailFunc func(src, dst string, width int) error

type PhotoService struct {
	Photos    PhotoSource
	Writer    PhotoWriter
	Storage   StorageProvider
	Thumbnail ThumbnailFunc
	TempDir   string
}

func NewPhotoService(photos PhotoSource, writer PhotoWriter, storage StorageProvider) *PhotoService {
	return &PhotoService{
		Photos:    photos,
		Writer:    writer,
		Storage:   storage,
		Thumbnail: util.GenerateImageThumbnail,
	}
}

// ListPhotos 队员照片，category 为空或 all 时返回全部
func (s *PhotoService) ListPhotos(ctx context.Context, studentID, category string) ([]model.Photo, error) {
	category = strings.TrimSpace(category)
	if category == model.MessageCategoryAll {
		category = ""
	}
	if category != "" && !model.IsValidPhotoCategory(category) {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidCategory, category)
	}
	return s.Photos.ListPhotos(ctx, studentID, category)
}

// PhotoUpload 上传照片的元数据
type PhotoUpload struct {
	StudentID   string
	Filename    string
	Size        int64
	Category    string
	Alt         string
	Date        string
	Description string
	Tags        []string
}

// Upload 校验图片后保存原图和缩略图并记录元数据，缩略图失败不影响上传
func (s *PhotoService) Upload(ctx context.Context, upload PhotoUpload, content io.Reader) (_ *model.Photo, err error) {
	ctx, span := tracing.StartSpan(ctx, "PhotoService.Upload",
		attribute.String("student_id", upload.StudentID),
		attribute.String("category", upload.Category))
	defer func() { tracing.EndSpan(span, err) }()

	if !model.IsValidPhotoCategory(upload.Category) {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidCategory, upload.Category)
	}
	if upload.Size > util.MaxPhotoSize {
		return nil, util.ErrFileTooLarge
	}
	if !util.HasAllowedExtension(upload.Filename, util.AllowedPhotoExtensions) {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidFileType, filepath.Ext(upload.Filename))
	}

	workDir, err := os.MkdirTemp(s.TempDir, "photo-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workDir)

	id := model.GenerateUUID()
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	originalPath := filepath.Join(workDir, id+ext)

	written, err := saveTo(originalPath, content, util.MaxPhotoSize)
	if err != nil {
		return nil, err
	}
	if written > util.MaxPhotoSize {
		return nil, util.ErrFileTooLarge
	}

	mimeType, err := detectMime(originalPath)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("photos/%s/%s%s", upload.StudentID, id, ext)
	src, err := s.Storage.UploadFile(ctx, key, originalPath, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := &model.Photo{
		UUIDBase:    model.UUIDBase{ID: id},
		StudentID:   upload.StudentID,
		Src:         src,
		Alt:         upload.Alt,
		Category:    upload.Category,
		Date:        upload.Date,
		Description: upload.Description,
		Tags:        upload.Tags,
	}
	if photo.Tags == nil {
		photo.Tags = []string{}
	}
	thumbKey, thumbURL := s.storeThumbnail(ctx, upload.StudentID, id, originalPath, workDir)
	photo.ThumbnailSrc = thumbURL

	if err := s.Writer.CreatePhoto(ctx, photo); err != nil {
		for _, k := range []string{key, thumbKey} {
			if k == "" {
				continue
			}
			if delErr := s.Storage.Delete(ctx, k); delErr != nil {
				logger.Log.Warn("Failed to remove orphan photo", zap.String("key", k), zap.Error(delErr))
			}
		}
		return nil, err
	}

	logger.Log.Info("Photo uploaded",
		zap.String("studentId", upload.StudentID),
		zap.String("photoId", id),
		zap.String("category", upload.Category),
		zap.Int64("size", written))
	return photo, nil
}

// storeThumbnail 返回缩略图的存储键和地址，失败时均为空
func (s *PhotoService) storeThumbnail(ctx context.Context, studentID, id, originalPath, workDir string) (string, string) {
	if s.Thumbnail == nil {
		return "", ""
	}
	thumbPath := filepath.Join(workDir, "thumb_"+id+".jpg")
	if err := s.Thumbnail(originalPath, thumbPath, util.ThumbnailWidth); err != nil {
		logger.Log.Warn("Failed to generate thumbnail", zap.String("photoId", id), zap.Error(err))
		return "", ""
	}

	key := fmt.Sprintf("photos/%s/thumb_%s.jpg", studentID, id)
	url, err := s.Storage.UploadFile(ctx, key, thumbPath, "image/jpeg")
	if err != nil {
		logger.Log.Warn("Failed to store thumbnail", zap.String("photoId", id), zap.Error(err))
		return "", ""
	}
	return key, url
}

// saveTo 最多多读一个字节用于判断超限
func saveTo(path string, r io.Reader, limit int64) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	return io.Copy(out, io.LimitReader(r, limit+1))
}

func detectMime(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return util.ValidateMimeType(f, []string{util.MimeImage})
}
