package controller

import (
	"flagguard_backend/internal/service"
	"flagguard_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type PhotoController struct {
	PhotoService *service.PhotoService
}

func NewPhotoController(photoService *service.PhotoService) *PhotoController {
	return &PhotoController{PhotoService: photoService}
}

// ListPhotos godoc
// @Summary 队员照片
// @Description 照片元数据，可按分类筛选
// @Tags 照片
// @Produce json
// @Param sid path string true "学号"
// @Param category query string false "分类" Enums(training, exam, event, award)
// @Success 200 {object} util.Response{data=[]model.Photo}
// @Failure 400 {object} util.Response "分类不合法"
// @Router /api/members/{sid}/photos [get]
func (c *PhotoController) ListPhotos(ctx *gin.Context) {
	photos, err := c.PhotoService.ListPhotos(ctx.Request.Context(), ctx.Param("sid"), ctx.Query("category"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, photos)
}

// UploadPhoto godoc
// @Summary 上传照片
// @Description 上传图片并生成缩略图
// @Tags 管理
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param sid path string true "学号"
// @Param file formData file true "图片文件"
// @Param category formData string true "分类" Enums(training, exam, event, award)
// @Param alt formData string false "替代文本"
// @Param date formData string false "拍摄日期"
// @Param description formData string false "描述"
// @Param tags formData string false "标签，逗号分隔"
// @Success 201 {object} util.Response{data=model.Photo}
// @Failure 400 {object} util.Response "文件或分类不合法"
// @Failure 413 {object} util.Response "文件过大"
// @Router /api/admin/members/{sid}/photos [post]
func (c *PhotoController) UploadPhoto(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "请选择要上传的图片")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	photo, err := c.PhotoService.Upload(ctx.Request.Context(), service.PhotoUpload{
		StudentID:   ctx.Param("sid"),
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		Category:    strings.TrimSpace(ctx.PostForm("category")),
		Alt:         ctx.PostForm("alt"),
		Date:        ctx.PostForm("date"),
		Description: ctx.PostForm("description"),
		Tags:        splitTags(ctx.PostForm("tags")),
	}, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, photo)
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
