package controller

import (
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/service"
	"flagguard_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	ImportService *service.ImportService
}

func NewImportController(importService *service.ImportService) *ImportController {
	return &ImportController{ImportService: importService}
}

// ImportRequest JSON 形式的表格行
// swagger:model ImportRequest
type ImportRequest struct {
	Rows []model.ImportRow `json:"rows" binding:"required"`
}

// ImportTraining godoc
// @Summary 导入训练数据
// @Description 接收表格行（JSON）或 CSV 文件（multipart，字段 file），按学号汇总后写入
// @Tags 管理
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param body body ImportRequest false "表格行"
// @Param file formData file false "CSV 文件"
// @Success 200 {object} util.Response{data=model.ImportSummary}
// @Failure 400 {object} util.Response "数据格式错误"
// @Router /api/admin/import [post]
func (c *ImportController) ImportTraining(ctx *gin.Context) {
	var rows []model.ImportRow

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			util.BadRequest(ctx, "请上传 CSV 文件")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer file.Close()

		rows, err = service.ParseImportCSV(file)
		if err != nil {
			respondError(ctx, err)
			return
		}
	} else {
		var req ImportRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		rows = req.Rows
	}

	summary, err := c.ImportService.Import(ctx.Request.Context(), rows)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
