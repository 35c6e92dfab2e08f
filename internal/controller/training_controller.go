package controller

import (
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/service"
	"flagguard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	TrainingService *service.TrainingService
}

func NewTrainingController(trainingService *service.TrainingService) *TrainingController {
	return &TrainingController{TrainingService: trainingService}
}

// GetTrainingData godoc
// @Summary 训练数据
// @Description 训练记录及衍生统计（趋势、出勤率、里程碑分类计数）
// @Tags 训练
// @Produce json
// @Param sid path string true "学号"
// @Success 200 {object} util.Response{data=model.TrainingData}
// @Failure 404 {object} util.Response "训练记录不存在"
// @Router /api/members/{sid}/training [get]
func (c *TrainingController) GetTrainingData(ctx *gin.Context) {
	data, err := c.TrainingService.GetTrainingData(ctx.Request.Context(), ctx.Param("sid"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// GetTrainingReport godoc
// @Summary 训练报告
// @Description 训练总结、亮点与建议
// @Tags 训练
// @Produce json
// @Param sid path string true "学号"
// @Success 200 {object} util.Response{data=model.TrainingReport}
// @Failure 404 {object} util.Response "训练记录不存在"
// @Router /api/members/{sid}/training/report [get]
func (c *TrainingController) GetTrainingReport(ctx *gin.Context) {
	report, err := c.TrainingService.GetTrainingReport(ctx.Request.Context(), ctx.Param("sid"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// GetCohortOverview godoc
// @Summary 全届训练概览
// @Tags 训练
// @Produce json
// @Success 200 {object} util.Response{data=model.CohortOverview}
// @Router /api/cohort/overview [get]
func (c *TrainingController) GetCohortOverview(ctx *gin.Context) {
	overview, err := c.TrainingService.GetCohortOverview(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// UpsertTrainingRecord godoc
// @Summary 更新训练记录
// @Description 校验后整体写入训练记录，路径中的学号优先
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sid path string true "学号"
// @Param body body model.TrainingRecord true "训练记录"
// @Success 200 {object} util.Response{data=model.TrainingRecord}
// @Failure 400 {object} util.Response "记录不合法"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/admin/members/{sid}/training [put]
func (c *TrainingController) UpsertTrainingRecord(ctx *gin.Context) {
	var record model.TrainingRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	record.StudentID = ctx.Param("sid")

	if err := c.TrainingService.UpdateTrainingRecord(ctx.Request.Context(), &record); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, record)
}
