package controller

import (
	"flagguard_backend/internal/service"
	"flagguard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	MessageService *service.LeaderMessageService
}

func NewMessageController(messageService *service.LeaderMessageService) *MessageController {
	return &MessageController{MessageService: messageService}
}

// GetMessagePage godoc
// @Summary 队长及队委寄语
// @Description 按分类筛选的寄语分页，附带页面标题、分类与统计
// @Tags 寄语
// @Produce json
// @Param category query string false "分类，all 表示全部"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(6)
// @Success 200 {object} util.Response{data=model.MessagePage}
// @Router /api/messages [get]
func (c *MessageController) GetMessagePage(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"), util.DefaultMessageLimit)

	result, err := c.MessageService.GetMessagePage(ctx.Request.Context(), ctx.Query("category"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetMessage godoc
// @Summary 寄语详情
// @Tags 寄语
// @Produce json
// @Param id path string true "寄语 ID"
// @Success 200 {object} util.Response{data=model.LeaderMessage}
// @Failure 404 {object} util.Response "寄语不存在"
// @Router /api/messages/{id} [get]
func (c *MessageController) GetMessage(ctx *gin.Context) {
	msg, err := c.MessageService.GetMessage(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, msg)
}
