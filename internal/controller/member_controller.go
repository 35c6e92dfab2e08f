package controller

import (
	"flagguard_backend/internal/service"
	"flagguard_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	MemberService      *service.MemberService
	AchievementService *service.AchievementService
}

func NewMemberController(memberService *service.MemberService, achievementService *service.AchievementService) *MemberController {
	return &MemberController{
		MemberService:      memberService,
		AchievementService: achievementService,
	}
}

// ListMembers godoc
// @Summary 队员列表
// @Description 按职务筛选的分页队员列表
// @Tags 队员
// @Produce json
// @Param position query string false "职务，如 预备队员"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/members [get]
func (c *MemberController) ListMembers(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"), util.DefaultPageLimit)
	position := strings.TrimSpace(ctx.Query("position"))

	members, total, err := c.MemberService.ListMembers(ctx.Request.Context(), position, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(members, total, page, limit))
}

// GetMember godoc
// @Summary 队员档案
// @Description 未登记的学号返回通用档案（isDefault=true）
// @Tags 队员
// @Produce json
// @Param sid path string true "学号"
// @Success 200 {object} util.Response{data=model.Member}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/members/{sid} [get]
func (c *MemberController) GetMember(ctx *gin.Context) {
	member, err := c.MemberService.GetProfile(ctx.Request.Context(), ctx.Param("sid"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, member)
}

// GetAchievements godoc
// @Summary 队员成就
// @Description 按成就目录顺序返回队员已获得的成就
// @Tags 队员
// @Produce json
// @Param sid path string true "学号"
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/members/{sid}/achievements [get]
func (c *MemberController) GetAchievements(ctx *gin.Context) {
	achievements, err := c.AchievementService.GetMemberAchievements(ctx.Request.Context(), ctx.Param("sid"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// ListAchievementCatalog godoc
// @Summary 成就目录
// @Tags 队员
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/achievements [get]
func (c *MemberController) ListAchievementCatalog(ctx *gin.Context) {
	catalog, err := c.AchievementService.ListCatalog(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, catalog)
}
