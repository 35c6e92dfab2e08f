package controller

import (
	"errors"
	"flagguard_backend/internal/service"
	"flagguard_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 业务错误映射为 HTTP 状态码
func respondError(ctx *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		util.NotFoundWithMessage(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCategory),
		errors.Is(err, util.ErrInvalidTrainingRecord),
		errors.Is(err, util.ErrInvalidImport),
		errors.Is(err, util.ErrInvalidFileType):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
