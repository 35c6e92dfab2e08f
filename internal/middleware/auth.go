package middleware

import (
	"flagguard_backend/internal/util"
	"flagguard_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserKey 解析后的 Claims 在 gin.Context 中的键
const ContextUserKey = "user"

// AuthMiddleware 校验 Bearer Token 并写入 Claims
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" || tokenString == authHeader {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT rejected", zap.String("path", c.FullPath()), zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// RoleMiddleware 需在 AuthMiddleware 之后使用
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

// AdminAuthMiddleware 管理接口鉴权
func AdminAuthMiddleware(secret string) []gin.HandlerFunc {
	return []gin.HandlerFunc{AuthMiddleware(secret), RoleMiddleware(util.RoleAdmin)}
}
