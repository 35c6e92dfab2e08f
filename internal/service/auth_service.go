package service

import (
	"crypto/subtle"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/util"
	"flagguard_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Admin config.AdminConfig
	JWT   config.JWTConfig
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{Admin: cfg.Admin, JWT: cfg.JWT}
}

// Login 管理员登录，成功返回 JWT
func (s *AuthService) Login(username, password string) (string, error) {
	if s.Admin.Username == "" || s.Admin.PasswordHash == "" {
		logger.Log.Warn("Admin login attempted but no admin account is configured")
		return "", util.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.Admin.Username)) != 1 {
		return "", util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.Admin.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(username, util.RoleAdmin, s.JWT.Secret, s.JWT.ExpireTime)
	if err != nil {
		return "", err
	}
	logger.Log.Info("Admin logged in", zap.String("username", username))
	return token, nil
}

// HashPassword 生成配置文件中使用的密码哈希
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
