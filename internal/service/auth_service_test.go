package service

import (
	"errors"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &AuthService{
		Admin: config.AdminConfig{Username: "admin", PasswordHash: string(hash)},
		JWT:   config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newAuthServiceForTest(t, "guard-2024")

	token, err := svc.Login("admin", "guard-2024")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, util.RoleAdmin, claims.Role)
}

func TestAuthServiceLoginRejects(t *testing.T) {
	svc := newAuthServiceForTest(t, "guard-2024")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "guard"},
		{name: "wrong username", username: "root", password: "guard-2024"},
		{name: "empty", username: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.username, tt.password)
			assert.True(t, errors.Is(err, util.ErrInvalidCredentials))
		})
	}
}

func TestAuthServiceWithoutAdminAccount(t *testing.T) {
	svc := &AuthService{JWT: config.JWTConfig{Secret: "s", ExpireTime: time.Hour}}
	_, err := svc.Login("", "")
	assert.True(t, errors.Is(err, util.ErrInvalidCredentials))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}
