package services

import (
	"context"
	"testing"

	"resto-admin/config"
	"resto-admin/models"
	"resto-admin/repositories"
	"resto-admin/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	if config.AppConfig == nil {
		config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	}
	return NewAuthService(repositories.NewMemoryUserStore())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "dewi@example.com",
		Password: "hunter22",
		FullName: "Dewi Lestari",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff", registered.User.Role)
	assert.NotEmpty(t, registered.Token)

	claims, err := utils.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "dewi@example.com", claims.Email)

	logged, err := svc.Login(ctx, models.LoginRequest{Email: "dewi@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "dewi@example.com", Password: "wrong"})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "dewi@example.com", Password: "hunter22", FullName: "Dewi Lestari"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.RegisterRequest{Email: "budi@example.com", Password: "oldpass1", FullName: "Budi Santoso"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, registered.User.ID, models.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newpass1"})
	assert.Error(t, err)

	err = svc.ChangePassword(ctx, registered.User.ID, models.ChangePasswordRequest{OldPassword: "oldpass1", NewPassword: "newpass1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "budi@example.com", Password: "newpass1"})
	require.NoError(t, err)
}
