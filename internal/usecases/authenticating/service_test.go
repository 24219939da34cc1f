package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	repomocks "github.com/adtrackr/profit-sync-api/infrastructure/repository/mocks"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

func newAuthService(t *testing.T) (*repomocks.MockUserRepository, Authenticator) {
	ctrl := gomock.NewController(t)
	userRepo := repomocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:          "segredo-de-teste",
			TokenExpiration: time.Hour,
		},
	}

	return userRepo, NewService(userRepo, cfg)
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		TenantID:     7,
		Name:         "Dev AdTrackr",
		Email:        "dev@adtrackr.io",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	}
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("login com sucesso emite token com o tenant nas claims", func(t *testing.T) {
		userRepo, service := newAuthService(t)
		user := activeUser(t, "admin123!")

		userRepo.EXPECT().GetUserByEmail(ctx, "dev@adtrackr.io").Return(user, nil)

		token, err := service.LoginUser(ctx, "dev@adtrackr.io", "admin123!")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, 7, claims.TenantID)
	})

	t.Run("email é normalizado antes da consulta", func(t *testing.T) {
		userRepo, service := newAuthService(t)
		user := activeUser(t, "admin123!")

		userRepo.EXPECT().GetUserByEmail(ctx, "dev@adtrackr.io").Return(user, nil)

		_, err := service.LoginUser(ctx, "  Dev@AdTrackr.io ", "admin123!")
		require.NoError(t, err)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		userRepo, service := newAuthService(t)
		user := activeUser(t, "admin123!")

		userRepo.EXPECT().GetUserByEmail(ctx, "dev@adtrackr.io").Return(user, nil)

		_, err := service.LoginUser(ctx, "dev@adtrackr.io", "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("conta desativada", func(t *testing.T) {
		userRepo, service := newAuthService(t)
		user := activeUser(t, "admin123!")
		user.Active = false

		userRepo.EXPECT().GetUserByEmail(ctx, "dev@adtrackr.io").Return(user, nil)

		_, err := service.LoginUser(ctx, "dev@adtrackr.io", "admin123!")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		userRepo, service := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail(ctx, "nobody@adtrackr.io").Return(nil, nil)

		_, err := service.LoginUser(ctx, "nobody@adtrackr.io", "qualquer")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("credenciais ausentes", func(t *testing.T) {
		_, service := newAuthService(t)

		_, err := service.LoginUser(ctx, "", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken_RejeitaSegredoErrado(t *testing.T) {
	ctx := context.Background()

	userRepo, service := newAuthService(t)
	user := activeUser(t, "admin123!")
	userRepo.EXPECT().GetUserByEmail(ctx, "dev@adtrackr.io").Return(user, nil)

	token, err := service.LoginUser(ctx, "dev@adtrackr.io", "admin123!")
	require.NoError(t, err)

	otherCfg := &config.Config{Auth: config.Auth{Secret: "outro-segredo"}}
	other := NewService(repomocks.NewMockUserRepository(gomock.NewController(t)), otherCfg)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestGetUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("hash da senha nunca sai do serviço", func(t *testing.T) {
		userRepo, service := newAuthService(t)
		user := activeUser(t, "admin123!")

		userRepo.EXPECT().GetUserByID(ctx, 1).Return(user, nil)

		profile, err := service.GetUserProfile(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, profile.PasswordHash)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		userRepo, service := newAuthService(t)

		userRepo.EXPECT().GetUserByID(ctx, 99).Return(nil, nil)

		_, err := service.GetUserProfile(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
