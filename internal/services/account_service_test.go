package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sharix/internal/models/db_models"
	"sharix/internal/models/request_models"
	"sharix/internal/repositories"
	"sharix/pkg/utils"
)

func seedActiveUser(t *testing.T, db *gorm.DB, email, password string, role db_models.Role) *db_models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &db_models.User{
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "login-test-secret")
	t.Setenv("BCRYPT_COST", "4")

	t.Run("issues a token carrying the caller's identity", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAccountService(repositories.NewUserRepository(db))
		user := seedActiveUser(t, db, "board@x.com", "Passw0rd!", db_models.RoleBoard)

		resp, err := svc.Login(ctx, request_models.LoginRequest{Email: "board@x.com", Password: "Passw0rd!"})
		require.NoError(t, err)
		require.Equal(t, string(db_models.RoleBoard), resp.Role)

		claims, err := utils.ValidateToken(resp.Token)
		require.NoError(t, err)
		require.Equal(t, user.ID.String(), claims.UserID)
		require.Equal(t, string(db_models.RoleBoard), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAccountService(repositories.NewUserRepository(db))
		seedActiveUser(t, db, "m@x.com", "Passw0rd!", db_models.RoleMember)

		_, err := svc.Login(ctx, request_models.LoginRequest{Email: "m@x.com", Password: "nope"})
		require.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAccountService(repositories.NewUserRepository(db))

		_, err := svc.Login(ctx, request_models.LoginRequest{Email: "ghost@x.com", Password: "Passw0rd!"})
		require.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("invited but not yet activated account", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAccountService(repositories.NewUserRepository(db))
		invited := &db_models.User{Email: "new@x.com", Role: db_models.RoleMember, IsActive: false}
		require.NoError(t, db.Create(invited).Error)

		_, err := svc.Login(ctx, request_models.LoginRequest{Email: "new@x.com", Password: "anything"})
		require.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
