package service

import (
	"testing"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/db"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-for-auth"

func setupAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	svc := NewAuthService(
		repository.NewUserRepository(database),
		testSecret,
		12*time.Hour,
		336*time.Hour,
	)
	return svc, database
}

func seedUser(t *testing.T, database *gorm.DB, username, password string, roleName string, active bool) *model.User {
	t.Helper()

	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	user := &model.User{
		Username:     username,
		Email:        username + "@radhira.example",
		PasswordHash: hash,
		FullName:     "Test User",
		Active:       active,
	}
	if roleName != "" {
		role := &model.Role{}
		role.Name = roleName
		role.Active = true
		require.NoError(t, database.Create(role).Error)
		user.RoleID = &role.ID
	}
	require.NoError(t, database.Create(user).Error)
	return user
}

func TestAuthService_Login(t *testing.T) {
	t.Run("Username login succeeds", func(t *testing.T) {
		svc, database := setupAuthService(t)
		seedUser(t, database, "asha", "secret123", "admin", true)

		user, session, err := svc.Login("asha", "secret123", false)
		require.NoError(t, err)
		assert.Equal(t, "asha", user.Username)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, 12*time.Hour, session.Expiry)
	})

	t.Run("Email works as identifier too", func(t *testing.T) {
		svc, database := setupAuthService(t)
		seedUser(t, database, "asha", "secret123", "", true)

		user, _, err := svc.Login("asha@radhira.example", "secret123", false)
		require.NoError(t, err)
		assert.Equal(t, "asha", user.Username)
	})

	t.Run("Remember-me extends the session", func(t *testing.T) {
		svc, database := setupAuthService(t)
		seedUser(t, database, "asha", "secret123", "", true)

		_, session, err := svc.Login("asha", "secret123", true)
		require.NoError(t, err)
		assert.Equal(t, 336*time.Hour, session.Expiry)
	})

	t.Run("Role claim is carried in the token", func(t *testing.T) {
		svc, database := setupAuthService(t)
		seedUser(t, database, "asha", "secret123", "manager", true)

		_, session, err := svc.Login("asha", "secret123", false)
		require.NoError(t, err)

		claims, err := util.ValidateSessionToken(session.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("Unknown user and wrong password are indistinguishable", func(t *testing.T) {
		svc, database := setupAuthService(t)
		seedUser(t, database, "asha", "secret123", "", true)

		_, _, errUnknown := svc.Login("nobody", "secret123", false)
		_, _, errWrongPass := svc.Login("asha", "wrong", false)

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPass)
	})

	t.Run("Inactive user cannot log in", func(t *testing.T) {
		svc, database := setupAuthService(t)
		seedUser(t, database, "asha", "secret123", "", false)

		_, _, err := svc.Login("asha", "secret123", false)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_GetUserByID(t *testing.T) {
	svc, database := setupAuthService(t)
	seeded := seedUser(t, database, "asha", "secret123", "admin", true)

	user, err := svc.GetUserByID(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", user.Username)
	require.NotNil(t, user.Role)
	assert.Equal(t, "admin", user.Role.Name)

	_, err = svc.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
