package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_response_system/internal/auth"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах
	return logger
}

func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository, *auth.TokenManager) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	svc := NewAuthService(users, tokens, newTestLogger())
	return svc.(*authService), users, tokens
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success with default role", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)

		users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RolePublic, u.Role)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.NotEqual(t, "s3cret", u.PasswordHash)
			assert.NoError(t, auth.VerifyPassword(u.PasswordHash, "s3cret"))
			assert.NotNil(t, u.Skills)
			u.ID = uuid.New()
			return nil
		})

		user, err := svc.Signup(ctx, SignupInput{Username: "alice", Password: "s3cret", Email: " Alice@Example.com "})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)

		_, err := svc.Signup(ctx, SignupInput{Username: "bob", Password: "pw", Role: "admin"})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().Create(ctx, gomock.Any()).Return(ErrConflict)

		_, err := svc.Signup(ctx, SignupInput{Username: "alice", Password: "pw", Role: "volunteer"})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Signup(ctx, SignupInput{Username: "alice", Password: "pw"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "service: could not create user")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("correct")
	require.NoError(t, err)
	stored := &models.User{ID: uuid.New(), Username: "gov", PasswordHash: hash, Role: models.RoleGovernment}

	t.Run("success", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(t)
		users.EXPECT().GetByUsername(ctx, "gov").Return(stored, nil)

		session, err := svc.Login(ctx, "gov", "correct")

		require.NoError(t, err)
		assert.Equal(t, models.RoleGovernment, session.Role)
		assert.Equal(t, "gov", session.Username)

		identity, err := tokens.Parse(session.Token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID.String(), identity.UserID)
		assert.Equal(t, models.RoleGovernment, identity.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, ErrNotFound)

		_, err := svc.Login(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, _ := newTestAuthService(t)
		users.EXPECT().GetByUsername(ctx, "gov").Return(stored, nil)

		_, err := svc.Login(ctx, "gov", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestAuthService(t)
	id := uuid.New()
	users.EXPECT().GetByID(ctx, id).Return(&models.User{ID: id, Username: "v"}, nil)

	user, err := svc.Profile(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, "v", user.Username)

	_, err = svc.Profile(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)
}
