package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/disaster_response_system/internal/auth"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// SignupInput - данные регистрации нового пользователя
type SignupInput struct {
	Username          string
	Password          string
	Email             string
	Role              string
	Phone             string
	EmergencyContacts []string
	Locality          string
	Skills            []string
}

// AuthService определяет контракт регистрации и выдачи сессий
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	users  UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewAuthService(users UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Signup регистрирует пользователя. Пароль сохраняется только в виде хэша.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Signup",
		"username": input.Username,
	})
	log.Info("Attempting to register a new user")

	role, err := models.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user := &models.User{
		Username:          strings.TrimSpace(input.Username),
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:      hash,
		Role:              role,
		Phone:             input.Phone,
		EmergencyContacts: nonNil(input.EmergencyContacts),
		Locality:          input.Locality,
		Skills:            nonNil(input.Skills),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrConflict) {
			log.WithError(err).Warn("Username or email already taken")
			return nil, fmt.Errorf("%w: username or email is already in use", ErrConflict)
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login проверяет пароль и выпускает токен сессии
func (s *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown user")
			return nil, fmt.Errorf("service: user %q: %w", username, ErrNotFound)
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn("Login attempt with incorrect password")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to verify password")
		return nil, fmt.Errorf("service: could not verify password: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID.String(), user.Role)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return &models.Session{
		Token:     token,
		Role:      user.Role,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}

// Profile возвращает учетную запись вызывающего
func (s *authService) Profile(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// callerID извлекает UUID пользователя из личности вызывающего
func callerID(caller models.Identity) (uuid.UUID, error) {
	id, err := uuid.Parse(caller.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid caller identity", ErrValidation)
	}
	return id, nil
}
