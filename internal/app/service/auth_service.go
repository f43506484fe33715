package service

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
)

// Session is the issued session token plus the lifetime it was signed
// for, so the handler can set a matching cookie max-age.
type Session struct {
	Token  string
	Expiry time.Duration
}

type AuthService interface {
	Login(identifier, password string, remember bool) (*model.User, *Session, error)
	GetUserByID(id uint) (*model.User, error)
}

type authService struct {
	userRepo       repository.UserRepository
	secret         string
	defaultExpiry  time.Duration
	rememberExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	secret string,
	defaultExpiry, rememberExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		secret:         secret,
		defaultExpiry:  defaultExpiry,
		rememberExpiry: rememberExpiry,
	}
}

// Login verifies an identifier/password pair and signs a session.
// Every lookup failure collapses to ErrInvalidCredentials: a wrong
// password, an unknown identifier, and a schema mismatch against the
// wrong dialect are indistinguishable to the caller.
func (s *authService) Login(identifier, password string, remember bool) (*model.User, *Session, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"identifier": identifier,
	})

	user, err := s.userRepo.FindByIdentifier(identifier)
	if err != nil {
		logger.Warn("Login failed: lookup error treated as unknown user", map[string]interface{}{
			"identifier": identifier,
			"error":      err.Error(),
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !user.Active {
		logger.Warn("Login failed: user inactive", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"identifier": identifier,
			"user_id":    user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	expiry := s.defaultExpiry
	if remember {
		expiry = s.rememberExpiry
	}

	role := ""
	if user.Role != nil {
		role = user.Role.Name
	}

	token, err := util.GenerateSessionToken(user.ID, user.FullName, user.Email, role, s.secret, expiry)
	if err != nil {
		logger.Error("Failed to sign session token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id":  user.ID,
		"remember": remember,
		"role":     role,
	})
	return user, &Session{Token: token, Expiry: expiry}, nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
