package service

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
	"gorm.io/gorm"
)

type UserInput struct {
	Username string
	Email    string
	Password string // empty on update keeps the current hash
	FullName string
	Phone    string
	RoleID   *uint
	Active   bool
}

type UserService interface {
	List() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	Create(input UserInput, actorID uint) (*model.User, error)
	Update(id uint, input UserInput, actorID uint) (*model.User, error)
	SetActive(id uint, active bool, actorID uint) (bool, error)
}

type userService struct {
	repo    repository.UserRepository
	adapter dialect.Adapter
}

func NewUserService(repo repository.UserRepository, adapter dialect.Adapter) UserService {
	return &userService{repo: repo, adapter: adapter}
}

func (s *userService) List() ([]model.User, error) {
	return s.repo.List()
}

func (s *userService) GetByID(id uint) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(input UserInput, actorID uint) (*model.User, error) {
	logger.Info("Creating user", map[string]interface{}{
		"username": input.Username,
		"actor_id": actorID,
	})

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return nil, err
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		RoleID:       input.RoleID,
		Active:       input.Active,
		CreatedBy:    actorID,
		UpdatedBy:    actorID,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}
	return user, nil
}

func (s *userService) Update(id uint, input UserInput, actorID uint) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email
	user.FullName = input.FullName
	user.Phone = input.Phone
	user.RoleID = input.RoleID
	user.Active = input.Active
	user.UpdatedBy = actorID

	if input.Password != "" {
		hash, err := util.HashPassword(input.Password)
		if err != nil {
			logger.Error("Failed to hash password", err)
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}

	logger.Info("User updated", map[string]interface{}{
		"user_id":  user.ID,
		"actor_id": actorID,
	})
	return user, nil
}

func (s *userService) SetActive(id uint, active bool, actorID uint) (bool, error) {
	return s.repo.SetActive(id, active, actorID)
}
