package repository

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	List() ([]model.User, error)
	FindByID(id uint) (*model.User, error)
	FindByIdentifier(identifier string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	SetActive(id uint, active bool, actorID uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Preload("Role").Order("username").Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Role").First(&user, id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find user by ID", err, map[string]interface{}{
				"user_id": id,
			})
		}
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier looks a user up by username or email, the two
// identifiers accepted at login.
func (r *userRepository) FindByIdentifier(identifier string) (*model.User, error) {
	logger.Debug("Finding user by identifier", map[string]interface{}{
		"identifier": identifier,
	})

	var user model.User
	err := r.db.Preload("Role").
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find user by identifier", err, map[string]interface{}{
				"identifier": identifier,
			})
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user", map[string]interface{}{
		"username": user.Username,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user", err, map[string]interface{}{
			"username": user.Username,
		})
		return err
	}
	return nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user", map[string]interface{}{
		"user_id": user.ID,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

func (r *userRepository) SetActive(id uint, active bool, actorID uint) (bool, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     active,
		"updated_by": actorID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		logger.Error("Failed to toggle user", result.Error, map[string]interface{}{
			"user_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
