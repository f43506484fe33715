package service

import (
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
)

// RoleService adds hard delete to the lookup contract. Deleting fails
// with ErrRoleInUse while any user still holds the role.
type RoleService interface {
	LookupService
	Delete(id uint) error
}

type roleService struct {
	LookupService
	repo *repository.RoleRepository
}

func NewRoleService(repo *repository.RoleRepository, adapter dialect.Adapter) RoleService {
	return &roleService{
		LookupService: NewLookupService[model.Role, *model.Role](repo.LookupRepository, adapter, "role"),
		repo:          repo,
	}
}

func (s *roleService) Delete(id uint) error {
	assigned, err := s.repo.CountUsers(id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		logger.Warn("Role delete refused: still assigned", map[string]interface{}{
			"role_id":        id,
			"assigned_users": assigned,
		})
		return ErrRoleInUse
	}

	found, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	logger.Info("Role deleted", map[string]interface{}{
		"role_id": id,
	})
	return nil
}
