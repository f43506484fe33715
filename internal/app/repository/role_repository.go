package repository

import (
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

// RoleRepository extends the generic lookup contract with hard delete.
// Roles are the only lookup entity that supports it, guarded by an
// in-use check against user assignments.
type RoleRepository struct {
	*LookupRepository[model.Role, *model.Role]
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		LookupRepository: NewLookupRepository[model.Role, *model.Role](db, "role"),
		db:               db,
	}
}

// CountUsers returns the number of users currently assigned the role.
func (r *RoleRepository) CountUsers(roleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("role_id = ?", roleID).Count(&count).Error
	if err != nil {
		logger.Error("Failed to count role assignments", err, map[string]interface{}{
			"role_id": roleID,
		})
		return 0, err
	}
	return count, nil
}

// Delete removes the role row. Returns false when no row existed.
func (r *RoleRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Role{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete role", result.Error, map[string]interface{}{
			"role_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
