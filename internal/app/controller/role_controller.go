package controller

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RoleController is the lookup controller plus hard delete, which
// only roles support.
type RoleController struct {
	*LookupController
	roleService service.RoleService
}

func NewRoleController(roleService service.RoleService) *RoleController {
	return &RoleController{
		LookupController: NewLookupController(roleService, "Role"),
		roleService:      roleService,
	}
}

// Delete removes a role that no user is assigned to
// DELETE /api/v1/roles/:id
func (ctrl *RoleController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.roleService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrRoleInUse):
			apperrors.Conflict(c, "role", "Role is assigned to one or more users")
		case errors.Is(err, service.ErrNotFound):
			apperrors.NotFound(c, "Role not found")
		default:
			log.Error("Failed to delete role", err, map[string]interface{}{"id": id})
			apperrors.InternalError(c, "Failed to delete role")
		}
		return
	}

	apperrors.OK(c, "Role deleted", gin.H{"id": id})
}
