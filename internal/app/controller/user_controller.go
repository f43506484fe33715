package controller

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	RoleID   *uint  `json:"role_id"`
	Active   *bool  `json:"active"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"` // empty keeps the current password
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	RoleID   *uint  `json:"role_id"`
	Active   *bool  `json:"active"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// userPayload is the user shape returned to clients. The password hash
// is already excluded by the model's json tag; this keeps the role
// name flat for list screens.
func userPayload(user *model.User) gin.H {
	payload := gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
		"phone":     user.Phone,
		"role_id":   user.RoleID,
		"active":    user.Active,
	}
	if user.Role != nil {
		payload["role"] = user.Role.Name
	}
	return payload
}

// List returns all users
// GET /api/v1/users
func (ctrl *UserController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	users, err := ctrl.userService.List()
	if err != nil {
		log.Error("Failed to list users", err)
		apperrors.InternalError(c, "Failed to list users")
		return
	}

	payload := make([]gin.H, 0, len(users))
	for i := range users {
		payload = append(payload, userPayload(&users[i]))
	}
	apperrors.OK(c, "", gin.H{"users": payload, "count": len(payload)})
}

// Get returns one user
// GET /api/v1/users/:id
func (ctrl *UserController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := ctrl.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, "User not found")
			return
		}
		log.Error("Failed to get user", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to get user")
		return
	}

	apperrors.OK(c, "", gin.H{"user": userPayload(user)})
}

// Create registers a new user
// POST /api/v1/users
func (ctrl *UserController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid user payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	user, err := ctrl.userService.Create(service.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Active:   req.Active == nil || *req.Active,
	}, actorID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			apperrors.Conflict(c, "username", "Username or email already in use")
			return
		}
		log.Error("Failed to create user", err, map[string]interface{}{
			"username": req.Username,
		})
		apperrors.InternalError(c, "Failed to create user")
		return
	}

	apperrors.Created(c, "User created", gin.H{"user": userPayload(user)})
}

// Update modifies an existing user
// PUT /api/v1/users/:id
func (ctrl *UserController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid user payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	user, err := ctrl.userService.Update(id, service.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Active:   req.Active == nil || *req.Active,
	}, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			apperrors.NotFound(c, "User not found")
		case errors.Is(err, service.ErrDuplicateName):
			apperrors.Conflict(c, "username", "Username or email already in use")
		default:
			log.Error("Failed to update user", err, map[string]interface{}{"id": id})
			apperrors.InternalError(c, "Failed to update user")
		}
		return
	}

	apperrors.OK(c, "User updated", gin.H{"user": userPayload(user)})
}

// SetActive toggles a user on or off
// PATCH /api/v1/users/:id/active
func (ctrl *UserController) SetActive(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	updated, err := ctrl.userService.SetActive(id, *req.Active, actorID)
	if err != nil {
		log.Error("Failed to toggle user", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to update user")
		return
	}
	if !updated {
		apperrors.NotFound(c, "User not found")
		return
	}

	apperrors.OK(c, "User updated", gin.H{"id": id, "active": *req.Active})
}
