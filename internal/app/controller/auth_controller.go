package controller

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/config"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	session     config.SessionConfig
}

func NewAuthController(authService service.AuthService, session config.SessionConfig) *AuthController {
	return &AuthController{
		authService: authService,
		session:     session,
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Remember   bool   `json:"remember"`
}

// Login handles session login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Invalid login request", bindingFieldErrors(err))
		return
	}

	user, session, err := ctrl.authService.Login(req.Identifier, req.Password, req.Remember)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Login rejected", map[string]interface{}{
				"identifier": req.Identifier,
			})
			apperrors.Unauthorized(c, "Invalid username or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"identifier": req.Identifier,
		})
		apperrors.InternalError(c, "Login failed")
		return
	}

	// Session travels in an HTTP-only cookie whose max-age matches the
	// token lifetime.
	c.SetCookie(
		ctrl.session.CookieName,
		session.Token,
		int(session.Expiry.Seconds()),
		"/",
		"",
		ctrl.session.CookieSecure,
		true,
	)

	log.Info("User logged in", map[string]interface{}{
		"user_id":  user.ID,
		"remember": req.Remember,
	})

	apperrors.OK(c, "Login successful", gin.H{
		"user": userPayload(user),
	})
}

// Logout clears the session cookie
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(ctrl.session.CookieName, "", -1, "/", "", ctrl.session.CookieSecure, true)
	apperrors.OK(c, "Logged out", nil)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.Unauthorized(c, "Session user no longer exists")
			return
		}
		log.Error("Failed to load session user", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Failed to load user")
		return
	}

	apperrors.OK(c, "", gin.H{
		"user": userPayload(user),
	})
}
