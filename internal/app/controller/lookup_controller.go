package controller

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LookupController serves one named lookup entity. The same handler
// set is mounted once per entity (business types, industry types,
// registration types, states, categories, roles).
type LookupController struct {
	svc    service.LookupService
	entity string // human label used in messages, e.g. "State"
}

func NewLookupController(svc service.LookupService, entity string) *LookupController {
	return &LookupController{svc: svc, entity: entity}
}

type LookupRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=150"`
	Active *bool  `json:"active"`
}

// List returns every entry ordered by name
// GET /api/v1/<entity>
func (ctrl *LookupController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items, err := ctrl.svc.List()
	if err != nil {
		log.Error("Failed to list "+ctrl.entity, err)
		apperrors.InternalError(c, "Failed to list "+ctrl.entity)
		return
	}

	apperrors.OK(c, "", gin.H{"items": items, "count": len(items)})
}

// Get returns one entry
// GET /api/v1/<entity>/:id
func (ctrl *LookupController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := ctrl.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, ctrl.entity+" not found")
			return
		}
		log.Error("Failed to get "+ctrl.entity, err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to get "+ctrl.entity)
		return
	}

	apperrors.OK(c, "", gin.H{"item": item})
}

// Create adds a new entry
// POST /api/v1/<entity>
func (ctrl *LookupController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	item, err := ctrl.svc.Create(service.LookupInput{
		Name:   req.Name,
		Active: req.Active == nil || *req.Active,
	}, actorID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			apperrors.Conflict(c, "name", ctrl.entity+" with this name already exists")
			return
		}
		log.Error("Failed to create "+ctrl.entity, err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, "Failed to create "+ctrl.entity)
		return
	}

	apperrors.Created(c, ctrl.entity+" created", gin.H{"item": item})
}

// Update renames or toggles an entry
// PUT /api/v1/<entity>/:id
func (ctrl *LookupController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	item, err := ctrl.svc.Update(id, service.LookupInput{
		Name:   req.Name,
		Active: req.Active == nil || *req.Active,
	}, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			apperrors.NotFound(c, ctrl.entity+" not found")
		case errors.Is(err, service.ErrDuplicateName):
			apperrors.Conflict(c, "name", ctrl.entity+" with this name already exists")
		default:
			log.Error("Failed to update "+ctrl.entity, err, map[string]interface{}{"id": id})
			apperrors.InternalError(c, "Failed to update "+ctrl.entity)
		}
		return
	}

	apperrors.OK(c, ctrl.entity+" updated", gin.H{"item": item})
}

// SetActive toggles an entry without renaming it
// PATCH /api/v1/<entity>/:id/active
func (ctrl *LookupController) SetActive(c *gin.Context) {
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
	updated, err := ctrl.svc.SetActive(id, *req.Active, actorID)
	if err != nil {
		log.Error("Failed to toggle "+ctrl.entity, err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to update "+ctrl.entity)
		return
	}
	if !updated {
		apperrors.NotFound(c, ctrl.entity+" not found")
		return
	}

	apperrors.OK(c, ctrl.entity+" updated", gin.H{"id": id, "active": *req.Active})
}
