package controller

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type PartyController struct {
	partyService service.PartyService
}

func NewPartyController(partyService service.PartyService) *PartyController {
	return &PartyController{partyService: partyService}
}

type PartyAddressRequest struct {
	BillingAddress string `json:"billing_address"`
	City           string `json:"city"`
	PostalCode     string `json:"postal_code"`
	StateID        *uint  `json:"state_id"`
}

type PartyContactRequest struct {
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

type PartyBankDetailRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
}

type PartyRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Type      string `json:"type" binding:"required,oneof=customer supplier"`
	GSTNumber string `json:"gst_number"`
	PANNumber string `json:"pan_number"`
	Active    *bool  `json:"active"`

	Address    *PartyAddressRequest    `json:"address"`
	Contact    *PartyContactRequest    `json:"contact"`
	BankDetail *PartyBankDetailRequest `json:"bank_detail"`
}

func (r *PartyRequest) toInput() service.PartyInput {
	input := service.PartyInput{
		Name:      r.Name,
		Type:      model.PartyType(r.Type),
		GSTNumber: r.GSTNumber,
		PANNumber: r.PANNumber,
		Active:    r.Active == nil || *r.Active,
	}
	if r.Address != nil {
		input.Address = &model.PartyAddress{
			BillingAddress: r.Address.BillingAddress,
			City:           r.Address.City,
			PostalCode:     r.Address.PostalCode,
			StateID:        r.Address.StateID,
		}
	}
	if r.Contact != nil {
		input.Contact = &model.PartyContact{
			ContactName: r.Contact.ContactName,
			Phone:       r.Contact.Phone,
			Email:       r.Contact.Email,
		}
	}
	if r.BankDetail != nil {
		input.BankDetail = &model.PartyBankDetail{
			BankName:      r.BankDetail.BankName,
			AccountNumber: r.BankDetail.AccountNumber,
			IFSC:          r.BankDetail.IFSC,
		}
	}
	return input
}

// List returns all parties with their side records
// GET /api/v1/parties
func (ctrl *PartyController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	parties, err := ctrl.partyService.List()
	if err != nil {
		log.Error("Failed to list parties", err)
		apperrors.InternalError(c, "Failed to list parties")
		return
	}

	apperrors.OK(c, "", gin.H{"parties": parties, "count": len(parties)})
}

// Get returns one party
// GET /api/v1/parties/:id
func (ctrl *PartyController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	party, err := ctrl.partyService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, "Party not found")
			return
		}
		log.Error("Failed to get party", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to get party")
		return
	}

	apperrors.OK(c, "", gin.H{"party": party})
}

// Create adds a new party
// POST /api/v1/parties
func (ctrl *PartyController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid party payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	party, err := ctrl.partyService.Create(req.toInput(), actorID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			apperrors.Conflict(c, "name", "Party with this name already exists")
			return
		}
		log.Error("Failed to create party", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, "Failed to create party")
		return
	}

	apperrors.Created(c, "Party created", gin.H{"party": party})
}

// Update modifies an existing party
// PUT /api/v1/parties/:id
func (ctrl *PartyController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid party payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	party, err := ctrl.partyService.Update(id, req.toInput(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			apperrors.NotFound(c, "Party not found")
		case errors.Is(err, service.ErrDuplicateName):
			apperrors.Conflict(c, "name", "Party with this name already exists")
		default:
			log.Error("Failed to update party", err, map[string]interface{}{"id": id})
			apperrors.InternalError(c, "Failed to update party")
		}
		return
	}

	apperrors.OK(c, "Party updated", gin.H{"party": party})
}

// SetActive toggles a party on or off
// PATCH /api/v1/parties/:id/active
func (ctrl *PartyController) SetActive(c *gin.Context) {
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
	updated, err := ctrl.partyService.SetActive(id, *req.Active, actorID)
	if err != nil {
		log.Error("Failed to toggle party", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to update party")
		return
	}
	if !updated {
		apperrors.NotFound(c, "Party not found")
		return
	}

	apperrors.OK(c, "Party updated", gin.H{"id": id, "active": *req.Active})
}
