package controller

import (
	"errors"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SaleController struct {
	saleService service.SaleService
}

func NewSaleController(saleService service.SaleService) *SaleController {
	return &SaleController{saleService: saleService}
}

type SaleItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

type SaleRequest struct {
	InvoiceNo string            `json:"invoice_no" binding:"required"`
	PartyID   *uint             `json:"party_id"`
	SaleDate  *time.Time        `json:"sale_date"`
	Items     []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// List returns all sales with their line items
// GET /api/v1/sales
func (ctrl *SaleController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sales, err := ctrl.saleService.List()
	if err != nil {
		log.Error("Failed to list sales", err)
		apperrors.InternalError(c, "Failed to list sales")
		return
	}

	apperrors.OK(c, "", gin.H{"sales": sales, "count": len(sales)})
}

// Get returns one sale
// GET /api/v1/sales/:id
func (ctrl *SaleController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	sale, err := ctrl.saleService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, "Sale not found")
			return
		}
		log.Error("Failed to get sale", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to get sale")
		return
	}

	apperrors.OK(c, "", gin.H{"sale": sale})
}

// Create records a completed sale and decrements product stock
// POST /api/v1/sales
func (ctrl *SaleController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid sale payload", bindingFieldErrors(err))
		return
	}

	input := service.SaleInput{
		InvoiceNo: req.InvoiceNo,
		PartyID:   req.PartyID,
		Items:     make([]service.SaleItemInput, 0, len(req.Items)),
	}
	if req.SaleDate != nil {
		input.SaleDate = *req.SaleDate
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	actorID, _ := middleware.GetUserID(c)
	sale, err := ctrl.saleService.Create(input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySale):
			apperrors.BadRequest(c, "Sale must have at least one item", nil)
		case errors.Is(err, service.ErrDuplicateName):
			apperrors.Conflict(c, "invoice_no", "Invoice number already exists")
		default:
			log.Error("Failed to create sale", err, map[string]interface{}{
				"invoice_no": req.InvoiceNo,
			})
			apperrors.InternalError(c, "Failed to create sale")
		}
		return
	}

	apperrors.Created(c, "Sale recorded", gin.H{"sale": sale})
}
