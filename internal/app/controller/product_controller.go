package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/export"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Code        string  `json:"code" binding:"required,min=1,max=50"`
	Description string  `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	Price       float64 `json:"price" binding:"gte=0"`
	TaxRate     float64 `json:"tax_rate" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Unit        string  `json:"unit"`
	Active      *bool   `json:"active"`
}

func (r *ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Price:       r.Price,
		TaxRate:     r.TaxRate,
		Stock:       r.Stock,
		Unit:        r.Unit,
		Active:      r.Active == nil || *r.Active,
	}
}

// List returns all products
// GET /api/v1/products
func (ctrl *ProductController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.List()
	if err != nil {
		log.Error("Failed to list products", err)
		apperrors.InternalError(c, "Failed to list products")
		return
	}

	apperrors.OK(c, "", gin.H{"products": products, "count": len(products)})
}

// Get returns one product
// GET /api/v1/products/:id
func (ctrl *ProductController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := ctrl.productService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apperrors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to get product", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to get product")
		return
	}

	apperrors.OK(c, "", gin.H{"product": product})
}

// Create adds a new product
// POST /api/v1/products
func (ctrl *ProductController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid product payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	product, err := ctrl.productService.Create(req.toInput(), actorID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			apperrors.Conflict(c, "name", "Product name or code already exists")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, "Failed to create product")
		return
	}

	apperrors.Created(c, "Product created", gin.H{"product": product})
}

// Update modifies an existing product
// PUT /api/v1/products/:id
func (ctrl *ProductController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid product payload", bindingFieldErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)
	product, err := ctrl.productService.Update(id, req.toInput(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			apperrors.NotFound(c, "Product not found")
		case errors.Is(err, service.ErrDuplicateName):
			apperrors.Conflict(c, "name", "Product name or code already exists")
		default:
			log.Error("Failed to update product", err, map[string]interface{}{"id": id})
			apperrors.InternalError(c, "Failed to update product")
		}
		return
	}

	apperrors.OK(c, "Product updated", gin.H{"product": product})
}

// SetActive toggles a product on or off
// PATCH /api/v1/products/:id/active
func (ctrl *ProductController) SetActive(c *gin.Context) {
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
	updated, err := ctrl.productService.SetActive(id, *req.Active, actorID)
	if err != nil {
		log.Error("Failed to toggle product", err, map[string]interface{}{"id": id})
		apperrors.InternalError(c, "Failed to update product")
		return
	}
	if !updated {
		apperrors.NotFound(c, "Product not found")
		return
	}

	apperrors.OK(c, "Product updated", gin.H{"id": id, "active": *req.Active})
}

// Export streams the product list as an XLSX workbook
// GET /api/v1/products/export
func (ctrl *ProductController) Export(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.List()
	if err != nil {
		log.Error("Failed to load products for export", err)
		apperrors.InternalError(c, "Failed to export products")
		return
	}

	workbook, err := export.ProductWorkbook(products)
	if err != nil {
		log.Error("Failed to build product workbook", err)
		apperrors.InternalError(c, "Failed to export products")
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream product workbook", err)
	}
}
