package service

import (
	"errors"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrEmptySale = errors.New("sale has no items")

type SaleItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

type SaleInput struct {
	InvoiceNo string
	PartyID   *uint
	SaleDate  time.Time // zero value means now
	Items     []SaleItemInput
}

type SaleService interface {
	List() ([]model.Sale, error)
	GetByID(id uint) (*model.Sale, error)
	Create(input SaleInput, actorID uint) (*model.Sale, error)
}

type saleService struct {
	repo    repository.SaleRepository
	adapter dialect.Adapter
}

func NewSaleService(repo repository.SaleRepository, adapter dialect.Adapter) SaleService {
	return &saleService{repo: repo, adapter: adapter}
}

func (s *saleService) List() ([]model.Sale, error) {
	return s.repo.List()
}

func (s *saleService) GetByID(id uint) (*model.Sale, error) {
	sale, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sale, nil
}

// Create records a sale. Line and grand totals are computed server
// side from quantity and unit price; the client-supplied totals are
// never trusted.
func (s *saleService) Create(input SaleInput, actorID uint) (*model.Sale, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptySale
	}

	saleDate := input.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	sale := &model.Sale{
		InvoiceNo: input.InvoiceNo,
		PartyID:   input.PartyID,
		SaleDate:  saleDate,
		Status:    model.SaleCompleted,
		CreatedBy: actorID,
	}
	for _, item := range input.Items {
		lineTotal := float64(item.Quantity) * item.UnitPrice
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
		sale.TotalAmount += lineTotal
	}

	if err := s.repo.Create(sale); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}

	logger.Info("Sale recorded", map[string]interface{}{
		"sale_id":    sale.ID,
		"invoice_no": sale.InvoiceNo,
		"total":      sale.TotalAmount,
		"actor_id":   actorID,
	})
	return sale, nil
}
