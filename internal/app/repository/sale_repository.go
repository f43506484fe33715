package repository

import (
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

type SaleRepository interface {
	List() ([]model.Sale, error)
	FindByID(id uint) (*model.Sale, error)
	Create(sale *model.Sale) error
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) List() ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.db.Preload("Items").Order("sale_date DESC").Find(&sales).Error; err != nil {
		logger.Error("Failed to list sales", err)
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) FindByID(id uint) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Items").First(&sale, id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find sale by ID", err, map[string]interface{}{
				"sale_id": id,
			})
		}
		return nil, err
	}
	return &sale, nil
}

// Create writes the sale and its line items in one transaction and
// decrements product stock per line.
func (r *saleRepository) Create(sale *model.Sale) error {
	logger.Debug("Creating sale", map[string]interface{}{
		"invoice_no": sale.InvoiceNo,
		"item_count": len(sale.Items),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for _, item := range sale.Items {
			err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create sale", err, map[string]interface{}{
			"invoice_no": sale.InvoiceNo,
		})
	}
	return err
}
