package repository

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	List() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	Create(product *model.Product) error
	Update(product *model.Product) error
	SetActive(id uint, active bool, actorID uint) (bool, error)
	BulkCreate(products []model.Product, batchSize int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List() ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Preload("Category").Order("name").Find(&products).Error; err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find product by ID", err, map[string]interface{}{
				"product_id": id,
			})
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product", map[string]interface{}{
		"name": product.Name,
		"code": product.Code,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}
	return nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product", map[string]interface{}{
		"product_id": product.ID,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

// BulkCreate inserts products in batches. Used by the xlsx import
// tool, not by the HTTP surface.
func (r *productRepository) BulkCreate(products []model.Product, batchSize int) error {
	if len(products) == 0 {
		return nil
	}
	logger.Info("Bulk creating products", map[string]interface{}{
		"count":      len(products),
		"batch_size": batchSize,
	})
	if err := r.db.CreateInBatches(products, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create products", err)
		return err
	}
	return nil
}

func (r *productRepository) SetActive(id uint, active bool, actorID uint) (bool, error) {
	result := r.db.Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     active,
		"updated_by": actorID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		logger.Error("Failed to toggle product", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
