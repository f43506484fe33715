package service

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string
	Code        string
	Description string
	CategoryID  *uint
	Price       float64
	TaxRate     float64
	Stock       int
	Unit        string
	Active      bool
}

type ProductService interface {
	List() ([]model.Product, error)
	GetByID(id uint) (*model.Product, error)
	Create(input ProductInput, actorID uint) (*model.Product, error)
	Update(id uint, input ProductInput, actorID uint) (*model.Product, error)
	SetActive(id uint, active bool, actorID uint) (bool, error)
}

type productService struct {
	repo    repository.ProductRepository
	adapter dialect.Adapter
}

func NewProductService(repo repository.ProductRepository, adapter dialect.Adapter) ProductService {
	return &productService{repo: repo, adapter: adapter}
}

func (s *productService) List() ([]model.Product, error) {
	return s.repo.List()
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(input ProductInput, actorID uint) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":     input.Name,
		"code":     input.Code,
		"actor_id": actorID,
	})

	product := &model.Product{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		TaxRate:     input.TaxRate,
		Stock:       input.Stock,
		Unit:        input.Unit,
		Active:      input.Active,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}
	return product, nil
}

func (s *productService) Update(id uint, input ProductInput, actorID uint) (*model.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	product.Name = input.Name
	product.Code = input.Code
	product.Description = input.Description
	product.CategoryID = input.CategoryID
	product.Price = input.Price
	product.TaxRate = input.TaxRate
	product.Stock = input.Stock
	product.Unit = input.Unit
	product.Active = input.Active
	product.UpdatedBy = actorID

	if err := s.repo.Update(product); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
		"actor_id":   actorID,
	})
	return product, nil
}

func (s *productService) SetActive(id uint, active bool, actorID uint) (bool, error) {
	return s.repo.SetActive(id, active, actorID)
}
