package repository

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

// LookupRepository serves the six master-data lookup entities. Their
// contracts are identical by design, so one type-parameterized
// repository replaces six copies; the entity name only feeds logging.
type LookupRepository[T any, PT model.LookupPtr[T]] struct {
	db     *gorm.DB
	entity string
}

func NewLookupRepository[T any, PT model.LookupPtr[T]](db *gorm.DB, entity string) *LookupRepository[T, PT] {
	return &LookupRepository[T, PT]{db: db, entity: entity}
}

func (r *LookupRepository[T, PT]) List() ([]T, error) {
	logger.Debug("Listing lookup entries", map[string]interface{}{
		"entity": r.entity,
	})

	var items []T
	if err := r.db.Order("name").Find(&items).Error; err != nil {
		logger.Error("Failed to list lookup entries", err, map[string]interface{}{
			"entity": r.entity,
		})
		return nil, err
	}
	return items, nil
}

func (r *LookupRepository[T, PT]) FindByID(id uint) (PT, error) {
	var item T
	ptr := PT(&item)
	if err := r.db.First(ptr, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find lookup entry", err, map[string]interface{}{
				"entity": r.entity,
				"id":     id,
			})
		}
		return nil, err
	}
	return ptr, nil
}

func (r *LookupRepository[T, PT]) Create(item PT) error {
	logger.Debug("Creating lookup entry", map[string]interface{}{
		"entity": r.entity,
		"name":   item.Fields().Name,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create lookup entry", err, map[string]interface{}{
			"entity": r.entity,
			"name":   item.Fields().Name,
		})
		return err
	}
	return nil
}

func (r *LookupRepository[T, PT]) Update(item PT) error {
	logger.Debug("Updating lookup entry", map[string]interface{}{
		"entity": r.entity,
		"id":     item.Fields().ID,
	})

	if err := r.db.Save(item).Error; err != nil {
		logger.Error("Failed to update lookup entry", err, map[string]interface{}{
			"entity": r.entity,
			"id":     item.Fields().ID,
		})
		return err
	}
	return nil
}

// SetActive toggles the active flag. Returns false when no row with
// the id exists.
func (r *LookupRepository[T, PT]) SetActive(id uint, active bool, actorID uint) (bool, error) {
	var item T
	result := r.db.Model(PT(&item)).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     active,
		"updated_by": actorID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		logger.Error("Failed to toggle lookup entry", result.Error, map[string]interface{}{
			"entity": r.entity,
			"id":     id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
