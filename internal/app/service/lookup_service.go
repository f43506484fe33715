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

// LookupItem is the transport shape of one lookup entry, shared by all
// six entities.
type LookupItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LookupInput is the accepted form payload for create and update.
type LookupInput struct {
	Name   string
	Active bool
}

// LookupService is the uniform contract of the six lookup entities.
// Controllers depend on this interface, not on the generic
// implementation.
type LookupService interface {
	List() ([]LookupItem, error)
	GetByID(id uint) (*LookupItem, error)
	Create(input LookupInput, actorID uint) (*LookupItem, error)
	Update(id uint, input LookupInput, actorID uint) (*LookupItem, error)
	SetActive(id uint, active bool, actorID uint) (bool, error)
}

type lookupService[T any, PT model.LookupPtr[T]] struct {
	repo    *repository.LookupRepository[T, PT]
	adapter dialect.Adapter
	entity  string
}

func NewLookupService[T any, PT model.LookupPtr[T]](
	repo *repository.LookupRepository[T, PT],
	adapter dialect.Adapter,
	entity string,
) LookupService {
	return &lookupService[T, PT]{repo: repo, adapter: adapter, entity: entity}
}

func toItem(f *model.LookupFields) *LookupItem {
	return &LookupItem{
		ID:        f.ID,
		Name:      f.Name,
		Active:    f.Active,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (s *lookupService[T, PT]) List() ([]LookupItem, error) {
	records, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	items := make([]LookupItem, 0, len(records))
	for i := range records {
		items = append(items, *toItem(PT(&records[i]).Fields()))
	}
	return items, nil
}

func (s *lookupService[T, PT]) GetByID(id uint) (*LookupItem, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toItem(record.Fields()), nil
}

func (s *lookupService[T, PT]) Create(input LookupInput, actorID uint) (*LookupItem, error) {
	logger.Info("Creating lookup entry", map[string]interface{}{
		"entity":   s.entity,
		"name":     input.Name,
		"actor_id": actorID,
	})

	var record T
	ptr := PT(&record)
	fields := ptr.Fields()
	fields.Name = input.Name
	fields.Active = input.Active
	fields.CreatedBy = actorID
	fields.UpdatedBy = actorID

	if err := s.repo.Create(ptr); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}
	return toItem(fields), nil
}

func (s *lookupService[T, PT]) Update(id uint, input LookupInput, actorID uint) (*LookupItem, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := record.Fields()
	fields.Name = input.Name
	fields.Active = input.Active
	fields.UpdatedBy = actorID

	if err := s.repo.Update(record); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}

	logger.Info("Lookup entry updated", map[string]interface{}{
		"entity":   s.entity,
		"id":       id,
		"actor_id": actorID,
	})
	return toItem(fields), nil
}

func (s *lookupService[T, PT]) SetActive(id uint, active bool, actorID uint) (bool, error) {
	found, err := s.repo.SetActive(id, active, actorID)
	if err != nil {
		return false, err
	}
	if found {
		logger.Info("Lookup entry toggled", map[string]interface{}{
			"entity":   s.entity,
			"id":       id,
			"active":   active,
			"actor_id": actorID,
		})
	}
	return found, nil
}
