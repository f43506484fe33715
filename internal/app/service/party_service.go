package service

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

type PartyInput struct {
	Name      string
	Type      model.PartyType
	GSTNumber string
	PANNumber string
	Active    bool

	Address    *model.PartyAddress
	Contact    *model.PartyContact
	BankDetail *model.PartyBankDetail
}

type PartyService interface {
	List() ([]model.Party, error)
	GetByID(id uint) (*model.Party, error)
	Create(input PartyInput, actorID uint) (*model.Party, error)
	Update(id uint, input PartyInput, actorID uint) (*model.Party, error)
	SetActive(id uint, active bool, actorID uint) (bool, error)
}

type partyService struct {
	repo    repository.PartyRepository
	adapter dialect.Adapter
}

func NewPartyService(repo repository.PartyRepository, adapter dialect.Adapter) PartyService {
	return &partyService{repo: repo, adapter: adapter}
}

func (s *partyService) List() ([]model.Party, error) {
	return s.repo.List()
}

func (s *partyService) GetByID(id uint) (*model.Party, error) {
	party, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) Create(input PartyInput, actorID uint) (*model.Party, error) {
	logger.Info("Creating party", map[string]interface{}{
		"name":     input.Name,
		"type":     input.Type,
		"actor_id": actorID,
	})

	party := &model.Party{
		Name:       input.Name,
		Type:       input.Type,
		GSTNumber:  input.GSTNumber,
		PANNumber:  input.PANNumber,
		Active:     input.Active,
		CreatedBy:  actorID,
		UpdatedBy:  actorID,
		Address:    input.Address,
		Contact:    input.Contact,
		BankDetail: input.BankDetail,
	}
	if err := s.repo.Save(party); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}
	return party, nil
}

func (s *partyService) Update(id uint, input PartyInput, actorID uint) (*model.Party, error) {
	party, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	party.Name = input.Name
	party.Type = input.Type
	party.GSTNumber = input.GSTNumber
	party.PANNumber = input.PANNumber
	party.Active = input.Active
	party.UpdatedBy = actorID
	party.Address = input.Address
	party.Contact = input.Contact
	party.BankDetail = input.BankDetail

	if err := s.repo.Save(party); err != nil {
		return nil, classifyWriteError(s.adapter, err)
	}

	logger.Info("Party updated", map[string]interface{}{
		"party_id": party.ID,
		"actor_id": actorID,
	})
	return party, nil
}

func (s *partyService) SetActive(id uint, active bool, actorID uint) (bool, error) {
	return s.repo.SetActive(id, active, actorID)
}
