package repository

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

type PartyRepository interface {
	List() ([]model.Party, error)
	FindByID(id uint) (*model.Party, error)
	Save(party *model.Party) error
	SetActive(id uint, active bool, actorID uint) (bool, error)
}

type partyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) List() ([]model.Party, error) {
	var parties []model.Party
	err := r.db.Preload("Address").Preload("Contact").Preload("BankDetail").
		Order("name").Find(&parties).Error
	if err != nil {
		logger.Error("Failed to list parties", err)
		return nil, err
	}
	return parties, nil
}

func (r *partyRepository) FindByID(id uint) (*model.Party, error) {
	var party model.Party
	err := r.db.Preload("Address").Preload("Contact").Preload("BankDetail").
		First(&party, id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find party by ID", err, map[string]interface{}{
				"party_id": id,
			})
		}
		return nil, err
	}
	return &party, nil
}

// Save writes the party together with its address, contact, and bank
// detail rows in one transaction. Side rows are upserted keyed on the
// party id; any failure rolls the whole aggregate back.
func (r *partyRepository) Save(party *model.Party) error {
	logger.Debug("Saving party aggregate", map[string]interface{}{
		"party_id": party.ID,
		"name":     party.Name,
	})

	address := party.Address
	contact := party.Contact
	bankDetail := party.BankDetail
	party.Address, party.Contact, party.BankDetail = nil, nil, nil

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(party).Error; err != nil {
			return err
		}

		if address != nil {
			address.PartyID = party.ID
			if err := upsertByPartyID(tx, &model.PartyAddress{}, party.ID, address); err != nil {
				return err
			}
		}
		if contact != nil {
			contact.PartyID = party.ID
			if err := upsertByPartyID(tx, &model.PartyContact{}, party.ID, contact); err != nil {
				return err
			}
		}
		if bankDetail != nil {
			bankDetail.PartyID = party.ID
			if err := upsertByPartyID(tx, &model.PartyBankDetail{}, party.ID, bankDetail); err != nil {
				return err
			}
		}
		return nil
	})

	party.Address, party.Contact, party.BankDetail = address, contact, bankDetail
	if err != nil {
		logger.Error("Failed to save party aggregate", err, map[string]interface{}{
			"party_id": party.ID,
		})
	}
	return err
}

// upsertByPartyID inserts the side row when none exists for the party
// yet, else carries the existing primary key over and updates in
// place.
func upsertByPartyID(tx *gorm.DB, probe interface{}, partyID uint, row interface{}) error {
	var existingID uint
	result := tx.Model(probe).Select("id").Where("party_id = ?", partyID).Limit(1).Scan(&existingID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		switch v := row.(type) {
		case *model.PartyAddress:
			v.ID = existingID
		case *model.PartyContact:
			v.ID = existingID
		case *model.PartyBankDetail:
			v.ID = existingID
		}
	}
	return tx.Save(row).Error
}

func (r *partyRepository) SetActive(id uint, active bool, actorID uint) (bool, error) {
	result := r.db.Model(&model.Party{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     active,
		"updated_by": actorID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		logger.Error("Failed to toggle party", result.Error, map[string]interface{}{
			"party_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
