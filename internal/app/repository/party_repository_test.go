package repository

import (
	"testing"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyRepository_Save(t *testing.T) {
	t.Run("Creates the aggregate in one shot", func(t *testing.T) {
		database := setupTestDB(t)
		repo := NewPartyRepository(database)

		party := &model.Party{
			Name:   "Shree Suppliers",
			Type:   model.PartySupplier,
			Active: true,
			Address: &model.PartyAddress{
				BillingAddress: "4 Industrial Estate",
				City:           "Nashik",
			},
			Contact: &model.PartyContact{
				ContactName: "R. Mehta",
				Phone:       "9822000000",
			},
			BankDetail: &model.PartyBankDetail{
				BankName:      "SBI",
				AccountNumber: "123456",
				IFSC:          "SBIN0000001",
			},
		}
		require.NoError(t, repo.Save(party))
		require.Positive(t, party.ID)

		found, err := repo.FindByID(party.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Address)
		require.NotNil(t, found.Contact)
		require.NotNil(t, found.BankDetail)
		assert.Equal(t, "Nashik", found.Address.City)
		assert.Equal(t, "R. Mehta", found.Contact.ContactName)
		assert.Equal(t, "SBIN0000001", found.BankDetail.IFSC)
	})

	t.Run("Re-save updates side rows in place", func(t *testing.T) {
		database := setupTestDB(t)
		repo := NewPartyRepository(database)

		party := &model.Party{
			Name:    "Kiran Retail",
			Type:    model.PartyCustomer,
			Active:  true,
			Contact: &model.PartyContact{Phone: "9000000000"},
		}
		require.NoError(t, repo.Save(party))

		party.Contact = &model.PartyContact{Phone: "9111111111"}
		require.NoError(t, repo.Save(party))

		var contactCount int64
		database.Model(&model.PartyContact{}).Where("party_id = ?", party.ID).Count(&contactCount)
		assert.Equal(t, int64(1), contactCount)

		found, err := repo.FindByID(party.ID)
		require.NoError(t, err)
		assert.Equal(t, "9111111111", found.Contact.Phone)
	})

	t.Run("Omitted side rows are left untouched", func(t *testing.T) {
		database := setupTestDB(t)
		repo := NewPartyRepository(database)

		party := &model.Party{
			Name:    "Omkar Traders",
			Type:    model.PartyCustomer,
			Active:  true,
			Address: &model.PartyAddress{City: "Satara"},
		}
		require.NoError(t, repo.Save(party))

		party.Address = nil
		party.GSTNumber = "27BBBBB0000B1Z5"
		require.NoError(t, repo.Save(party))

		found, err := repo.FindByID(party.ID)
		require.NoError(t, err)
		assert.Equal(t, "27BBBBB0000B1Z5", found.GSTNumber)
		require.NotNil(t, found.Address)
		assert.Equal(t, "Satara", found.Address.City)
	})
}

func TestSaleRepository_Create(t *testing.T) {
	database := setupTestDB(t)
	saleRepo := NewSaleRepository(database)

	product := &model.Product{
		Name:   "Tea 250g",
		Code:   "TEA250",
		Price:  120,
		Stock:  50,
		Unit:   "pcs",
		Active: true,
	}
	require.NoError(t, database.Create(product).Error)

	sale := &model.Sale{
		InvoiceNo: "INV-0001",
		Status:    model.SaleCompleted,
		Items: []model.SaleItem{
			{ProductID: product.ID, Quantity: 3, UnitPrice: 120, LineTotal: 360},
		},
		TotalAmount: 360,
	}
	require.NoError(t, saleRepo.Create(sale))
	require.Positive(t, sale.ID)

	t.Run("Line items are persisted", func(t *testing.T) {
		found, err := saleRepo.FindByID(sale.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, 3, found.Items[0].Quantity)
	})

	t.Run("Stock is decremented per line", func(t *testing.T) {
		var stocked model.Product
		require.NoError(t, database.First(&stocked, product.ID).Error)
		assert.Equal(t, 47, stocked.Stock)
	})

	t.Run("Duplicate invoice number is rejected", func(t *testing.T) {
		dup := &model.Sale{
			InvoiceNo: "INV-0001",
			Status:    model.SaleCompleted,
			Items: []model.SaleItem{
				{ProductID: product.ID, Quantity: 1, UnitPrice: 120, LineTotal: 120},
			},
			TotalAmount: 120,
		}
		assert.Error(t, saleRepo.Create(dup))

		// Failed sale must not touch stock.
		var stocked model.Product
		require.NoError(t, database.First(&stocked, product.ID).Error)
		assert.Equal(t, 47, stocked.Stock)
	})
}
