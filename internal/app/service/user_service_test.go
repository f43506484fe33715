package service

import (
	"testing"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) UserService {
	t.Helper()
	database, adapter := setupTestDB(t)
	return NewUserService(repository.NewUserRepository(database), adapter)
}

func TestUserService_Create(t *testing.T) {
	svc := setupUserService(t)

	t.Run("Password is stored hashed", func(t *testing.T) {
		user, err := svc.Create(UserInput{
			Username: "asha",
			Email:    "asha@radhira.example",
			Password: "secret123",
			FullName: "Asha K",
			Active:   true,
		}, 1)
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, util.VerifyPassword(user.PasswordHash, "secret123"))
	})

	t.Run("Duplicate username conflicts", func(t *testing.T) {
		_, err := svc.Create(UserInput{
			Username: "asha",
			Email:    "other@radhira.example",
			Password: "secret123",
			FullName: "Other",
			Active:   true,
		}, 1)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestUserService_Update(t *testing.T) {
	svc := setupUserService(t)

	created, err := svc.Create(UserInput{
		Username: "asha",
		Email:    "asha@radhira.example",
		Password: "secret123",
		FullName: "Asha K",
		Active:   true,
	}, 1)
	require.NoError(t, err)

	t.Run("Empty password keeps the current hash", func(t *testing.T) {
		updated, err := svc.Update(created.ID, UserInput{
			Username: "asha",
			Email:    "asha@radhira.example",
			Password: "",
			FullName: "Asha Kulkarni",
			Active:   true,
		}, 2)
		require.NoError(t, err)
		assert.Equal(t, "Asha Kulkarni", updated.FullName)
		assert.True(t, util.VerifyPassword(updated.PasswordHash, "secret123"))
	})

	t.Run("New password replaces the hash", func(t *testing.T) {
		updated, err := svc.Update(created.ID, UserInput{
			Username: "asha",
			Email:    "asha@radhira.example",
			Password: "newpass456",
			FullName: "Asha Kulkarni",
			Active:   true,
		}, 2)
		require.NoError(t, err)
		assert.True(t, util.VerifyPassword(updated.PasswordHash, "newpass456"))
		assert.False(t, util.VerifyPassword(updated.PasswordHash, "secret123"))
	})

	t.Run("Unknown id maps to ErrNotFound", func(t *testing.T) {
		_, err := svc.Update(9999, UserInput{Username: "x", Email: "x@x.example"}, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSaleService_Create(t *testing.T) {
	database, adapter := setupTestDB(t)
	svc := NewSaleService(repository.NewSaleRepository(database), adapter)

	t.Run("Empty sale is rejected", func(t *testing.T) {
		_, err := svc.Create(SaleInput{InvoiceNo: "INV-1"}, 1)
		assert.ErrorIs(t, err, ErrEmptySale)
	})

	t.Run("Totals are computed server side", func(t *testing.T) {
		sale, err := svc.Create(SaleInput{
			InvoiceNo: "INV-2",
			Items: []SaleItemInput{
				{ProductID: 1, Quantity: 3, UnitPrice: 120},
				{ProductID: 2, Quantity: 1, UnitPrice: 49.5},
			},
		}, 1)
		require.NoError(t, err)
		assert.Equal(t, 409.5, sale.TotalAmount)
		require.Len(t, sale.Items, 2)
		assert.Equal(t, 360.0, sale.Items[0].LineTotal)
		assert.False(t, sale.SaleDate.IsZero())
	})

	t.Run("Duplicate invoice maps to ErrDuplicateName", func(t *testing.T) {
		_, err := svc.Create(SaleInput{
			InvoiceNo: "INV-2",
			Items:     []SaleItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 10}},
		}, 1)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}
