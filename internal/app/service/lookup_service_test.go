package service

import (
	"testing"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/db"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, dialect.Adapter) {
	t.Helper()
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	adapter, err := dialect.Resolve(database)
	require.NoError(t, err)
	return database, adapter
}

func newCategoryService(t *testing.T) LookupService {
	t.Helper()
	database, adapter := setupTestDB(t)
	repo := repository.NewLookupRepository[model.Category, *model.Category](database, "category")
	return NewLookupService[model.Category, *model.Category](repo, adapter, "category")
}

func TestLookupService_Create(t *testing.T) {
	t.Run("Creates with audit fields", func(t *testing.T) {
		svc := newCategoryService(t)

		item, err := svc.Create(LookupInput{Name: "Beverages", Active: true}, 7)
		require.NoError(t, err)
		assert.Positive(t, item.ID)
		assert.Equal(t, "Beverages", item.Name)
		assert.True(t, item.Active)
	})

	t.Run("Duplicate name maps to ErrDuplicateName", func(t *testing.T) {
		svc := newCategoryService(t)

		_, err := svc.Create(LookupInput{Name: "Beverages", Active: true}, 7)
		require.NoError(t, err)

		_, err = svc.Create(LookupInput{Name: "Beverages", Active: true}, 7)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestLookupService_Update(t *testing.T) {
	svc := newCategoryService(t)

	created, err := svc.Create(LookupInput{Name: "Snacks", Active: true}, 7)
	require.NoError(t, err)
	_, err = svc.Create(LookupInput{Name: "Beverages", Active: true}, 7)
	require.NoError(t, err)

	t.Run("Rename succeeds", func(t *testing.T) {
		item, err := svc.Update(created.ID, LookupInput{Name: "Namkeen", Active: true}, 8)
		require.NoError(t, err)
		assert.Equal(t, "Namkeen", item.Name)
	})

	t.Run("Rename onto an existing name conflicts", func(t *testing.T) {
		_, err := svc.Update(created.ID, LookupInput{Name: "Beverages", Active: true}, 8)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("Unknown id maps to ErrNotFound", func(t *testing.T) {
		_, err := svc.Update(9999, LookupInput{Name: "X", Active: true}, 8)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLookupService_SetActive(t *testing.T) {
	svc := newCategoryService(t)

	created, err := svc.Create(LookupInput{Name: "Dairy", Active: true}, 7)
	require.NoError(t, err)

	found, err := svc.SetActive(created.ID, false, 7)
	require.NoError(t, err)
	assert.True(t, found)

	item, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, item.Active)

	found, err = svc.SetActive(9999, false, 7)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRoleService_Delete(t *testing.T) {
	setup := func(t *testing.T) (RoleService, *gorm.DB) {
		database, adapter := setupTestDB(t)
		return NewRoleService(repository.NewRoleRepository(database), adapter), database
	}

	t.Run("Deletes an unassigned role", func(t *testing.T) {
		svc, _ := setup(t)
		role, err := svc.Create(LookupInput{Name: "auditor", Active: true}, 1)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(role.ID))

		_, err = svc.GetByID(role.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Refuses to delete an assigned role", func(t *testing.T) {
		svc, database := setup(t)
		role, err := svc.Create(LookupInput{Name: "cashier", Active: true}, 1)
		require.NoError(t, err)

		user := &model.User{
			Username:     "asha",
			Email:        "asha@radhira.example",
			PasswordHash: "x",
			FullName:     "Asha K",
			RoleID:       &role.ID,
			Active:       true,
		}
		require.NoError(t, database.Create(user).Error)

		assert.ErrorIs(t, svc.Delete(role.ID), ErrRoleInUse)
	})

	t.Run("Unknown id maps to ErrNotFound", func(t *testing.T) {
		svc, _ := setup(t)
		assert.ErrorIs(t, svc.Delete(9999), ErrNotFound)
	})
}
