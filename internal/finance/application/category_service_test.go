package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgorski00/finance-tracker/internal/finance/domain"
	financeErrors "github.com/sgorski00/finance-tracker/internal/finance/errors"
	"github.com/sgorski00/finance-tracker/internal/finance/infrastructure"
)

func TestCreateCategory_Success(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	category, err := service.CreateCategory(ownerA, "Groceries")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, ownerA, category.OwnerID)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	for _, name := range []string{"", "   "} {
		_, err := service.CreateCategory(ownerA, name)
		assert.True(t, financeErrors.IsValidationError(err), "name %q should be rejected", name)
	}
}

func TestGetUserCategories_ScopedToOwner(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.CreateCategory(ownerA, "Groceries")
	require.NoError(t, err)
	_, err = service.CreateCategory(ownerB, "Rent")
	require.NoError(t, err)

	categories, err := service.GetUserCategories(ownerA)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)
}

func TestUpdateCategory_OwnershipChecks(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(ownerA, "Groceries")
	require.NoError(t, err)

	newName := "Food"
	_, err = service.UpdateCategory(ownerB, created.ID, CategoryPatch{Name: &newName})
	assert.ErrorIs(t, err, financeErrors.ErrNotOwner)

	_, err = service.UpdateCategory(ownerA, 404, CategoryPatch{Name: &newName})
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)

	updated, err := service.UpdateCategory(ownerA, created.ID, CategoryPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Food", updated.Name)
}

func TestDeleteCategory_OwnershipChecks(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(ownerA, "Groceries")
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteCategory(ownerB, created.ID), financeErrors.ErrNotOwner)
	assert.ErrorIs(t, service.DeleteCategory(ownerA, 404), financeErrors.ErrCategoryNotFound)

	require.NoError(t, service.DeleteCategory(ownerA, created.ID))
	deleted, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestDoesCategoryExist(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	require.NoError(t, repo.Save(&domain.Category{Name: "Groceries", OwnerID: ownerA}))

	exists, err := service.DoesCategoryExist(1, ownerA)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.DoesCategoryExist(1, ownerB)
	require.NoError(t, err)
	assert.False(t, exists)
}
