package interfaces

import (
	"github.com/sgorski00/finance-tracker/internal/finance/application"
	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

type MockCategoryService struct {
	Category   *domain.Category
	Categories []domain.Category
	Err        error

	LastOwnerID    string
	LastCategoryID int
	LastName       string
}

func (m *MockCategoryService) CreateCategory(ownerID, name string) (*domain.Category, error) {
	m.LastOwnerID = ownerID
	m.LastName = name
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) GetUserCategories(ownerID string) ([]domain.Category, error) {
	m.LastOwnerID = ownerID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) UpdateCategory(ownerID string, categoryID int, patch application.CategoryPatch) (*domain.Category, error) {
	m.LastOwnerID = ownerID
	m.LastCategoryID = categoryID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) DeleteCategory(ownerID string, categoryID int) error {
	m.LastOwnerID = ownerID
	m.LastCategoryID = categoryID
	return m.Err
}
