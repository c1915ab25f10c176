package infrastructure

import (
	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

// MockCategoryRepository is an in-memory CategoryRepository used by the
// application and handler tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	nextID     int
	Err        error
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByOwner(ownerID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.OwnerID == ownerID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = category
		}
	}
	return nil
}

func (m *MockCategoryRepository) Delete(categoryID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) ExistsByIDAndOwner(categoryID int, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}
