package application

import (
	"github.com/sgorski00/finance-tracker/internal/finance/domain"
	financeErrors "github.com/sgorski00/finance-tracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) DoesCategoryExist(categoryID int, ownerID string) (bool, error) {
	return s.repo.ExistsByIDAndOwner(categoryID, ownerID)
}

func (s *CategoryService) CreateCategory(ownerID, name string) (*domain.Category, error) {
	category := &domain.Category{
		Name:    name,
		OwnerID: ownerID,
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetUserCategories(ownerID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) findOwned(ownerID string, categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.ErrCategoryNotFound
	}
	if category.OwnerID != ownerID {
		return nil, financeErrors.ErrNotOwner
	}
	return category, nil
}

// CategoryPatch lists the mutable category fields; a nil pointer means the
// field was omitted from the payload.
type CategoryPatch struct {
	Name *string `json:"name"`
}

func (s *CategoryService) UpdateCategory(ownerID string, categoryID int, patch CategoryPatch) (*domain.Category, error) {
	category, err := s.findOwned(ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes an owned category. Expenses that referenced it
// become uncategorized, the storage layer nulls the reference.
func (s *CategoryService) DeleteCategory(ownerID string, categoryID int) error {
	if _, err := s.findOwned(ownerID, categoryID); err != nil {
		return err
	}
	return s.repo.Delete(categoryID)
}
