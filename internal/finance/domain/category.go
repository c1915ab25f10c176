package domain

import (
	"strings"

	"github.com/sgorski00/finance-tracker/internal/finance/errors"
)

const maxCategoryNameLength = 100

type Category struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"-"`
}

type CategoryRepository interface {
	Save(category *Category) error
	FindByOwner(ownerID string) ([]Category, error)
	FindByID(categoryID int) (*Category, error)
	Update(category Category) error
	Delete(categoryID int) error
	ExistsByIDAndOwner(categoryID int, ownerID string) (bool, error)
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewValidationError("Name is required")
	}
	if len(c.Name) > maxCategoryNameLength {
		return errors.NewValidationError("Name must be of length less than 100")
	}
	if c.OwnerID == "" {
		return errors.NewValidationError("Category must have an owner")
	}
	return nil
}
