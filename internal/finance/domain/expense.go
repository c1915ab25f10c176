package domain

import (
	"time"

	"github.com/sgorski00/finance-tracker/internal/finance/errors"
)

const maxDescriptionLength = 200

type Expense struct {
	ID          int       `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	OwnerID     string    `json:"owner_id"`
	CategoryID  *int      `json:"category_id"`
}

type ExpenseRepository interface {
	Save(expense *Expense) error
	FindByOwner(ownerID string) ([]Expense, error)
	FindByID(expenseID int) (*Expense, error)
	Update(expense Expense) error
	Delete(expenseID int) error
	SummarizeByCategory(ownerID string) ([]CategorySummary, error)
}

// CategorySummary aggregates an owner's expenses for one category. A nil
// CategoryID bucket collects uncategorized expenses.
type CategorySummary struct {
	CategoryID   *int    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
	Count        int     `json:"count"`
}

func (e *Expense) Validate() error {
	if len(e.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if e.OwnerID == "" {
		return errors.NewValidationError("Expense must have an owner")
	}
	return nil
}
