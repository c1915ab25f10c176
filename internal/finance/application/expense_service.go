package application

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sgorski00/finance-tracker/internal/finance/domain"
	financeErrors "github.com/sgorski00/finance-tracker/internal/finance/errors"
)

const calendarDateLayout = "2006-01-02"

type CategoryServiceInterface interface {
	DoesCategoryExist(categoryID int, ownerID string) (bool, error)
}

type ExpenseService struct {
	repo            domain.ExpenseRepository
	categoryService CategoryServiceInterface
	now             func() time.Time
}

func NewExpenseService(repo domain.ExpenseRepository, categoryService CategoryServiceInterface) *ExpenseService {
	return &ExpenseService{repo: repo, categoryService: categoryService, now: time.Now}
}

type CreateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	CategoryID  *int     `json:"category_id"`
}

// ExpensePatch lists the mutable expense fields. A nil pointer means the
// field was omitted from the payload; CategorySet distinguishes an omitted
// category_id from an explicit null, which clears the category.
type ExpensePatch struct {
	Amount      *float64
	Description *string
	Date        *string
	CategoryID  *int
	CategorySet bool
}

func (p *ExpensePatch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["amount"]; ok && string(raw) != "null" {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		p.Amount = &v
	}
	if raw, ok := fields["description"]; ok && string(raw) != "null" {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		p.Description = &v
	}
	if raw, ok := fields["date"]; ok && string(raw) != "null" {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		p.Date = &v
	}
	if raw, ok := fields["category_id"]; ok {
		p.CategorySet = true
		if string(raw) != "null" {
			var v int
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			p.CategoryID = &v
		}
	}
	return nil
}

// parseCalendarDate parses the calendar-date portion of a free-form
// date-time string, ignoring any time-of-day or timezone suffix.
func parseCalendarDate(raw string) (time.Time, error) {
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		raw = raw[:i]
	}
	return time.Parse(calendarDateLayout, raw)
}

// normalizeCreateDate substitutes the current calendar date (UTC) when no
// date was supplied or the supplied string does not parse. Invalid dates
// never abort a create.
func normalizeCreateDate(raw string, now time.Time) time.Time {
	if raw != "" {
		if parsed, err := parseCalendarDate(raw); err == nil {
			return parsed
		}
	}
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *ExpenseService) validateCategory(categoryID int, ownerID string) error {
	exists, err := s.categoryService.DoesCategoryExist(categoryID, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}
	return nil
}

func (s *ExpenseService) CreateExpense(ownerID string, req CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount == nil {
		return nil, financeErrors.NewValidationError("Amount is required")
	}
	if req.CategoryID != nil {
		if err := s.validateCategory(*req.CategoryID, ownerID); err != nil {
			return nil, err
		}
	}

	expense := &domain.Expense{
		Amount:      *req.Amount,
		Description: req.Description,
		Date:        normalizeCreateDate(req.Date, s.now()),
		OwnerID:     ownerID,
		CategoryID:  req.CategoryID,
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) GetUserExpenses(ownerID string) ([]domain.Expense, error) {
	expenses, err := s.repo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// findOwned resolves an expense id to a record owned by ownerID. A missing
// id and a foreign owner fail differently, 404 versus 403.
func (s *ExpenseService) findOwned(ownerID string, expenseID int) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, financeErrors.ErrExpenseNotFound
	}
	if expense.OwnerID != ownerID {
		return nil, financeErrors.ErrNotOwner
	}
	return expense, nil
}

func (s *ExpenseService) UpdateExpense(ownerID string, expenseID int, patch ExpensePatch) (*domain.Expense, error) {
	expense, err := s.findOwned(ownerID, expenseID)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		expense.Amount = *patch.Amount
	}
	if patch.Description != nil {
		expense.Description = *patch.Description
	}
	if patch.Date != nil {
		// unlike create, an unparsable date drops the field change and the
		// prior date is retained
		if parsed, err := parseCalendarDate(*patch.Date); err == nil {
			expense.Date = parsed
		}
	}
	if patch.CategorySet {
		if patch.CategoryID != nil {
			if err := s.validateCategory(*patch.CategoryID, ownerID); err != nil {
				return nil, err
			}
		}
		expense.CategoryID = patch.CategoryID
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ownerID string, expenseID int) error {
	if _, err := s.findOwned(ownerID, expenseID); err != nil {
		return err
	}
	return s.repo.Delete(expenseID)
}

func (s *ExpenseService) GetExpenseSummary(ownerID string) ([]domain.CategorySummary, error) {
	summary, err := s.repo.SummarizeByCategory(ownerID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return []domain.CategorySummary{}, nil
	}
	return summary, nil
}
