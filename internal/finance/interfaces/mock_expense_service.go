package interfaces

import (
	"github.com/sgorski00/finance-tracker/internal/finance/application"
	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

type MockExpenseService struct {
	Expense  *domain.Expense
	Expenses []domain.Expense
	Summary  []domain.CategorySummary
	Err      error

	LastOwnerID   string
	LastExpenseID int
	LastPatch     application.ExpensePatch
}

func (m *MockExpenseService) CreateExpense(ownerID string, req application.CreateExpenseRequest) (*domain.Expense, error) {
	m.LastOwnerID = ownerID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Expense, nil
}

func (m *MockExpenseService) GetUserExpenses(ownerID string) ([]domain.Expense, error) {
	m.LastOwnerID = ownerID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Expenses, nil
}

func (m *MockExpenseService) UpdateExpense(ownerID string, expenseID int, patch application.ExpensePatch) (*domain.Expense, error) {
	m.LastOwnerID = ownerID
	m.LastExpenseID = expenseID
	m.LastPatch = patch
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Expense, nil
}

func (m *MockExpenseService) DeleteExpense(ownerID string, expenseID int) error {
	m.LastOwnerID = ownerID
	m.LastExpenseID = expenseID
	return m.Err
}

func (m *MockExpenseService) GetExpenseSummary(ownerID string) ([]domain.CategorySummary, error) {
	m.LastOwnerID = ownerID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}
