package infrastructure

import (
	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

// MockExpenseRepository is an in-memory ExpenseRepository used by the
// application and handler tests.
type MockExpenseRepository struct {
	Expenses []domain.Expense
	nextID   int
	Err      error
}

func (m *MockExpenseRepository) Save(expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindByOwner(ownerID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Expense
	for _, expense := range m.Expenses {
		if expense.OwnerID == ownerID {
			owned = append(owned, expense)
		}
	}
	return owned, nil
}

func (m *MockExpenseRepository) FindByID(expenseID int) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, expense := range m.Expenses {
		if expense.ID == expenseID {
			found := expense
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockExpenseRepository) Update(expense domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID {
			m.Expenses[i] = expense
		}
	}
	return nil
}

func (m *MockExpenseRepository) Delete(expenseID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockExpenseRepository) SummarizeByCategory(ownerID string) ([]domain.CategorySummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	totals := make(map[int]*domain.CategorySummary)
	var uncategorized *domain.CategorySummary
	for _, expense := range m.Expenses {
		if expense.OwnerID != ownerID {
			continue
		}
		if expense.CategoryID == nil {
			if uncategorized == nil {
				uncategorized = &domain.CategorySummary{CategoryName: "uncategorized"}
			}
			uncategorized.Total += expense.Amount
			uncategorized.Count++
			continue
		}
		summary, ok := totals[*expense.CategoryID]
		if !ok {
			id := *expense.CategoryID
			summary = &domain.CategorySummary{CategoryID: &id}
			totals[id] = summary
		}
		summary.Total += expense.Amount
		summary.Count++
	}

	var summaries []domain.CategorySummary
	for _, summary := range totals {
		summaries = append(summaries, *summary)
	}
	if uncategorized != nil {
		summaries = append(summaries, *uncategorized)
	}
	return summaries, nil
}
