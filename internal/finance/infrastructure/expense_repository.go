package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (amount, description, date, owner_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	return r.db.QueryRow(query,
		expense.Amount, expense.Description, expense.Date, expense.OwnerID, expense.CategoryID,
	).Scan(&expense.ID)
}

func (r *ExpenseRepository) FindByOwner(ownerID string) ([]domain.Expense, error) {
	rows, err := r.db.Query(
		`SELECT id, amount, description, date, owner_id, category_id FROM expenses WHERE owner_id = $1`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.Amount, &expense.Description,
			&expense.Date, &expense.OwnerID, &expense.CategoryID); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// FindByID returns (nil, nil) when no expense with that id exists.
func (r *ExpenseRepository) FindByID(expenseID int) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.QueryRow(
		`SELECT id, amount, description, date, owner_id, category_id FROM expenses WHERE id = $1`,
		expenseID,
	).Scan(&expense.ID, &expense.Amount, &expense.Description,
		&expense.Date, &expense.OwnerID, &expense.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(expense domain.Expense) error {
	_, err := r.db.Exec(
		`UPDATE expenses SET amount = $1, description = $2, date = $3, category_id = $4 WHERE id = $5`,
		expense.Amount, expense.Description, expense.Date, expense.CategoryID, expense.ID,
	)
	return err
}

// Delete emits no error when zero rows are affected; the ownership check
// already passed upstream and the narrow delete race is accepted.
func (r *ExpenseRepository) Delete(expenseID int) error {
	_, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, expenseID)
	return err
}

func (r *ExpenseRepository) SummarizeByCategory(ownerID string) ([]domain.CategorySummary, error) {
	query := `
		SELECT c.id, c.name, COALESCE(SUM(e.amount), 0), COUNT(e.id)
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.owner_id = $1
		GROUP BY c.id, c.name
		ORDER BY c.name NULLS LAST
	`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.CategorySummary
	for rows.Next() {
		var summary domain.CategorySummary
		var categoryID sql.NullInt64
		var categoryName sql.NullString
		if err := rows.Scan(&categoryID, &categoryName, &summary.Total, &summary.Count); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			id := int(categoryID.Int64)
			summary.CategoryID = &id
			summary.CategoryName = categoryName.String
		} else {
			summary.CategoryName = "uncategorized"
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
