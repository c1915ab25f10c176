package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sgorski00/finance-tracker/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `
		INSERT INTO categories (name, owner_id)
		VALUES ($1, $2)
		RETURNING id;
	`
	return r.db.QueryRow(query, category.Name, category.OwnerID).Scan(&category.ID)
}

func (r *CategoryRepository) FindByOwner(ownerID string) ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, owner_id FROM categories WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.OwnerID); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// FindByID returns (nil, nil) when no category with that id exists.
func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, name, owner_id FROM categories WHERE id = $1`,
		categoryID,
	).Scan(&category.ID, &category.Name, &category.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec(`UPDATE categories SET name = $1 WHERE id = $2`, category.Name, category.ID)
	return err
}

func (r *CategoryRepository) Delete(categoryID int) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	return err
}

func (r *CategoryRepository) ExistsByIDAndOwner(categoryID int, ownerID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND owner_id = $2)`
	err := r.db.QueryRow(query, categoryID, ownerID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
