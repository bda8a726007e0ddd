package repositories

import (
	"context"
	"database/sql"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

var (
	ErrCategoryNotFound = models.ErrCategoryNotFound
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query := `INSERT INTO categories (id, name, value) VALUES (?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, category.ID, category.Name, category.Value)
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	query := `SELECT id, name, value FROM categories WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.Value)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) GetCategoryByValue(ctx context.Context, value string) (models.Category, error) {
	var category models.Category
	query := `SELECT id, name, value FROM categories WHERE value = ?`
	err := r.DB.QueryRowContext(ctx, query, value).Scan(&category.ID, &category.Name, &category.Value)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query := `UPDATE categories SET name = ?, value = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, category.Name, category.Value, category.ID)
	if err != nil {
		return models.Category{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if rowsAffected == 0 {
		return models.Category{}, ErrCategoryNotFound
	}
	return category, nil
}

// DeleteCategory removes the row only. Properties still referencing the
// category keep their category_id; there is no cascade.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, value FROM categories ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Value); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
