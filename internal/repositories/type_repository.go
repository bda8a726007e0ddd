package repositories

import (
	"context"
	"database/sql"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

var (
	ErrTypeNotFound = models.ErrTypeNotFound
)

type TypeRepository struct {
	DB *sql.DB
}

func (r *TypeRepository) CreateType(ctx context.Context, t models.Type) (models.Type, error) {
	query := `INSERT INTO types (id, name, value) VALUES (?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, t.ID, t.Name, t.Value)
	if err != nil {
		return models.Type{}, err
	}
	return t, nil
}

func (r *TypeRepository) GetTypeByID(ctx context.Context, id string) (models.Type, error) {
	var t models.Type
	query := `SELECT id, name, value FROM types WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Value)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Type{}, ErrTypeNotFound
		}
		return models.Type{}, err
	}
	return t, nil
}

func (r *TypeRepository) GetTypeByValue(ctx context.Context, value string) (models.Type, error) {
	var t models.Type
	query := `SELECT id, name, value FROM types WHERE value = ?`
	err := r.DB.QueryRowContext(ctx, query, value).Scan(&t.ID, &t.Name, &t.Value)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Type{}, ErrTypeNotFound
		}
		return models.Type{}, err
	}
	return t, nil
}

func (r *TypeRepository) UpdateType(ctx context.Context, t models.Type) (models.Type, error) {
	query := `UPDATE types SET name = ?, value = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, t.Name, t.Value, t.ID)
	if err != nil {
		return models.Type{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Type{}, err
	}
	if rowsAffected == 0 {
		return models.Type{}, ErrTypeNotFound
	}
	return t, nil
}

func (r *TypeRepository) DeleteType(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTypeNotFound
	}
	return nil
}

func (r *TypeRepository) GetAllTypes(ctx context.Context) ([]models.Type, error) {
	query := `SELECT id, name, value FROM types ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.Type
	for rows.Next() {
		var t models.Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Value); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}
