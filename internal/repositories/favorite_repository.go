package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddFavorite(ctx context.Context, userID, propertyID string) error {
	_, err := r.DB.ExecContext(ctx,
		`REPLACE INTO favorites (user_id, property_id, created_at) VALUES (?, ?, ?)`,
		userID, propertyID, time.Now(),
	)
	return err
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND property_id = ?`,
		userID, propertyID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		`SELECT 1 FROM favorites WHERE user_id = ? AND property_id = ?`,
		userID, propertyID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) GetFavoritePropertyIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT property_id FROM favorites WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
