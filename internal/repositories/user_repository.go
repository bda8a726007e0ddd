package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

var (
	ErrUserNotFound = models.ErrUserNotFound
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, password, role, image, phone, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
		user.Image, user.Phone, user.Address, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUser(ctx, `WHERE id = ?`, id)
}

// GetUserByEmail returns a zero user (no error) when the email is unknown, so
// callers can do duplicate pre-checks without special-casing sql.ErrNoRows.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := r.getUser(ctx, `WHERE email = ?`, email)
	if err == ErrUserNotFound {
		return models.User{}, nil
	}
	return user, err
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg interface{}) (models.User, error) {
	var (
		user    models.User
		image   sql.NullString
		phone   sql.NullString
		address sql.NullString
	)
	query := `SELECT id, name, email, password, role, image, phone, address, created_at, updated_at FROM users ` + where
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&image, &phone, &address, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	user.Image = image.String
	user.Phone = phone.String
	user.Address = address.String
	return user, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, email, role, created_at FROM users ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		UPDATE users
		SET name = ?, email = ?, role = ?, image = ?, phone = ?, address = ?, updated_at = ?
		WHERE id = ?
	`
	user.UpdatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Email, user.Role, user.Image, user.Phone, user.Address,
		user.UpdatedAt, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = ?, updated_at = ? WHERE id = ?`,
		hashedPassword, time.Now(), userID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Sessions

func (r *UserRepository) SetSession(ctx context.Context, userID string, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO sessions (user_id, refresh_token, expires_at) VALUES (?, ?, ?)`,
		userID, session.RefreshToken, session.ExpiresAt,
	)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`,
		refreshToken,
	).Scan(&session.UserID, &session.RefreshToken, &session.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Session{}, nil
		}
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

// DeleteExpiredSessions removes sessions whose refresh token can no longer be
// redeemed. Login replaces a user's own row, so this sweep is the only path
// that clears rows for users who never come back.
func (r *UserRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Password reset tokens

func (r *UserRepository) CreatePasswordResetToken(ctx context.Context, t models.PasswordResetToken) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO password_reset_tokens (user_id, token, expires) VALUES (?, ?, ?)`,
		t.UserID, t.Token, t.Expires,
	)
	return err
}

func (r *UserRepository) GetPasswordResetToken(ctx context.Context, token string) (models.PasswordResetToken, error) {
	var t models.PasswordResetToken
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, token, expires FROM password_reset_tokens WHERE token = ?`,
		token,
	).Scan(&t.UserID, &t.Token, &t.Expires)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.PasswordResetToken{}, models.ErrInvalidResetToken
		}
		return models.PasswordResetToken{}, err
	}
	return t, nil
}

func (r *UserRepository) DeletePasswordResetToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE token = ?`, token)
	return err
}

// DeleteExpiredPasswordResetTokens removes reset tokens past their expiry.
// Consuming a token deletes it, but abandoned requests otherwise pile up.
func (r *UserRepository) DeleteExpiredPasswordResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE expires < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Device tokens for push notifications

func (r *UserRepository) SaveDeviceToken(ctx context.Context, userID, token string) error {
	_, err := r.DB.ExecContext(ctx,
		`REPLACE INTO device_tokens (user_id, token) VALUES (?, ?)`,
		userID, token,
	)
	return err
}

// GetStaffDeviceTokens returns the push targets of every admin and agent.
func (r *UserRepository) GetStaffDeviceTokens(ctx context.Context) ([]string, error) {
	query := `
		SELECT dt.token
		FROM device_tokens dt
		JOIN users u ON dt.user_id = u.id
		WHERE u.role IN ('admin', 'agent')
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
