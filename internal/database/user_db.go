package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/models"
)

func CreateUser(pool *pgxpool.Pool, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	err := pool.QueryRow(context.Background(), query,
		user.Username, user.Email, user.Password, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("помилка при додаванні користувача: %w", err)
	}
	return nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_at FROM users WHERE id = $1`

	var user models.User
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка отримання користувача за id: %w", err)
	}
	return &user, nil
}

func GetUserByEmail(pool *pgxpool.Pool, email string) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_at FROM users WHERE email = $1`

	var user models.User
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка отримання користувача за email: %w", err)
	}
	return &user, nil
}

// UsernameExists перевіряє зайнятість імені, ігноруючи запис excludeID.
func UsernameExists(pool *pgxpool.Pool, username string, excludeID int) (bool, error) {
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`,
		username, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("помилка перевірки імені користувача: %w", err)
	}
	return exists, nil
}

func EmailExists(pool *pgxpool.Pool, email string, excludeID int) (bool, error) {
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("помилка перевірки email: %w", err)
	}
	return exists, nil
}

func UpdateUser(pool *pgxpool.Pool, user *models.User) error {
	query := `UPDATE users SET username = $1, email = $2, role = $3 WHERE id = $4`
	result, err := pool.Exec(context.Background(), query, user.Username, user.Email, user.Role, user.ID)
	if err != nil {
		return fmt.Errorf("помилка оновлення користувача: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser видаляє користувача; рахунки, транзакції, категорії та
// бюджети видаляються каскадно на рівні БД.
func DeleteUser(pool *pgxpool.Pool, id int) error {
	result, err := pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("помилка видалення користувача: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
