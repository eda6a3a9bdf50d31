package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/models"
)

func CreateCategory(pool *pgxpool.Pool, category *models.Category) error {
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}
	query := `
		INSERT INTO categories (user_id, name, type, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := pool.QueryRow(context.Background(), query,
		category.UserID, category.Name, category.Type, category.Color).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("помилка при додаванні категорії: %w", err)
	}
	return nil
}

// GetCategoriesByUserID повертає категорії користувача; categoryType="" — всі.
func GetCategoriesByUserID(pool *pgxpool.Pool, userID int, categoryType string) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, color
		FROM categories
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY name`
	rows, err := pool.Query(context.Background(), query, userID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання категорій: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Color); err != nil {
			return nil, fmt.Errorf("помилка читання категорії: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func GetCategoryByID(pool *pgxpool.Pool, id, userID int) (*models.Category, error) {
	query := `SELECT id, user_id, name, type, color FROM categories WHERE id = $1 AND user_id = $2`

	var c models.Category
	err := pool.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Type, &c.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("помилка отримання категорії: %w", err)
	}
	return &c, nil
}

// UpdateCategory оновлює назву та колір. Тип категорії незмінний,
// щоб не розійтися з уже створеними транзакціями.
func UpdateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `UPDATE categories SET name = $1, color = $2 WHERE id = $3 AND user_id = $4`
	result, err := pool.Exec(context.Background(), query,
		category.Name, category.Color, category.ID, category.UserID)
	if err != nil {
		return fmt.Errorf("помилка оновлення категорії: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCategory(pool *pgxpool.Pool, id, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("помилка видалення категорії: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
