package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/models"
)

// DashboardStats — зведення для головної сторінки адмін-панелі.
type DashboardStats struct {
	TotalUsers        int             `json:"total_users"`
	TotalAccounts     int             `json:"total_accounts"`
	TotalTransactions int             `json:"total_transactions"`
	TotalBalance      decimal.Decimal `json:"total_balance"`
	NewUsersToday     int             `json:"new_users_today"`
	TransactionsToday int             `json:"transactions_today"`
	TopUsers          []TopUser       `json:"top_users"`
	RecentUsers       []models.User   `json:"recent_users"`
}

type TopUser struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	TransactionsCount int    `json:"transactions_count"`
}

// SystemInfo — розміри таблиць і бази для сторінки системної інформації.
type SystemInfo struct {
	UsersCount        int    `json:"users_count"`
	AccountsCount     int    `json:"accounts_count"`
	CategoriesCount   int    `json:"categories_count"`
	TransactionsCount int    `json:"transactions_count"`
	BudgetsCount      int    `json:"budgets_count"`
	AdminLogsCount    int    `json:"admin_logs_count"`
	DatabaseSize      string `json:"database_size"`
}

func GetDashboardStats(pool *pgxpool.Pool) (*DashboardStats, error) {
	stats := &DashboardStats{TotalBalance: decimal.Zero}

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM accounts),
			(SELECT COUNT(*) FROM transactions),
			(SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE is_active),
			(SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE),
			(SELECT COUNT(*) FROM transactions WHERE created_at >= CURRENT_DATE)`
	err := pool.QueryRow(context.Background(), query).Scan(
		&stats.TotalUsers, &stats.TotalAccounts, &stats.TotalTransactions,
		&stats.TotalBalance, &stats.NewUsersToday, &stats.TransactionsToday)
	if err != nil {
		return nil, fmt.Errorf("помилка обчислення статистики панелі: %w", err)
	}

	topQuery := `
		SELECT u.id, u.username, u.email, COUNT(t.id)
		FROM users u
		JOIN transactions t ON t.user_id = u.id
		GROUP BY u.id, u.username, u.email
		ORDER BY COUNT(t.id) DESC
		LIMIT 5`
	rows, err := pool.Query(context.Background(), topQuery)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання найактивніших користувачів: %w", err)
	}
	defer rows.Close()
	stats.TopUsers = []TopUser{}
	for rows.Next() {
		var tu TopUser
		if err := rows.Scan(&tu.ID, &tu.Username, &tu.Email, &tu.TransactionsCount); err != nil {
			return nil, fmt.Errorf("помилка читання користувача: %w", err)
		}
		stats.TopUsers = append(stats.TopUsers, tu)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recentQuery := `
		SELECT id, username, email, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT 5`
	recentRows, err := pool.Query(context.Background(), recentQuery)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання нових користувачів: %w", err)
	}
	defer recentRows.Close()
	stats.RecentUsers = []models.User{}
	for recentRows.Next() {
		var u models.User
		if err := recentRows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("помилка читання користувача: %w", err)
		}
		stats.RecentUsers = append(stats.RecentUsers, u)
	}
	return stats, recentRows.Err()
}

// ListUsers повертає сторінку користувачів із пошуком за іменем/email
// та фільтром ролі, плюс загальну кількість для пагінації.
func ListUsers(pool *pgxpool.Pool, page, perPage int, search, role string) ([]models.User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	pattern := "%" + search + "%"

	var total int
	err := pool.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM users
		WHERE ($1 = '%%' OR username ILIKE $1 OR email ILIKE $1)
		  AND ($2 = '' OR role = $2)`, pattern, role).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("помилка підрахунку користувачів: %w", err)
	}

	query := `
		SELECT id, username, email, role, created_at
		FROM users
		WHERE ($1 = '%%' OR username ILIKE $1 OR email ILIKE $1)
		  AND ($2 = '' OR role = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := pool.Query(context.Background(), query, pattern, role, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("помилка отримання користувачів: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("помилка читання користувача: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// GetUserStatistics збирає показники одного користувача для сторінки деталей.
func GetUserStatistics(pool *pgxpool.Pool, userID int) (*models.UserStatistics, error) {
	stats := &models.UserStatistics{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	query := `
		SELECT
			(SELECT COUNT(*) FROM accounts WHERE user_id = $1),
			(SELECT COUNT(*) FROM transactions WHERE user_id = $1),
			(SELECT COUNT(*) FROM categories WHERE user_id = $1),
			(SELECT COUNT(*) FROM budgets WHERE user_id = $1),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND type = 'income'),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND type = 'expense'),
			(SELECT MAX(date) FROM transactions WHERE user_id = $1)`

	var lastDate *time.Time
	err := pool.QueryRow(context.Background(), query, userID).Scan(
		&stats.AccountsCount, &stats.TransactionsCount, &stats.CategoriesCount,
		&stats.BudgetsCount, &stats.TotalIncome, &stats.TotalExpenses, &lastDate)
	if err != nil {
		return nil, fmt.Errorf("помилка обчислення статистики користувача: %w", err)
	}
	if lastDate != nil {
		formatted := lastDate.Format("2006-01-02")
		stats.LastTransactionDate = &formatted
	}
	return stats, nil
}

func InsertAdminLog(pool *pgxpool.Pool, entry *models.AdminLog) error {
	query := `
		INSERT INTO admin_logs (admin_id, action, target_type, target_id, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		entry.AdminID, entry.Action, entry.TargetType, entry.TargetID,
		entry.Details, entry.IPAddress).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("помилка запису в журнал адміністратора: %w", err)
	}
	return nil
}

// ListAdminLogs повертає сторінку журналу, найновіші записи першими.
func ListAdminLogs(pool *pgxpool.Pool, page, perPage int, action string) ([]models.AdminLog, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM admin_logs WHERE ($1 = '' OR action = $1)`, action).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("помилка підрахунку журналу: %w", err)
	}

	query := `
		SELECT l.id, l.admin_id, u.username, l.action, l.target_type,
		       l.target_id, l.details, l.ip_address, l.created_at
		FROM admin_logs l
		JOIN users u ON u.id = l.admin_id
		WHERE ($1 = '' OR l.action = $1)
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2 OFFSET $3`
	rows, err := pool.Query(context.Background(), query, action, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("помилка отримання журналу: %w", err)
	}
	defer rows.Close()

	logs := []models.AdminLog{}
	for rows.Next() {
		var l models.AdminLog
		if err := rows.Scan(&l.ID, &l.AdminID, &l.AdminUsername, &l.Action,
			&l.TargetType, &l.TargetID, &l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("помилка читання журналу: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, total, rows.Err()
}

func GetSystemInfo(pool *pgxpool.Pool) (*SystemInfo, error) {
	info := &SystemInfo{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM accounts),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM transactions),
			(SELECT COUNT(*) FROM budgets),
			(SELECT COUNT(*) FROM admin_logs),
			pg_size_pretty(pg_database_size(current_database()))`
	err := pool.QueryRow(context.Background(), query).Scan(
		&info.UsersCount, &info.AccountsCount, &info.CategoriesCount,
		&info.TransactionsCount, &info.BudgetsCount, &info.AdminLogsCount,
		&info.DatabaseSize)
	if err != nil {
		return nil, fmt.Errorf("помилка отримання системної інформації: %w", err)
	}
	return info, nil
}
