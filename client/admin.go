package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/models"
)

// DashboardStats — зведення адмін-панелі.
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

// SystemInfo — розміри таблиць і бази даних.
type SystemInfo struct {
	UsersCount        int    `json:"users_count"`
	AccountsCount     int    `json:"accounts_count"`
	CategoriesCount   int    `json:"categories_count"`
	TransactionsCount int    `json:"transactions_count"`
	BudgetsCount      int    `json:"budgets_count"`
	AdminLogsCount    int    `json:"admin_logs_count"`
	DatabaseSize      string `json:"database_size"`
}

// UserPage — сторінка користувачів для адмін-панелі.
type UserPage struct {
	Users       []models.User `json:"users"`
	Total       int           `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// LogPage — сторінка журналу дій адміністраторів.
type LogPage struct {
	Logs        []models.AdminLog `json:"logs"`
	Total       int               `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
}

// UserDetails — користувач разом з його агрегованою статистикою.
type UserDetails struct {
	User       models.User           `json:"user"`
	Statistics models.UserStatistics `json:"statistics"`
}

func pageQuery(page, perPage int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}
	return query
}

func (c *Client) AdminDashboard(ctx context.Context) (*DashboardStats, error) {
	var resp DashboardStats
	if err := c.get(ctx, "/api/admin/dashboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminUsers(ctx context.Context, page, perPage int, search, role string) (*UserPage, error) {
	query := pageQuery(page, perPage)
	if search != "" {
		query.Set("search", search)
	}
	if role != "" {
		query.Set("role", role)
	}
	var resp UserPage
	if err := c.get(ctx, "/api/admin/users", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminUser(ctx context.Context, id int) (*UserDetails, error) {
	var resp UserDetails
	if err := c.get(ctx, "/api/admin/users/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminUpdateUser(ctx context.Context, id int, req models.AdminUserUpdateRequest) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.put(ctx, "/api/admin/users/"+strconv.Itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, "/api/admin/users/"+strconv.Itoa(id))
}

func (c *Client) AdminLogs(ctx context.Context, page, perPage int, action string) (*LogPage, error) {
	query := pageQuery(page, perPage)
	if action != "" {
		query.Set("action", action)
	}
	var resp LogPage
	if err := c.get(ctx, "/api/admin/logs", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminSystemInfo(ctx context.Context) (*SystemInfo, error) {
	var resp SystemInfo
	if err := c.get(ctx, "/api/admin/system-info", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
