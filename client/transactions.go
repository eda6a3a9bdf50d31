package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/opavlenko/finance-manager/models"
)

// TransactionFilter — необов'язкові параметри списку транзакцій.
type TransactionFilter struct {
	Type       string
	CategoryID *int
	StartDate  string
	EndDate    string
}

func (f TransactionFilter) query() url.Values {
	query := url.Values{}
	if f.Type != "" {
		query.Set("type", f.Type)
	}
	if f.CategoryID != nil {
		query.Set("category_id", strconv.Itoa(*f.CategoryID))
	}
	if f.StartDate != "" {
		query.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		query.Set("end_date", f.EndDate)
	}
	return query
}

func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/api/transactions", filter.query(), &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *Client) Transaction(ctx context.Context, id int) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.get(ctx, "/api/transactions/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req models.TransactionCreateRequest) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.post(ctx, "/api/transactions", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int, req models.TransactionUpdateRequest) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.put(ctx, "/api/transactions/"+strconv.Itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.delete(ctx, "/api/transactions/"+strconv.Itoa(id))
}

// Summary повертає зведення доходів і витрат за період (дати YYYY-MM-DD, "" — без межі).
func (c *Client) Summary(ctx context.Context, startDate, endDate string) (*models.Summary, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	var resp struct {
		Summary models.Summary `json:"summary"`
	}
	if err := c.get(ctx, "/api/transactions/summary", query, &resp); err != nil {
		return nil, err
	}
	return &resp.Summary, nil
}
