package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/opavlenko/finance-manager/models"
)

// Budgets повертає бюджети з обчисленими spent/remaining/percent;
// period="" — всі.
func (c *Client) Budgets(ctx context.Context, period string) ([]models.Budget, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	var resp struct {
		Budgets []models.Budget `json:"budgets"`
	}
	if err := c.get(ctx, "/api/budgets", query, &resp); err != nil {
		return nil, err
	}
	return resp.Budgets, nil
}

func (c *Client) Budget(ctx context.Context, id int) (*models.Budget, error) {
	var resp struct {
		Budget models.Budget `json:"budget"`
	}
	if err := c.get(ctx, "/api/budgets/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Budget, nil
}

func (c *Client) CreateBudget(ctx context.Context, req models.BudgetCreateRequest) (*models.Budget, error) {
	var resp struct {
		Budget models.Budget `json:"budget"`
	}
	if err := c.post(ctx, "/api/budgets", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Budget, nil
}

// UpdateBudget змінює суму та/або початкову дату. Період і кінцева дата
// бюджету незмінні, тому їх у запиті немає.
func (c *Client) UpdateBudget(ctx context.Context, id int, req models.BudgetUpdateRequest) (*models.Budget, error) {
	var resp struct {
		Budget models.Budget `json:"budget"`
	}
	if err := c.put(ctx, "/api/budgets/"+strconv.Itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id int) error {
	return c.delete(ctx, "/api/budgets/"+strconv.Itoa(id))
}
