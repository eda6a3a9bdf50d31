package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/opavlenko/finance-manager/models"
)

// Accounts повертає рахунки; isActive=nil — без фільтра активності.
func (c *Client) Accounts(ctx context.Context, isActive *bool) ([]models.Account, error) {
	query := url.Values{}
	if isActive != nil {
		query.Set("is_active", strconv.FormatBool(*isActive))
	}
	var resp struct {
		Accounts []models.Account `json:"accounts"`
	}
	if err := c.get(ctx, "/api/accounts", query, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *Client) Account(ctx context.Context, id int) (*models.Account, error) {
	var resp struct {
		Account models.Account `json:"account"`
	}
	if err := c.get(ctx, "/api/accounts/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

func (c *Client) CreateAccount(ctx context.Context, req models.AccountCreateRequest) (*models.Account, error) {
	var resp struct {
		Account models.Account `json:"account"`
	}
	if err := c.post(ctx, "/api/accounts", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id int, req models.AccountUpdateRequest) (*models.Account, error) {
	var resp struct {
		Account models.Account `json:"account"`
	}
	if err := c.put(ctx, "/api/accounts/"+strconv.Itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	return c.delete(ctx, "/api/accounts/"+strconv.Itoa(id))
}
