package client

import (
	"context"

	"github.com/opavlenko/finance-manager/models"
)

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Register реєструє користувача і прив'язує видану сесію до клієнта.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp.User, nil
}

// Login виконує вхід і прив'язує видану сесію до клієнта.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return &resp.User, nil
}

// CurrentUser повертає профіль власника сесії.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
