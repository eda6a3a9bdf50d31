package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/opavlenko/finance-manager/models"
)

// Categories повертає категорії; categoryType="" — всі.
func (c *Client) Categories(ctx context.Context, categoryType string) ([]models.Category, error) {
	query := url.Values{}
	if categoryType != "" {
		query.Set("type", categoryType)
	}
	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.get(ctx, "/api/categories", query, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) Category(ctx context.Context, id int) (*models.Category, error) {
	var resp struct {
		Category models.Category `json:"category"`
	}
	if err := c.get(ctx, "/api/categories/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

func (c *Client) CreateCategory(ctx context.Context, req models.CategoryCreateRequest) (*models.Category, error) {
	var resp struct {
		Category models.Category `json:"category"`
	}
	if err := c.post(ctx, "/api/categories", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, req models.CategoryUpdateRequest) (*models.Category, error) {
	var resp struct {
		Category models.Category `json:"category"`
	}
	if err := c.put(ctx, "/api/categories/"+strconv.Itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, "/api/categories/"+strconv.Itoa(id))
}
