package client

import (
	"context"
	"net/http"
	"strconv"
)

// CategoryInput is the JSON payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListCategories describes the listcategories operation and its observable behavior.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory describes the createcategory operation and its observable behavior.
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}

	var category Category
	if err := c.doJSON(ctx, http.MethodPost, "/api/categories/create", body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory describes the updatecategory operation and its observable behavior.
func (c *Client) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*Category, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}

	var category Category
	path := "/api/categories/update/" + strconv.FormatInt(id, 10)
	if err := c.doJSON(ctx, http.MethodPut, path, body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory describes the deletecategory operation and its observable behavior.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := "/api/categories/delete/" + strconv.FormatInt(id, 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
