package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// ProductInput is the payload for creating or updating a product. Image
// is optional; when set, ImageName is the uploaded filename.
type ProductInput struct {
	Name        string
	CategoryID  int64
	Description string
	Stock       int
	Price       float64
	Image       io.Reader
	ImageName   string
}

// ListProducts describes the listproducts operation and its observable behavior.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct describes the getproduct operation and its observable behavior.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	path := "/api/products/" + strconv.FormatInt(id, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct uploads a new product as a multipart form. The multipart
// content type set here overrides the wrapper's application/json default.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	body, contentType, err := productForm(input)
	if err != nil {
		return nil, err
	}

	var product Product
	err = c.doJSON(ctx, http.MethodPost, "/api/products/create", body, &product,
		WithHeader("Content-Type", contentType))
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct describes the updateproduct operation and its observable behavior.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	body, contentType, err := productForm(input)
	if err != nil {
		return nil, err
	}

	var product Product
	path := "/api/products/update/" + strconv.FormatInt(id, 10)
	err = c.doJSON(ctx, http.MethodPut, path, body, &product,
		WithHeader("Content-Type", contentType))
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct describes the deleteproduct operation and its observable behavior.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := "/api/products/delete/" + strconv.FormatInt(id, 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// productForm encodes input as the multipart form the storefront API
// expects. Field names follow the API contract exactly.
func productForm(input ProductInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"categoryId":  strconv.FormatInt(input.CategoryID, 10),
		"stock":       strconv.Itoa(input.Stock),
		"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("encode product form: %w", err)
		}
	}

	if input.Image != nil {
		imageName := input.ImageName
		if imageName == "" {
			imageName = "image"
		}
		part, err := form.CreateFormFile("image", imageName)
		if err != nil {
			return nil, "", fmt.Errorf("encode product image: %w", err)
		}
		if _, err := io.Copy(part, input.Image); err != nil {
			return nil, "", fmt.Errorf("encode product image: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, "", err
	}
	return &buf, form.FormDataContentType(), nil
}
