package client

import (
	"encoding/json"
	"fmt"
)

// Product mirrors the storefront API product resource.
type Product struct {
	ID           int64   `json:"id"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
}

// Category mirrors the storefront API category resource.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// envelope is the uniform storefront API response shape. Data is decoded
// lazily so one type serves every endpoint.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIError is a non-2xx storefront API response that is neither a 401
// nor a 403. The server's message is preserved verbatim.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

// Error describes the error operation and its observable behavior.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}
