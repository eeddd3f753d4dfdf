package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCreateProductMultipart(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/create" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q, want multipart", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Matcha Latte" {
			t.Errorf("name = %q", got)
		}
		if got := r.FormValue("categoryId"); got != "3" {
			t.Errorf("categoryId = %q", got)
		}
		if got := r.FormValue("stock"); got != "12" {
			t.Errorf("stock = %q", got)
		}
		if got := r.FormValue("price"); got != "4.5" {
			t.Errorf("price = %q", got)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image file: %v", err)
		} else {
			_ = file.Close()
			if header.Filename != "matcha.png" {
				t.Errorf("image filename = %q", header.Filename)
			}
		}

		writeEnvelope(w, http.StatusCreated, "success", "Product created", map[string]any{
			"id": 101, "categoryId": 3, "categoryName": "Drinks",
			"name": "Matcha Latte", "stock": 12, "price": 4.5,
			"imageUrl": "/uploads/matcha.png",
		})
	}))
	defer srv.Close()

	gate := newTestGate(t)
	if err := gate.SetSession(ctx, mintToken(t, time.Now().Add(time.Hour)), nil, false); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	c := newTestClient(t, gate, srv)

	product, err := c.CreateProduct(ctx, ProductInput{
		Name:       "Matcha Latte",
		CategoryID: 3,
		Stock:      12,
		Price:      4.5,
		Image:      strings.NewReader("png bytes"),
		ImageName:  "matcha.png",
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if product.ID != 101 || product.ImageURL != "/uploads/matcha.png" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductAndCategoryRoutes(t *testing.T) {
	ctx := context.Background()

	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/products/5"):
			writeEnvelope(w, http.StatusOK, "success", "", map[string]any{"id": 5, "name": "Mug"})
		case strings.HasPrefix(r.URL.Path, "/api/categories") && r.Method == http.MethodGet:
			writeEnvelope(w, http.StatusOK, "success", "", []map[string]any{{"id": 1, "name": "Drinks"}})
		default:
			writeEnvelope(w, http.StatusOK, "success", "", map[string]any{"id": 1, "name": "Drinks"})
		}
	}))
	defer srv.Close()

	gate := newTestGate(t)
	if err := gate.SetSession(ctx, mintToken(t, time.Now().Add(time.Hour)), nil, false); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	c := newTestClient(t, gate, srv)

	product, err := c.GetProduct(ctx, 5)
	if err != nil || product.Name != "Mug" {
		t.Fatalf("GetProduct: (%+v, %v)", product, err)
	}
	if gotPath != "/api/products/5" || gotMethod != http.MethodGet {
		t.Fatalf("GetProduct hit %s %s", gotMethod, gotPath)
	}

	if err := c.DeleteProduct(ctx, 5); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if gotPath != "/api/products/delete/5" || gotMethod != http.MethodDelete {
		t.Fatalf("DeleteProduct hit %s %s", gotMethod, gotPath)
	}

	categories, err := c.ListCategories(ctx)
	if err != nil || len(categories) != 1 || categories[0].Name != "Drinks" {
		t.Fatalf("ListCategories: (%+v, %v)", categories, err)
	}

	category, err := c.UpdateCategory(ctx, 1, CategoryInput{Name: "Drinks"})
	if err != nil || category.ID != 1 {
		t.Fatalf("UpdateCategory: (%+v, %v)", category, err)
	}
	if gotPath != "/api/categories/update/1" || gotMethod != http.MethodPut {
		t.Fatalf("UpdateCategory hit %s %s", gotMethod, gotPath)
	}

	if err := c.DeleteCategory(ctx, 1); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if gotPath != "/api/categories/delete/1" || gotMethod != http.MethodDelete {
		t.Fatalf("DeleteCategory hit %s %s", gotMethod, gotPath)
	}
}
