package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Stock int64           `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial (merge por campo).
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Stock *int64           `json:"stock"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     int64           `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
