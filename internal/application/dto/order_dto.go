package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
)

// OrderItemInput una línea del pedido tal como la envía el cliente del API.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateOrderRequest datos para crear un pedido. El total viene del caller y
// se persiste tal cual; no se recalcula desde las líneas.
type CreateOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	Items      []OrderItemInput `json:"items"`
	Total      decimal.Decimal  `json:"total"`
}

// UpdateOrderRequest actualización parcial de un pedido (merge por campo).
// Si Items viene presente, se repite la verificación y descuento de stock
// contra la existencia ACTUAL de cada producto.
type UpdateOrderRequest struct {
	CustomerID *string          `json:"customer_id"`
	Items      []OrderItemInput `json:"items"`
	Total      *decimal.Decimal `json:"total"`
	Status     *string          `json:"status"`
}

// OrderResponse representación de un pedido.
type OrderResponse struct {
	ID         string             `json:"id"`
	Items      []entity.OrderItem `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	CustomerID string             `json:"customer_id"`
	SellerID   string             `json:"seller_id"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
