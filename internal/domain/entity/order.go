package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderItem es una línea del pedido: referencia a producto + cantidad solicitada.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// Order representa un pedido de un cliente, gestionado por su vendedor.
// Items es un registro congelado de la intención al momento de crear/actualizar:
// el efecto sobre el stock se aplica una sola vez, al escribir el pedido.
type Order struct {
	ID         string
	Items      []OrderItem
	Total      decimal.Decimal
	CustomerID string
	SellerID   string
	Status     string
	CreatedAt  time.Time
}

// OwnerID implementa domain.Owned.
func (o *Order) OwnerID() string { return o.SellerID }

// ValidStatus indica si s es uno de los estados permitidos.
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
