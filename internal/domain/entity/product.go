package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario global. No pertenece a ningún
// vendedor; el stock es un contador compartido entre todos los pedidos.
type Product struct {
	ID        string
	Name      string
	Stock     int64 // existencia disponible; nunca negativa (verificación previa, no constraint)
	Price     decimal.Decimal
	CreatedAt time.Time
}
