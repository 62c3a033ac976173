package repository

import "github.com/jvalencia/crm-ventas/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	SearchByName(text string, limit int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock persiste únicamente el contador de existencia.
	// Lo usa el flujo de pedidos, un producto a la vez (no batch).
	UpdateStock(productID string, stock int64) error
	Delete(id string) error
}
