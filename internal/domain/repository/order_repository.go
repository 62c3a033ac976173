package repository

import "github.com/jvalencia/crm-ventas/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListBySeller(sellerID string, limit, offset int) ([]*entity.Order, error)
	ListBySellerAndStatus(sellerID, status string, limit, offset int) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) error
}
