package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas del pedido se guardan como documento JSONB dentro de la fila:
// son un registro congelado, no un join vivo contra products.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, items, total, customer_id, seller_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, items, order.Total, order.CustomerID, order.SellerID, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, items, total, customer_id, seller_id, status, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &items, &o.Total, &o.CustomerID, &o.SellerID, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}

// List lista todos los pedidos con paginación.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, items, total, customer_id, seller_id, status, created_at
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return scanOrders(rows)
}

// ListBySeller lista los pedidos de un vendedor con paginación.
func (r *OrderRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, items, total, customer_id, seller_id, status, created_at
		FROM orders WHERE seller_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by seller: %w", err)
	}
	return scanOrders(rows)
}

// ListBySellerAndStatus lista los pedidos de un vendedor filtrados por estado.
func (r *OrderRepo) ListBySellerAndStatus(sellerID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, items, total, customer_id, seller_id, status, created_at
		FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, sellerID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return scanOrders(rows)
}

// Update reemplaza los campos mutables del pedido (el merge se resolvió en la capa de aplicación).
func (r *OrderRepo) Update(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		UPDATE orders SET items = $2, total = $3, customer_id = $4, status = $5
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, items, order.Total, order.CustomerID, order.Status,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina un pedido por ID. No toca el stock de los productos.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var items []byte
		if err := rows.Scan(&o.ID, &items, &o.Total, &o.CustomerID, &o.SellerID, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
