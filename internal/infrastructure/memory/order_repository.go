package memory

import (
	"sort"
	"sync"

	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación in-memory de OrderRepository.
type OrderRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Order
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{items: make(map[string]entity.Order)}
}

// Create guarda un pedido nuevo.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[order.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[order.ID] = cloneOrder(*order)
	return nil
}

// GetByID devuelve el pedido o (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	out := cloneOrder(o)
	return &out, nil
}

// List devuelve todos los pedidos ordenados por fecha de creación descendente.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	return r.listWhere(func(entity.Order) bool { return true }, limit, offset)
}

// ListBySeller devuelve los pedidos del vendedor.
func (r *OrderRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Order, error) {
	return r.listWhere(func(o entity.Order) bool { return o.SellerID == sellerID }, limit, offset)
}

// ListBySellerAndStatus devuelve los pedidos del vendedor con el estado dado.
func (r *OrderRepo) ListBySellerAndStatus(sellerID, status string, limit, offset int) ([]*entity.Order, error) {
	return r.listWhere(func(o entity.Order) bool {
		return o.SellerID == sellerID && o.Status == status
	}, limit, offset)
}

// Update reemplaza el pedido si existe.
func (r *OrderRepo) Update(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[order.ID] = cloneOrder(*order)
	return nil
}

// Delete elimina el pedido por ID.
func (r *OrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *OrderRepo) listWhere(keep func(entity.Order) bool, limit, offset int) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Order, 0, len(r.items))
	for _, o := range r.items {
		if keep(o) {
			all = append(all, cloneOrder(o))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	out := make([]*entity.Order, 0, len(all))
	for i := range all {
		o := all[i]
		out = append(out, &o)
	}
	return out, nil
}

// cloneOrder copia el pedido incluyendo el slice de líneas, para que las
// mutaciones externas no afecten lo guardado.
func cloneOrder(o entity.Order) entity.Order {
	items := make([]entity.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
