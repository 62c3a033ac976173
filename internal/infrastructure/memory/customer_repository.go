package memory

import (
	"sort"
	"sync"

	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación in-memory de CustomerRepository.
type CustomerRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Customer
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{items: make(map[string]entity.Customer)}
}

// Create guarda un cliente nuevo; email duplicado -> ErrDuplicate.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Email == customer.Email {
			return domain.ErrDuplicate
		}
	}
	r.items[customer.ID] = *customer
	return nil
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByEmail devuelve el cliente o (nil, nil) si no existe.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.Email == email {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

// List devuelve todos los clientes ordenados por fecha de creación descendente.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	return r.listWhere(func(entity.Customer) bool { return true }, limit, offset)
}

// ListBySeller devuelve los clientes del vendedor.
func (r *CustomerRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Customer, error) {
	return r.listWhere(func(c entity.Customer) bool { return c.SellerID == sellerID }, limit, offset)
}

// Update reemplaza el cliente si existe.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[customer.ID] = *customer
	return nil
}

// Delete elimina el cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *CustomerRepo) listWhere(keep func(entity.Customer) bool, limit, offset int) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		if keep(c) {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	out := make([]*entity.Customer, 0, len(all))
	for i := range all {
		c := all[i]
		out = append(out, &c)
	}
	return out, nil
}
