package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación in-memory de ProductRepository.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[string]entity.Product)}
}

// Create guarda un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[product.ID] = *product
	return nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List devuelve los productos ordenados por fecha de creación descendente.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Product, 0, len(r.items))
	for _, p := range r.items {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return toProductPtrs(all), nil
}

// SearchByName busca por subcadena en el nombre, sin distinguir mayúsculas.
func (r *ProductRepo) SearchByName(text string, limit int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(text)
	var all []entity.Product
	for _, p := range r.items {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return toProductPtrs(all), nil
}

// Update reemplaza el producto si existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[product.ID] = *product
	return nil
}

// UpdateStock persiste únicamente el contador de existencia.
func (r *ProductRepo) UpdateStock(productID string, stock int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	r.items[productID] = p
	return nil
}

// Delete elimina el producto por ID.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func toProductPtrs(all []entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(all))
	for i := range all {
		p := all[i]
		out = append(out, &p)
	}
	return out
}
