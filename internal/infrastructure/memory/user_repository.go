// Package memory contiene implementaciones in-memory de los puertos de
// persistencia, para tests y desarrollo local sin PostgreSQL.
package memory

import (
	"sort"
	"sync"

	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación in-memory de UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	items map[string]entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{items: make(map[string]entity.User)}
}

// Create guarda un vendedor nuevo; email duplicado -> ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	// Guardamos una copia para evitar mutaciones externas.
	r.items[user.ID] = *user
	return nil
}

// GetByID devuelve el vendedor o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail devuelve el vendedor o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// List devuelve los vendedores ordenados por fecha de creación descendente.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.User, 0, len(r.items))
	for _, u := range r.items {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageUsers(all, limit, offset), nil
}

func pageUsers(all []entity.User, limit, offset int) []*entity.User {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	out := make([]*entity.User, 0, len(all))
	for i := range all {
		u := all[i]
		out = append(out, &u)
	}
	return out
}
