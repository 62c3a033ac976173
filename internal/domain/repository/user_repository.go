package repository

import "github.com/jvalencia/crm-ventas/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
