package entity

import "time"

// User representa un vendedor del sistema. Es dueño de sus clientes y pedidos.
type User struct {
	ID           string
	Name         string
	Surname      string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
