package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("no tienes las credenciales")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// StockError indica que una línea del pedido excede la existencia disponible
// de un producto. Envuelve ErrInsufficientStock para poder detectarlo con errors.Is.
type StockError struct {
	ProductID   string
	ProductName string
	Requested   int64
	Available   int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("el artículo %s excede la cantidad disponible (solicitado %d, disponible %d)",
		e.ProductName, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }
