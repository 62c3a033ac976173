package domain

// Owned es cualquier recurso asignado a un vendedor (Customer, Order).
type Owned interface {
	// OwnerID devuelve el ID del usuario (vendedor) dueño del recurso.
	OwnerID() string
}

// AssertOwnedBy verifica que el recurso pertenezca al usuario que hace la petición.
// Comparación por string del ID; devuelve ErrForbidden si no coincide.
// Se aplica en toda lectura/modificación de Customer y Order, y al crear o
// actualizar un Order a través de su Customer.
func AssertOwnedBy(res Owned, callerID string) error {
	if res == nil {
		return ErrNotFound
	}
	if res.OwnerID() != callerID {
		return ErrForbidden
	}
	return nil
}
