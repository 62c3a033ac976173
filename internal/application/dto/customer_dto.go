package dto

import "time"

// CreateCustomerRequest datos para crear un cliente. El vendedor se asigna
// desde el token, nunca desde el cuerpo.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateCustomerRequest actualización parcial (merge por campo).
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// CustomerResponse representación de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
