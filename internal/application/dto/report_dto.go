package dto

import "github.com/shopspring/decimal"

// TopCustomerDTO fila del reporte de mejores clientes.
type TopCustomerDTO struct {
	Customer CustomerResponse `json:"customer"`
	Total    decimal.Decimal  `json:"total"`
}

// TopSellerDTO fila del reporte de mejores vendedores.
type TopSellerDTO struct {
	Seller UserResponse    `json:"seller"`
	Total  decimal.Decimal `json:"total"`
}
