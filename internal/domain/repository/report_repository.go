package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
)

// TopCustomerResult es una fila del reporte de mejores clientes:
// total facturado en pedidos COMPLETED, con el cliente resuelto.
type TopCustomerResult struct {
	Customer entity.Customer
	Total    decimal.Decimal
}

// TopSellerResult es una fila del reporte de mejores vendedores.
type TopSellerResult struct {
	Seller entity.User
	Total  decimal.Decimal
}

// ReportRepository consultas de agregación de solo lectura sobre pedidos completados.
type ReportRepository interface {
	TopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)
	TopSellers(ctx context.Context, limit int) ([]TopSellerResult, error)
}
