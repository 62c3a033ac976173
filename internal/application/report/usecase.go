package report

import (
	"context"

	"github.com/jvalencia/crm-ventas/internal/application/auth"
	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

// Límites de los reportes, heredados del comportamiento original del CRM.
const (
	topCustomersLimit = 10
	topSellersLimit   = 5
)

// UseCase reportes de solo lectura sobre pedidos completados.
// Visibles para cualquier vendedor autenticado; no hay restricción de propiedad.
type UseCase struct {
	repo repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(repo repository.ReportRepository) *UseCase {
	return &UseCase{repo: repo}
}

// TopCustomers devuelve hasta 10 clientes ordenados por total facturado
// (pedidos COMPLETED), de mayor a menor.
func (uc *UseCase) TopCustomers(ctx context.Context) ([]dto.TopCustomerDTO, error) {
	rows, err := uc.repo.TopCustomers(ctx, topCustomersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopCustomerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopCustomerDTO{
			Customer: dto.CustomerResponse{
				ID:        r.Customer.ID,
				Name:      r.Customer.Name,
				Surname:   r.Customer.Surname,
				Company:   r.Customer.Company,
				Email:     r.Customer.Email,
				Phone:     r.Customer.Phone,
				SellerID:  r.Customer.SellerID,
				CreatedAt: r.Customer.CreatedAt,
			},
			Total: r.Total,
		})
	}
	return out, nil
}

// TopSellers devuelve hasta 5 vendedores ordenados por total facturado
// (pedidos COMPLETED), de mayor a menor.
func (uc *UseCase) TopSellers(ctx context.Context) ([]dto.TopSellerDTO, error) {
	rows, err := uc.repo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopSellerDTO{
			Seller: *auth.ToUserResponse(&r.Seller),
			Total:  r.Total,
		})
	}
	return out, nil
}
