package report_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/crm-ventas/internal/application/report"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

// stubReportRepo devuelve filas fijas y registra el límite pedido.
type stubReportRepo struct {
	customers      []repository.TopCustomerResult
	sellers        []repository.TopSellerResult
	customersLimit int
	sellersLimit   int
}

func (s *stubReportRepo) TopCustomers(_ context.Context, limit int) ([]repository.TopCustomerResult, error) {
	s.customersLimit = limit
	return s.customers, nil
}

func (s *stubReportRepo) TopSellers(_ context.Context, limit int) ([]repository.TopSellerResult, error) {
	s.sellersLimit = limit
	return s.sellers, nil
}

func TestTopCustomers_PideDiezYProyectaAlDTO(t *testing.T) {
	repo := &stubReportRepo{
		customers: []repository.TopCustomerResult{
			{
				Customer: entity.Customer{ID: "c1", Name: "Laura", Email: "laura@cliente.com", SellerID: "v1"},
				Total:    decimal.NewFromInt(5000),
			},
		},
	}
	uc := report.NewUseCase(repo)

	out, err := uc.TopCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, repo.customersLimit, "el reporte de clientes corta en 10")
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].Customer.ID)
	assert.True(t, decimal.NewFromInt(5000).Equal(out[0].Total))
}

func TestTopSellers_PideCincoYOmiteElHash(t *testing.T) {
	repo := &stubReportRepo{
		sellers: []repository.TopSellerResult{
			{
				Seller: entity.User{ID: "v1", Name: "Juan", Email: "juan@crm.com", PasswordHash: "$2a$10$x"},
				Total:  decimal.NewFromInt(9000),
			},
		},
	}
	uc := report.NewUseCase(repo)

	out, err := uc.TopSellers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, repo.sellersLimit, "el reporte de vendedores corta en 5")
	require.Len(t, out, 1)
	assert.Equal(t, "v1", out[0].Seller.ID)
	assert.Equal(t, "juan@crm.com", out[0].Seller.Email)
}
