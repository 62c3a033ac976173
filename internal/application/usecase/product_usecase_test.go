package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/application/usecase"
	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/infrastructure/memory"
)

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository())
}

func crearProducto(t *testing.T, uc *usecase.ProductUseCase, name string, stock int64) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:  name,
		Stock: stock,
		Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return out
}

func TestProductCreate_SinNombre_RetornaInvalidInput(t *testing.T) {
	uc := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{Stock: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_StockNegativo_RetornaInvalidInput(t *testing.T) {
	uc := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{Name: "Monitor", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_MergeParcial(t *testing.T) {
	uc := newProductUC()
	p := crearProducto(t, uc, "Monitor", 10)

	stock := int64(4)
	out, err := uc.Update(p.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Stock)
	assert.Equal(t, "Monitor", out.Name, "los campos no enviados se conservan")
}

func TestProductUpdate_StockNegativo_RetornaInvalidInput(t *testing.T) {
	uc := newProductUC()
	p := crearProducto(t, uc, "Monitor", 10)

	stock := int64(-3)
	_, err := uc.Update(p.ID, dto.UpdateProductRequest{Stock: &stock})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := newProductUC()

	name := "Nada"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := newProductUC()

	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestProductSearch_PorSubcadenaSinMayusculas(t *testing.T) {
	uc := newProductUC()
	crearProducto(t, uc, "Monitor 24\"", 10)
	crearProducto(t, uc, "Monitor 27\"", 5)
	crearProducto(t, uc, "Teclado mecánico", 3)

	out, err := uc.Search("monitor", 10)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.Search("TECLADO", 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Teclado mecánico", out[0].Name)
}
