package order_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/application/order"
	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	sellerID      = "00000000-0000-0000-0000-000000000001"
	otherSellerID = "00000000-0000-0000-0000-000000000002"
	customerID    = "00000000-0000-0000-0000-0000000000c1"
	productA      = "00000000-0000-0000-0000-0000000000a1"
	productB      = "00000000-0000-0000-0000-0000000000b1"
)

type fixture struct {
	uc        *order.UseCase
	orders    *memory.OrderRepo
	customers *memory.CustomerRepo
	products  *memory.ProductRepo
}

// newFixture arma el caso de uso sobre repos in-memory con un cliente del
// vendedor de prueba y dos productos con existencia conocida (A: 10, B: 5).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		orders:    memory.NewOrderRepository(),
		customers: memory.NewCustomerRepository(),
		products:  memory.NewProductRepository(),
	}
	f.uc = order.NewUseCase(f.orders, f.customers, f.products)

	require.NoError(t, f.customers.Create(&entity.Customer{
		ID:        customerID,
		Name:      "Laura",
		Email:     "laura@cliente.com",
		SellerID:  sellerID,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, f.products.Create(&entity.Product{
		ID:        productA,
		Name:      "Monitor 24\"",
		Stock:     10,
		Price:     decimal.NewFromInt(250),
		CreatedAt: time.Now(),
	}))
	require.NoError(t, f.products.Create(&entity.Product{
		ID:        productB,
		Name:      "Teclado mecánico",
		Stock:     5,
		Price:     decimal.NewFromInt(80),
		CreatedAt: time.Now(),
	}))
	return f
}

func (f *fixture) stockOf(t *testing.T, productID string) int64 {
	t.Helper()
	p, err := f.products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p, "el producto de prueba debe existir")
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — camino feliz y descuento de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DescuentaStockYQuedaPendiente(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemInput{
			{ProductID: productA, Quantity: 3},
			{ProductID: productB, Quantity: 2},
		},
		Total: decimal.NewFromInt(910),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.OrderStatusPending, out.Status, "el pedido nuevo debe quedar PENDING")
	assert.Equal(t, sellerID, out.SellerID, "el vendedor se asigna desde el caller, no desde el cuerpo")
	assert.Equal(t, int64(7), f.stockOf(t, productA), "stock de A: 10 - 3")
	assert.Equal(t, int64(3), f.stockOf(t, productB), "stock de B: 5 - 2")
}

func TestCreate_TotalSePersisteTalCual(t *testing.T) {
	f := newFixture(t)

	// Total arbitrario, distinto de la suma de las líneas: se guarda sin recalcular.
	total := decimal.NewFromInt(1)
	out, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemInput{{ProductID: productA, Quantity: 2}},
		Total:      total,
	})
	require.NoError(t, err)
	assert.True(t, total.Equal(out.Total), "el total viene del caller y no se recalcula")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — validaciones de cliente y propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ClienteInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: "no-existe",
		Items:      []dto.OrderItemInput{{ProductID: productA, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), f.stockOf(t, productA), "no debe tocarse el inventario")
}

func TestCreate_ClienteDeOtroVendedor_RetornaForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(otherSellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemInput{{ProductID: productA, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "el cliente pertenece a otro vendedor")
	assert.Equal(t, int64(10), f.stockOf(t, productA), "no debe tocarse el inventario")
}

func TestCreate_SinLineas_RetornaInvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{CustomerID: customerID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadNoPositiva_RetornaInvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemInput{{ProductID: productA, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), f.stockOf(t, productA))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — reserva secuencial sin rollback
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_StockInsuficiente_ErrorConDetalleDelProducto(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemInput{{ProductID: productB, Quantity: 6}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, productB, stockErr.ProductID)
	assert.Equal(t, "Teclado mecánico", stockErr.ProductName, "el mensaje debe nombrar el producto")
	assert.Equal(t, int64(6), stockErr.Requested)
	assert.Equal(t, int64(5), stockErr.Available)

	assert.Equal(t, int64(5), f.stockOf(t, productB), "la línea fallida no descuenta nada")
}

func TestCreate_LineaFallida_LasAnterioresQuedanAplicadas(t *testing.T) {
	f := newFixture(t)

	// La primera línea descuenta; la segunda excede la existencia. Sin rollback:
	// el descuento de A queda aplicado aunque el pedido no se cree.
	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemInput{
			{ProductID: productA, Quantity: 4},
			{ProductID: productB, Quantity: 99},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(6), f.stockOf(t, productA), "la línea anterior queda descontada")
	assert.Equal(t, int64(5), f.stockOf(t, productB), "la línea fallida no toca el stock")

	list, err := f.orders.List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "el pedido no debe persistirse")
}

func TestCreate_ProductoInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemInput{
			{ProductID: productA, Quantity: 1},
			{ProductID: "fantasma", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(9), f.stockOf(t, productA), "la línea anterior queda descontada")
}

func TestCreate_ReservasSucesivas_AgotanElStock(t *testing.T) {
	f := newFixture(t)

	// B tiene 5: el primer pedido de 3 pasa (queda 2), el segundo de 3 falla.
	_, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemInput{{ProductID: productB, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.stockOf(t, productB))

	_, err = f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemInput{{ProductID: productB, Quantity: 3}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(2), stockErr.Available, "la disponibilidad reportada es la existencia ya descontada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func createOrder(t *testing.T, f *fixture, items ...dto.OrderItemInput) *dto.OrderResponse {
	t.Helper()
	out, err := f.uc.Create(sellerID, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      items,
		Total:      decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return out
}

func TestUpdate_LineasNuevas_DescuentanContraStockActual(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 4}) // stock A: 6

	// La reserva original NO se restaura primero: las líneas nuevas descuentan
	// de la existencia actual.
	out, err := f.uc.Update(o.ID, sellerID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: productA, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(4), f.stockOf(t, productA), "6 actuales - 2 nuevas; las 4 originales no se devuelven")
}

func TestUpdate_LineasNuevasSinStock_RetornaInsufficientStock(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productB, Quantity: 3}) // stock B: 2

	_, err := f.uc.Update(o.ID, sellerID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: productB, Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"aunque el pedido original ya reservó 3, la actualización valida contra la existencia actual (2)")
}

func TestUpdate_SinClienteNuevo_ValidaContraClienteActual(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})

	status := entity.OrderStatusCompleted
	out, err := f.uc.Update(o.ID, sellerID, dto.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	assert.Equal(t, customerID, out.CustomerID, "el cliente no cambia si no viene en la petición")
}

func TestUpdate_ClienteNuevoDeOtroVendedor_RetornaForbidden(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})

	ajeno := "00000000-0000-0000-0000-0000000000c2"
	require.NoError(t, f.customers.Create(&entity.Customer{
		ID:        ajeno,
		Name:      "Pedro",
		Email:     "pedro@cliente.com",
		SellerID:  otherSellerID,
		CreatedAt: time.Now(),
	}))

	_, err := f.uc.Update(o.ID, sellerID, dto.UpdateOrderRequest{CustomerID: &ajeno})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la propiedad se valida contra el cliente NUEVO cuando viene en la petición")
}

func TestUpdate_EstadoInvalido_RetornaInvalidInput(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})

	status := "ENVIADO"
	_, err := f.uc.Update(o.ID, sellerID, dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_PedidoInexistente_RetornaNotFound(t *testing.T) {
	f := newFixture(t)

	status := entity.OrderStatusCancelled
	_, err := f.uc.Update("no-existe", sellerID, dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_NoRestauraElStockDescontado(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 4}) // stock A: 6

	require.NoError(t, f.uc.Delete(o.ID, sellerID))

	assert.Equal(t, int64(6), f.stockOf(t, productA), "el descuento sobre el inventario es permanente")
	got, err := f.orders.GetByID(o.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "el pedido debe eliminarse")
}

func TestDelete_PedidoDeOtroVendedor_RetornaForbidden(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})

	err := f.uc.Delete(o.ID, otherSellerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, repoErr := f.orders.GetByID(o.ID)
	require.NoError(t, repoErr)
	assert.NotNil(t, got, "el pedido debe seguir existiendo")
}

func TestGetByID_SoloSuVendedorPuedeLeerlo(t *testing.T) {
	f := newFixture(t)
	o := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})

	out, err := f.uc.GetByID(o.ID, sellerID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, out.ID)

	_, err = f.uc.GetByID(o.ID, otherSellerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListBySellerAndStatus_FiltraPorEstado(t *testing.T) {
	f := newFixture(t)
	o1 := createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})
	createOrder(t, f, dto.OrderItemInput{ProductID: productA, Quantity: 1})

	status := entity.OrderStatusCompleted
	_, err := f.uc.Update(o1.ID, sellerID, dto.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)

	completed, err := f.uc.ListBySellerAndStatus(sellerID, entity.OrderStatusCompleted, 10, 0)
	require.NoError(t, err)
	require.Len(t, completed.Items, 1)
	assert.Equal(t, o1.ID, completed.Items[0].ID)

	pending, err := f.uc.ListBySellerAndStatus(sellerID, entity.OrderStatusPending, 10, 0)
	require.NoError(t, err)
	assert.Len(t, pending.Items, 1)
}

func TestListBySellerAndStatus_EstadoDesconocido_RetornaInvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ListBySellerAndStatus(sellerID, "ENVIADO", 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockError_MencionaProductoEnElMensaje(t *testing.T) {
	err := &domain.StockError{ProductID: "x", ProductName: "Teclado mecánico", Requested: 6, Available: 5}
	assert.Contains(t, err.Error(), "Teclado mecánico")
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}
