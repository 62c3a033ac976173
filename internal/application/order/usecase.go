package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

// UseCase flujo de pedidos: valida la relación cliente/vendedor, verifica y
// descuenta stock línea por línea, y persiste el pedido.
//
// El descuento NO es transaccional: cada producto se verifica y persiste de
// inmediato, en el orden de entrada. Si una línea excede la existencia, las
// líneas anteriores de la misma llamada quedan aplicadas (comportamiento
// documentado del sistema, sin rollback ni compensación).
type UseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Create crea un pedido para el vendedor autenticado.
//
// Precondiciones: el cliente debe existir (ErrNotFound) y pertenecer al
// vendedor (ErrForbidden). Luego, por cada línea en orden de entrada, se
// verifica la existencia del producto y se descuenta el stock. El pedido se
// persiste en estado PENDING con el total tal como lo envió el caller (no se
// recalcula desde las líneas).
func (uc *UseCase) Create(sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(customer, sellerID); err != nil {
		return nil, err
	}

	items, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}
	if err := uc.reserveStock(items); err != nil {
		return nil, err
	}

	o := &entity.Order{
		ID:         uuid.New().String(),
		Items:      items,
		Total:      in.Total,
		CustomerID: in.CustomerID,
		SellerID:   sellerID,
		Status:     entity.OrderStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.orderRepo.Create(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Update aplica una actualización parcial a un pedido.
//
// La verificación de propiedad se hace contra el cliente NUEVO si viene en la
// petición; si no viene, contra el cliente actual del pedido. Si la petición
// trae líneas nuevas, se repite la verificación y descuento de stock contra la
// existencia ACTUAL de cada producto: la reserva del pedido original no se
// restaura primero.
func (uc *UseCase) Update(orderID, sellerID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	customerID := o.CustomerID
	if in.CustomerID != nil {
		customerID = *in.CustomerID
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(customer, sellerID); err != nil {
		return nil, err
	}

	if in.Items != nil {
		items, err := validateItems(in.Items)
		if err != nil {
			return nil, err
		}
		if err := uc.reserveStock(items); err != nil {
			return nil, err
		}
		o.Items = items
	}
	o.CustomerID = customerID
	if in.Total != nil {
		o.Total = *in.Total
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		o.Status = *in.Status
	}
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Delete elimina un pedido del vendedor autenticado. El stock descontado al
// crearlo NO se restaura: el efecto sobre el inventario es permanente.
func (uc *UseCase) Delete(orderID, sellerID string) error {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(o, sellerID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(orderID)
}

// GetByID obtiene un pedido; solo su vendedor puede leerlo.
func (uc *UseCase) GetByID(orderID, sellerID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(o, sellerID); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// List lista todos los pedidos (sin filtro de vendedor).
func (uc *UseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// ListBySeller lista los pedidos del vendedor autenticado.
func (uc *UseCase) ListBySeller(sellerID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListBySeller(sellerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// ListBySellerAndStatus lista los pedidos del vendedor filtrados por estado.
func (uc *UseCase) ListBySellerAndStatus(sellerID, status string, limit, offset int) (*dto.OrderListResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.ListBySellerAndStatus(sellerID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// reserveStock procesa las líneas secuencialmente, una a la vez, en orden de
// entrada: lee el producto, compara cantidad contra existencia y persiste el
// descuento de inmediato (no batch). Al fallar una línea, los descuentos ya
// aplicados permanecen.
func (uc *UseCase) reserveStock(items []entity.OrderItem) error {
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if item.Quantity > product.Stock {
			return &domain.StockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.Stock,
			}
		}
		if err := uc.productRepo.UpdateStock(product.ID, product.Stock-item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// validateItems valida la forma de las líneas antes de tocar inventario:
// al menos una línea, producto referenciado y cantidad positiva.
func validateItems(in []dto.OrderItemInput) ([]entity.OrderItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		Items:      o.Items,
		Total:      o.Total,
		CustomerID: o.CustomerID,
		SellerID:   o.SellerID,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
}

func toOrderList(list []*entity.Order, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
