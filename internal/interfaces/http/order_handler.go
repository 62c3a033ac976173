package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/application/order"
	"github.com/jvalencia/crm-ventas/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido).
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido (descuenta stock línea por línea)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "customer_id, items, total"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id es requerido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID (solo su vendedor)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetUserID(c))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todos los pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar los pedidos del vendedor autenticado, opcionalmente por estado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PENDING | COMPLETED | CANCELLED"
// @Success      200     {object}  dto.OrderListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/orders/mine [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var (
		out *dto.OrderListResponse
		err error
	)
	if status := c.Query("status"); status != "" {
		out, err = h.uc.ListBySellerAndStatus(GetUserID(c), status, limit, offset)
	} else {
		out, err = h.uc.ListBySeller(GetUserID(c), limit, offset)
	}
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido (líneas nuevas descuentan contra stock actual)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido (no restaura el stock descontado)
// @Tags         orders
// @Security     Bearer
// @Param        id   path  string  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// orderError traduce errores del dominio a HTTP. El mensaje de stock
// insuficiente conserva el detalle (producto, solicitado, disponible).
func orderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tienes las credenciales"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
